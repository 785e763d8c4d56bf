package authenticating

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/erickpaes/farmacia-manager-api/infrastructure/integrator/farmacia/farmaciaclient"
	farmaciamocks "github.com/erickpaes/farmacia-manager-api/infrastructure/integrator/farmacia/mocks"
	"github.com/erickpaes/farmacia-manager-api/infrastructure/repository/mocks"
	"github.com/erickpaes/farmacia-manager-api/internal/config"
	"github.com/erickpaes/farmacia-manager-api/internal/domain"
)

func newTestService(t *testing.T) (*Service, *mocks.MockSessionRepository, *farmaciamocks.MockClient) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	sessionRepo := mocks.NewMockSessionRepository(ctrl)
	farmacia := farmaciamocks.NewMockClient(ctrl)

	service := &Service{
		sessionRepo: sessionRepo,
		farmacia:    farmacia,
		cfg:         &config.Config{SecretKey: "segredo-de-teste"},
	}

	return service, sessionRepo, farmacia
}

func TestService_Login(t *testing.T) {
	t.Run("Credenciais aceitas - deve criar sessão e emitir token válido", func(t *testing.T) {
		service, sessionRepo, farmacia := newTestService(t)

		var probedCreds domain.Credentials
		farmacia.EXPECT().
			ListarCategorias(gomock.Any()).
			DoAndReturn(func(ctx context.Context) ([]domain.Categoria, error) {
				probedCreds, _ = domain.CredentialsFromContext(ctx)
				return []domain.Categoria{}, nil
			})

		var created *domain.Session
		sessionRepo.EXPECT().
			CreateSession(gomock.Any()).
			DoAndReturn(func(session *domain.Session) error {
				created = session
				return nil
			})

		token, err := service.Login(context.Background(), "admin", "admin123")

		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		// A sonda deve sair com o par informado no login
		assert.Equal(t, "admin", probedCreds.Username)
		assert.Equal(t, "admin123", probedCreds.Password)

		// A sessão persiste o par selado, nunca em claro
		assert.NotNil(t, created)
		assert.Equal(t, "admin", created.Username)
		assert.NotEmpty(t, created.CredenciaisSeladas)
		assert.NotContains(t, string(created.CredenciaisSeladas), "admin123")

		// O token referencia a sessão criada
		claims, err := service.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, created.ID, claims.SessionID)
		assert.Equal(t, "admin", claims.Username)
	})

	t.Run("Backend responde 401 - deve reprovar sem criar sessão", func(t *testing.T) {
		service, _, farmacia := newTestService(t)

		farmacia.EXPECT().
			ListarCategorias(gomock.Any()).
			Return(nil, &farmaciaclient.APIError{
				Kind:       farmaciaclient.KindUnauthorized,
				StatusCode: 401,
				Message:    "Unauthorized",
			})

		token, err := service.Login(context.Background(), "admin", "senha-errada")

		assert.Empty(t, token)
		assert.True(t, IsCredentialsError(err))
	})

	t.Run("Backend fora do ar - deve criar a sessão mesmo assim", func(t *testing.T) {
		service, sessionRepo, farmacia := newTestService(t)

		farmacia.EXPECT().
			ListarCategorias(gomock.Any()).
			Return(nil, &farmaciaclient.APIError{
				Kind:    farmaciaclient.KindNetwork,
				Message: "Não foi possível contatar o backend da farmácia.",
			})

		sessionRepo.EXPECT().
			CreateSession(gomock.Any()).
			Return(nil)

		token, err := service.Login(context.Background(), "admin", "admin123")

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("Usuário ou senha em branco - deve reprovar sem consultar o backend", func(t *testing.T) {
		service, _, _ := newTestService(t)

		token, err := service.Login(context.Background(), "", "admin123")

		assert.Empty(t, token)
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestService_ResolveSession(t *testing.T) {
	t.Run("Sessão existente - deve abrir as credenciais seladas", func(t *testing.T) {
		service, sessionRepo, _ := newTestService(t)

		sealed, err := sealCredentials(service.cfg.SecretKey, domain.Credentials{
			Username: "admin",
			Password: "admin123",
		})
		assert.NoError(t, err)

		sessionRepo.EXPECT().
			GetSessionByID("sess-1").
			Return(&domain.Session{
				ID:                 "sess-1",
				Username:           "admin",
				CredenciaisSeladas: sealed,
				CriadoEm:           time.Now().UTC(),
				UltimoUso:          time.Now().UTC(),
			}, nil)

		session, creds, err := service.ResolveSession("sess-1")

		assert.NoError(t, err)
		assert.Equal(t, "sess-1", session.ID)
		assert.Equal(t, "admin", creds.Username)
		assert.Equal(t, "admin123", creds.Password)
	})

	t.Run("Sessão inexistente - deve resolver para sessão expirada", func(t *testing.T) {
		service, sessionRepo, _ := newTestService(t)

		sessionRepo.EXPECT().
			GetSessionByID("sess-morta").
			Return(nil, nil)

		_, _, err := service.ResolveSession("sess-morta")

		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("Blob adulterado - deve descartar a sessão", func(t *testing.T) {
		service, sessionRepo, _ := newTestService(t)

		sealed, err := sealCredentials(service.cfg.SecretKey, domain.Credentials{
			Username: "admin",
			Password: "admin123",
		})
		assert.NoError(t, err)
		sealed[len(sealed)-1] ^= 0xFF

		sessionRepo.EXPECT().
			GetSessionByID("sess-2").
			Return(&domain.Session{ID: "sess-2", Username: "admin", CredenciaisSeladas: sealed}, nil)

		sessionRepo.EXPECT().
			DeleteSession("sess-2").
			Return(true, nil)

		_, _, err = service.ResolveSession("sess-2")

		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}

func TestService_Invalidate(t *testing.T) {
	t.Run("Primeira chamada remove, a segunda já não encontra a sessão", func(t *testing.T) {
		service, sessionRepo, _ := newTestService(t)

		var alive int32 = 1
		sessionRepo.EXPECT().
			DeleteSession("sess-1").
			DoAndReturn(func(string) (bool, error) {
				return atomic.CompareAndSwapInt32(&alive, 1, 0), nil
			}).
			Times(2)

		first, err := service.Invalidate("sess-1")
		assert.NoError(t, err)
		assert.True(t, first)

		second, err := service.Invalidate("sess-1")
		assert.NoError(t, err)
		assert.False(t, second)
	})

	t.Run("Invalidações concorrentes - exatamente uma reporta a remoção", func(t *testing.T) {
		service, sessionRepo, _ := newTestService(t)

		const workers = 8

		var alive int32 = 1
		sessionRepo.EXPECT().
			DeleteSession("sess-1").
			DoAndReturn(func(string) (bool, error) {
				return atomic.CompareAndSwapInt32(&alive, 1, 0), nil
			}).
			Times(workers)

		var wg sync.WaitGroup
		var removals int32
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				removed, err := service.Invalidate("sess-1")
				assert.NoError(t, err)
				if removed {
					atomic.AddInt32(&removals, 1)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), removals)
	})
}

func TestSealCredentials(t *testing.T) {
	t.Run("Selar e abrir devem devolver o par original", func(t *testing.T) {
		creds := domain.Credentials{Username: "admin", Password: "admin123"}

		sealed, err := sealCredentials("segredo", creds)
		assert.NoError(t, err)

		opened, err := openCredentials("segredo", sealed)
		assert.NoError(t, err)
		assert.Equal(t, creds, opened)
	})

	t.Run("Selar duas vezes nunca gera o mesmo blob", func(t *testing.T) {
		creds := domain.Credentials{Username: "admin", Password: "admin123"}

		first, err := sealCredentials("segredo", creds)
		assert.NoError(t, err)

		second, err := sealCredentials("segredo", creds)
		assert.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("Segredo diferente não abre o blob", func(t *testing.T) {
		sealed, err := sealCredentials("segredo", domain.Credentials{Username: "admin", Password: "admin123"})
		assert.NoError(t, err)

		_, err = openCredentials("outro-segredo", sealed)
		assert.Error(t, err)
	})

	t.Run("Blob truncado não abre", func(t *testing.T) {
		_, err := openCredentials("segredo", []byte{0x01, 0x02})
		assert.Error(t, err)
	})
}
