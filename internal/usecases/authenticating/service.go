package authenticating

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"github.com/erickpaes/farmacia-manager-api/infrastructure/integrator/farmacia/farmaciaclient"
	"github.com/erickpaes/farmacia-manager-api/infrastructure/repository"
	"github.com/erickpaes/farmacia-manager-api/internal/config"
	"github.com/erickpaes/farmacia-manager-api/internal/domain"
	"github.com/erickpaes/farmacia-manager-api/pkg/apiErrors"
	"github.com/erickpaes/farmacia-manager-api/pkg/utils"
)

const tokenTTL = 24 * time.Hour

type Authenticator interface {
	Login(ctx context.Context, username, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	ResolveSession(sessionID string) (*domain.Session, domain.Credentials, error)
	TouchSession(sessionID string)
	Invalidate(sessionID string) (bool, error)
}

type Service struct {
	sessionRepo repository.SessionRepository
	farmacia    farmaciaclient.Client
	cfg         *config.Config
}

func NewService(sessionRepo repository.SessionRepository, farmacia farmaciaclient.Client, cfg *config.Config) Authenticator {
	return &Service{
		sessionRepo: sessionRepo,
		farmacia:    farmacia,
		cfg:         cfg,
	}
}

// Login valida o par Basic contra o backend da farmácia e, aceito o par, cria
// a sessão e emite o token do BFF. A sonda usa a listagem de categorias por
// ser a chamada autenticada mais barata do backend. Só o 401 explícito
// reprova o login: backend fora do ar não impede a sessão de nascer, as
// chamadas seguintes reportam a indisponibilidade por conta própria.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Usuário e senha são obrigatórios")
	}

	creds := domain.Credentials{Username: username, Password: password}

	probeCtx := domain.ContextWithCredentials(ctx, creds)
	if _, err := s.farmacia.ListarCategorias(probeCtx); err != nil {
		if farmaciaclient.IsUnauthorized(err) {
			return "", NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Usuário ou senha incorretos")
		}

		logrus.Warnf("Backend indisponível durante o login de %s, sessão criada mesmo assim: %v", username, err)
	}

	sealed, err := sealCredentials(s.cfg.SecretKey, creds)
	if err != nil {
		return "", NewAuthError(ErrSealedCredentials, apiErrors.ErrInternalServer, err.Error())
	}

	now := time.Now().UTC()
	session := &domain.Session{
		ID:                 utils.GenerateID(),
		Username:           username,
		CredenciaisSeladas: sealed,
		CriadoEm:           now,
		UltimoUso:          now,
	}

	if err := s.sessionRepo.CreateSession(session); err != nil {
		return "", NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao criar sessão")
	}

	token, err := generateJWT(session, s.cfg.SecretKey)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return token, nil
}

func generateJWT(session *domain.Session, secretKey string) (string, error) {
	claims := domain.Claims{
		SessionID: session.ID,
		Username:  session.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// ResolveSession carrega a sessão e abre as credenciais seladas para uso na
// chamada corrente. Sessão removida (logout ou 401 anterior) resolve para
// ErrSessionNotFound, mesmo com token ainda dentro da validade.
func (s *Service) ResolveSession(sessionID string) (*domain.Session, domain.Credentials, error) {
	var creds domain.Credentials

	session, err := s.sessionRepo.GetSessionByID(sessionID)
	if err != nil {
		return nil, creds, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao consultar sessão")
	}
	if session == nil {
		return nil, creds, NewAuthError(ErrSessionNotFound, apiErrors.ErrExpiredSession, "Sessão expirada ou encerrada")
	}

	creds, err = openCredentials(s.cfg.SecretKey, session.CredenciaisSeladas)
	if err != nil {
		// Blob ilegível: trata como sessão morta e remove para não insistir.
		if _, delErr := s.sessionRepo.DeleteSession(sessionID); delErr != nil {
			logrus.Warnf("Erro ao remover sessão com credenciais ilegíveis %s: %v", sessionID, delErr)
		}
		return nil, creds, NewAuthError(ErrSessionNotFound, apiErrors.ErrExpiredSession, "Sessão inválida")
	}

	return session, creds, nil
}

// TouchSession registra o uso da sessão. Falha aqui não interrompe a chamada.
func (s *Service) TouchSession(sessionID string) {
	if err := s.sessionRepo.TouchSession(sessionID, time.Now().UTC()); err != nil {
		logrus.Warnf("Erro ao registrar uso da sessão %s: %v", sessionID, err)
	}
}

// Invalidate encerra a sessão e informa se foi esta chamada que a removeu.
// Duas chamadas concorrentes para o mesmo ID nunca reportam remoção as duas:
// a linha só sai do banco uma vez.
func (s *Service) Invalidate(sessionID string) (bool, error) {
	removed, err := s.sessionRepo.DeleteSession(sessionID)
	if err != nil {
		return false, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao encerrar sessão")
	}

	return removed, nil
}
