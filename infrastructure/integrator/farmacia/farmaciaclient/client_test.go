package farmaciaclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erickpaes/farmacia-manager-api/internal/config"
	"github.com/erickpaes/farmacia-manager-api/internal/domain"
)

func newTestClient(baseURL string) Client {
	return NewClient(&config.Config{
		Farmacia: config.Farmacia{
			BaseURL:        baseURL,
			TimeoutSeconds: 5,
		},
	})
}

func ctxWithCreds() context.Context {
	return domain.ContextWithCredentials(context.Background(), domain.Credentials{
		Username: "farmaceutico",
		Password: "senha-secreta",
	})
}

func TestFarmaciaClient_BasicAuth(t *testing.T) {
	t.Run("Credenciais do contexto viram o cabeçalho Basic", func(t *testing.T) {
		var gotUser, gotPass string
		var gotOK bool

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUser, gotPass, gotOK = r.BasicAuth()
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[]`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		_, err := client.ListarCategorias(ctxWithCreds())

		assert.NoError(t, err)
		assert.True(t, gotOK)
		assert.Equal(t, "farmaceutico", gotUser)
		assert.Equal(t, "senha-secreta", gotPass)
	})

	t.Run("Contexto sem credenciais sai sem Authorization", func(t *testing.T) {
		var gotHeader string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotHeader = r.Header.Get("Authorization")
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[]`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		_, err := client.ListarCategorias(context.Background())

		assert.NoError(t, err)
		assert.Empty(t, gotHeader)
	})
}

func TestFarmaciaClient_DecodeError(t *testing.T) {
	testCases := []struct {
		name         string
		status       int
		body         string
		expectedKind ErrorKind
		validate     func(t *testing.T, apiErr *APIError)
	}{
		{
			name:         "401 vira Unauthorized",
			status:       http.StatusUnauthorized,
			body:         `{"status":401,"message":"Credenciais inválidas"}`,
			expectedKind: KindUnauthorized,
			validate: func(t *testing.T, apiErr *APIError) {
				assert.Equal(t, "Credenciais inválidas", apiErr.Message)
			},
		},
		{
			name:         "404 vira NotFound",
			status:       http.StatusNotFound,
			body:         `{"status":404,"message":"Categoria não encontrada"}`,
			expectedKind: KindNotFound,
			validate: func(t *testing.T, apiErr *APIError) {
				assert.Equal(t, "Categoria não encontrada", apiErr.Message)
			},
		},
		{
			name:         "400 com mapa de campos vira Validation",
			status:       http.StatusBadRequest,
			body:         `{"status":400,"message":"Dados inválidos","errors":{"nome":"Nome é obrigatório"}}`,
			expectedKind: KindValidation,
			validate: func(t *testing.T, apiErr *APIError) {
				assert.Equal(t, "Nome é obrigatório", apiErr.Fields["nome"])
			},
		},
		{
			name:         "400 sem mapa vira Conflict com a mensagem do backend",
			status:       http.StatusBadRequest,
			body:         `{"status":400,"message":"Estoque insuficiente para o medicamento Dipirona"}`,
			expectedKind: KindConflict,
			validate: func(t *testing.T, apiErr *APIError) {
				assert.Equal(t, "Estoque insuficiente para o medicamento Dipirona", apiErr.Message)
			},
		},
		{
			name:         "500 vira Unknown",
			status:       http.StatusInternalServerError,
			body:         `{"status":500,"message":"Erro interno"}`,
			expectedKind: KindUnknown,
			validate: func(t *testing.T, apiErr *APIError) {
				assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
			},
		},
		{
			name:         "Corpo fora do shape esperado usa o status HTTP",
			status:       http.StatusNotFound,
			body:         `<html>not json</html>`,
			expectedKind: KindNotFound,
			validate: func(t *testing.T, apiErr *APIError) {
				assert.NotEmpty(t, apiErr.Message)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client := newTestClient(server.URL)

			_, err := client.ListarCategorias(ctxWithCreds())

			assert.Error(t, err)
			apiErr, ok := AsAPIError(err)
			assert.True(t, ok)
			assert.Equal(t, tc.expectedKind, apiErr.Kind)

			if tc.validate != nil {
				tc.validate(t, apiErr)
			}
		})
	}
}

func TestFarmaciaClient_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // backend fora do ar

	client := newTestClient(server.URL)

	_, err := client.ListarCategorias(ctxWithCreds())

	assert.Error(t, err)
	apiErr, ok := AsAPIError(err)
	assert.True(t, ok)
	assert.Equal(t, KindNetwork, apiErr.Kind)
	assert.False(t, IsUnauthorized(err))
}

func TestFarmaciaClient_QueryParams(t *testing.T) {
	t.Run("Histórico com limite positivo envia o parâmetro", func(t *testing.T) {
		var gotPath, gotLimite string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotLimite = r.URL.Query().Get("limite")
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[]`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		_, err := client.BuscarHistoricoEstoque(ctxWithCreds(), 7, 15)

		assert.NoError(t, err)
		assert.Equal(t, "/api/estoque/7/historico", gotPath)
		assert.Equal(t, "15", gotLimite)
	})

	t.Run("Alerta de estoque baixo envia o limite pedido", func(t *testing.T) {
		var gotLimite string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotLimite = r.URL.Query().Get("limite")
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"limiteUtilizado":5,"quantidade":0,"medicamentos":[]}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		alerta, err := client.AlertaEstoqueBaixo(ctxWithCreds(), 5)

		assert.NoError(t, err)
		assert.Equal(t, "5", gotLimite)
		assert.Equal(t, 5, alerta.LimiteUtilizado)
	})
}
