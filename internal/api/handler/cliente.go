package handler

import (
	"net/http"

	"github.com/erickpaes/farmacia-manager-api/internal/domain"
	"github.com/erickpaes/farmacia-manager-api/internal/usecases/authenticating"
	"github.com/erickpaes/farmacia-manager-api/internal/usecases/registering"
	"github.com/erickpaes/farmacia-manager-api/pkg/apiErrors"
)

func ListClientes(service registering.Registrar, authenticator authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientes, err := service.ListarClientes(r.Context())
		if err != nil {
			writeServiceError(w, r, authenticator, err)
			return
		}

		writeJSON(w, http.StatusOK, clientes)
	}
}

func GetCliente(service registering.Registrar, authenticator authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := paramInt64(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do cliente inválido", nil)
			return
		}

		cliente, err := service.BuscarCliente(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, authenticator, err)
			return
		}

		writeJSON(w, http.StatusOK, cliente)
	}
}

func CreateCliente(service registering.Registrar, authenticator authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.ClienteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		cliente, err := service.CriarCliente(r.Context(), &req)
		if err != nil {
			writeServiceError(w, r, authenticator, err)
			return
		}

		writeJSON(w, http.StatusCreated, cliente)
	}
}

func UpdateCliente(service registering.Registrar, authenticator authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := paramInt64(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do cliente inválido", nil)
			return
		}

		var req domain.ClienteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		cliente, err := service.AtualizarCliente(r.Context(), id, &req)
		if err != nil {
			writeServiceError(w, r, authenticator, err)
			return
		}

		writeJSON(w, http.StatusOK, cliente)
	}
}

// GetVendasDoCliente retorna o histórico de compras do cliente, usado pela
// aba de detalhe do cadastro.
func GetVendasDoCliente(service registering.Registrar, authenticator authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := paramInt64(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do cliente inválido", nil)
			return
		}

		vendas, err := service.BuscarVendasDoCliente(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, authenticator, err)
			return
		}

		writeJSON(w, http.StatusOK, vendas)
	}
}

// SugerirClientes alimenta o autocomplete da tela de vendas: casa o texto
// contra o nome ou os dígitos do CPF.
func SugerirClientes(service registering.Registrar, authenticator authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")

		clientes, err := service.SugerirClientes(r.Context(), query)
		if err != nil {
			writeServiceError(w, r, authenticator, err)
			return
		}

		writeJSON(w, http.StatusOK, clientes)
	}
}
