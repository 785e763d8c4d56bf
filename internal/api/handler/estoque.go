package handler

import (
	"net/http"
	"strconv"

	"github.com/erickpaes/farmacia-manager-api/internal/domain"
	"github.com/erickpaes/farmacia-manager-api/internal/usecases/authenticating"
	"github.com/erickpaes/farmacia-manager-api/internal/usecases/stocking"
	"github.com/erickpaes/farmacia-manager-api/pkg/apiErrors"
)

func RegistrarEntradaEstoque(service stocking.Stocker, authenticator authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.MovimentacaoEstoqueRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		movimentacao, err := service.RegistrarEntrada(r.Context(), &req)
		if err != nil {
			writeServiceError(w, r, authenticator, err)
			return
		}

		writeJSON(w, http.StatusCreated, movimentacao)
	}
}

// RegistrarSaidaEstoque registra uma saída manual. Estoque insuficiente é
// regra do backend: a rejeição volta como conflito com a mensagem original.
func RegistrarSaidaEstoque(service stocking.Stocker, authenticator authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.MovimentacaoEstoqueRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		movimentacao, err := service.RegistrarSaida(r.Context(), &req)
		if err != nil {
			writeServiceError(w, r, authenticator, err)
			return
		}

		writeJSON(w, http.StatusCreated, movimentacao)
	}
}

func GetHistoricoEstoque(service stocking.Stocker, authenticator authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := paramInt64(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do medicamento inválido", nil)
			return
		}

		limite, _ := strconv.Atoi(r.URL.Query().Get("limite"))

		historico, err := service.Historico(r.Context(), id, limite)
		if err != nil {
			writeServiceError(w, r, authenticator, err)
			return
		}

		writeJSON(w, http.StatusOK, historico)
	}
}

// GetMovimentacoesRecentes abre a tela de movimentações: as últimas entradas
// e saídas de vários medicamentos fundidas em ordem decrescente de data.
func GetMovimentacoesRecentes(service stocking.Stocker, authenticator authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		historico, err := service.HistoricoAgregado(r.Context())
		if err != nil {
			writeServiceError(w, r, authenticator, err)
			return
		}

		writeJSON(w, http.StatusOK, historico)
	}
}
