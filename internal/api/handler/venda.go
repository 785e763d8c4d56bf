package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"github.com/erickpaes/farmacia-manager-api/internal/usecases/authenticating"
	"github.com/erickpaes/farmacia-manager-api/internal/usecases/selling"
	"github.com/erickpaes/farmacia-manager-api/pkg/apiErrors"
)

type RascunhoClienteRequest struct {
	ClienteID int64 `json:"clienteId"`
}

type RascunhoMedicamentoRequest struct {
	MedicamentoID int64 `json:"medicamentoId"`
}

type RascunhoQuantidadeRequest struct {
	Quantidade int `json:"quantidade"`
}

func ListVendas(service selling.Seller, authenticator authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vendas, err := service.ListarVendas(r.Context())
		if err != nil {
			writeServiceError(w, r, authenticator, err)
			return
		}

		writeJSON(w, http.StatusOK, vendas)
	}
}

func GetVenda(service selling.Seller, authenticator authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := paramInt64(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID da venda inválido", nil)
			return
		}

		venda, err := service.BuscarVenda(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, authenticator, err)
			return
		}

		writeJSON(w, http.StatusOK, venda)
	}
}

// rascunhoParams extrai o ID do rascunho da URL e a sessão corrente. O
// rascunho pertence à sessão: outra sessão consultando o mesmo ID recebe 404.
func rascunhoParams(w http.ResponseWriter, r *http.Request) (sessionID, draftID string, ok bool) {
	claims, ok := claimsFromRequest(r)
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return "", "", false
	}

	draftID = httprouter.ParamsFromContext(r.Context()).ByName("id")
	if draftID == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do rascunho não fornecido", nil)
		return "", "", false
	}

	return claims.SessionID, draftID, true
}

func itemIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName("index")
	index, err := strconv.Atoi(raw)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Índice do item inválido", nil)
		return 0, false
	}
	return index, true
}

// CreateRascunho abre um rascunho de venda novo, já com uma linha vazia.
func CreateRascunho(service selling.Seller, authenticator authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		draft, err := service.CriarRascunho(r.Context(), claims.SessionID)
		if err != nil {
			writeServiceError(w, r, authenticator, err)
			return
		}

		writeJSON(w, http.StatusCreated, draft)
	}
}

// GetRascunhoResumo devolve a visão derivada do rascunho: linhas enriquecidas
// com os dados do medicamento, total recalculado e o sinal de prontidão.
func GetRascunhoResumo(service selling.Seller, authenticator authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, draftID, ok := rascunhoParams(w, r)
		if !ok {
			return
		}

		resumo, err := service.Resumo(r.Context(), sessionID, draftID)
		if err != nil {
			writeServiceError(w, r, authenticator, err)
			return
		}

		writeJSON(w, http.StatusOK, resumo)
	}
}

func SetRascunhoCliente(service selling.Seller, authenticator authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, draftID, ok := rascunhoParams(w, r)
		if !ok {
			return
		}

		var req RascunhoClienteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.DefinirCliente(r.Context(), sessionID, draftID, req.ClienteID); err != nil {
			writeServiceError(w, r, authenticator, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func AddRascunhoItem(service selling.Seller, authenticator authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, draftID, ok := rascunhoParams(w, r)
		if !ok {
			return
		}

		draft, err := service.AdicionarItem(r.Context(), sessionID, draftID)
		if err != nil {
			writeServiceError(w, r, authenticator, err)
			return
		}

		writeJSON(w, http.StatusOK, draft)
	}
}

func RemoveRascunhoItem(service selling.Seller, authenticator authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, draftID, ok := rascunhoParams(w, r)
		if !ok {
			return
		}

		index, ok := itemIndex(w, r)
		if !ok {
			return
		}

		draft, err := service.RemoverItem(r.Context(), sessionID, draftID, index)
		if err != nil {
			writeServiceError(w, r, authenticator, err)
			return
		}

		writeJSON(w, http.StatusOK, draft)
	}
}

// SetRascunhoItemMedicamento associa um medicamento à linha. Medicamento já
// usado em outra linha é rejeitado e a linha volta ao estado sem escolha.
func SetRascunhoItemMedicamento(service selling.Seller, authenticator authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, draftID, ok := rascunhoParams(w, r)
		if !ok {
			return
		}

		index, ok := itemIndex(w, r)
		if !ok {
			return
		}

		var req RascunhoMedicamentoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		draft, err := service.DefinirItemMedicamento(r.Context(), sessionID, draftID, index, req.MedicamentoID)
		if err != nil {
			writeServiceError(w, r, authenticator, err)
			return
		}

		writeJSON(w, http.StatusOK, draft)
	}
}

func SetRascunhoItemQuantidade(service selling.Seller, authenticator authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, draftID, ok := rascunhoParams(w, r)
		if !ok {
			return
		}

		index, ok := itemIndex(w, r)
		if !ok {
			return
		}

		var req RascunhoQuantidadeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		draft, err := service.DefinirItemQuantidade(r.Context(), sessionID, draftID, index, req.Quantidade)
		if err != nil {
			writeServiceError(w, r, authenticator, err)
			return
		}

		writeJSON(w, http.StatusOK, draft)
	}
}

// SubmeterRascunho envia a venda ao backend. Rejeição do backend mantém o
// rascunho intacto para correção; venda aceita descarta o rascunho.
func SubmeterRascunho(service selling.Seller, authenticator authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, draftID, ok := rascunhoParams(w, r)
		if !ok {
			return
		}

		venda, err := service.Submeter(r.Context(), sessionID, draftID)
		if err != nil {
			writeServiceError(w, r, authenticator, err)
			return
		}

		writeJSON(w, http.StatusCreated, venda)
	}
}

func DescartarRascunho(service selling.Seller, authenticator authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, draftID, ok := rascunhoParams(w, r)
		if !ok {
			return
		}

		if err := service.DescartarRascunho(r.Context(), sessionID, draftID); err != nil {
			writeServiceError(w, r, authenticator, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
