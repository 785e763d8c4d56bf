package handler

import (
	"net/http"
	"strconv"

	"github.com/erickpaes/farmacia-manager-api/internal/domain"
	"github.com/erickpaes/farmacia-manager-api/internal/usecases/authenticating"
	"github.com/erickpaes/farmacia-manager-api/internal/usecases/cataloging"
	"github.com/erickpaes/farmacia-manager-api/pkg/apiErrors"
)

func ListMedicamentos(service cataloging.Cataloger, authenticator authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		medicamentos, err := service.ListarMedicamentos(r.Context())
		if err != nil {
			writeServiceError(w, r, authenticator, err)
			return
		}

		writeJSON(w, http.StatusOK, medicamentos)
	}
}

func GetMedicamento(service cataloging.Cataloger, authenticator authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := paramInt64(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do medicamento inválido", nil)
			return
		}

		medicamento, err := service.BuscarMedicamento(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, authenticator, err)
			return
		}

		writeJSON(w, http.StatusOK, medicamento)
	}
}

func CreateMedicamento(service cataloging.Cataloger, authenticator authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.MedicamentoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		medicamento, err := service.CriarMedicamento(r.Context(), &req)
		if err != nil {
			writeServiceError(w, r, authenticator, err)
			return
		}

		writeJSON(w, http.StatusCreated, medicamento)
	}
}

func UpdateMedicamento(service cataloging.Cataloger, authenticator authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := paramInt64(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do medicamento inválido", nil)
			return
		}

		var req domain.MedicamentoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		medicamento, err := service.AtualizarMedicamento(r.Context(), id, &req)
		if err != nil {
			writeServiceError(w, r, authenticator, err)
			return
		}

		writeJSON(w, http.StatusOK, medicamento)
	}
}

func DeleteMedicamento(service cataloging.Cataloger, authenticator authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := paramInt64(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do medicamento inválido", nil)
			return
		}

		if err := service.ExcluirMedicamento(r.Context(), id); err != nil {
			writeServiceError(w, r, authenticator, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

type MedicamentoStatusRequest struct {
	Ativo bool `json:"ativo"`
}

// ToggleMedicamentoStatus ativa ou desativa um medicamento sem mexer no resto
// do cadastro. Medicamento inativo some das sugestões de venda e estoque.
func ToggleMedicamentoStatus(service cataloging.Cataloger, authenticator authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := paramInt64(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do medicamento inválido", nil)
			return
		}

		var req MedicamentoStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.AlternarStatusMedicamento(r.Context(), id, req.Ativo); err != nil {
			writeServiceError(w, r, authenticator, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// SugerirMedicamentos alimenta o autocomplete. As telas de venda e estoque
// pedem somente_ativos=true; a de catálogo busca sobre todos.
func SugerirMedicamentos(service cataloging.Cataloger, authenticator authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		somenteAtivos, _ := strconv.ParseBool(r.URL.Query().Get("somente_ativos"))

		medicamentos, err := service.SugerirMedicamentos(r.Context(), query, somenteAtivos)
		if err != nil {
			writeServiceError(w, r, authenticator, err)
			return
		}

		writeJSON(w, http.StatusOK, medicamentos)
	}
}
