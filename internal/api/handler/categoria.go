package handler

import (
	"net/http"

	"github.com/erickpaes/farmacia-manager-api/internal/domain"
	"github.com/erickpaes/farmacia-manager-api/internal/usecases/authenticating"
	"github.com/erickpaes/farmacia-manager-api/internal/usecases/cataloging"
	"github.com/erickpaes/farmacia-manager-api/pkg/apiErrors"
)

func ListCategorias(service cataloging.Cataloger, authenticator authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categorias, err := service.ListarCategorias(r.Context())
		if err != nil {
			writeServiceError(w, r, authenticator, err)
			return
		}

		writeJSON(w, http.StatusOK, categorias)
	}
}

func GetCategoria(service cataloging.Cataloger, authenticator authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := paramInt64(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID da categoria inválido", nil)
			return
		}

		categoria, err := service.BuscarCategoria(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, authenticator, err)
			return
		}

		writeJSON(w, http.StatusOK, categoria)
	}
}

func CreateCategoria(service cataloging.Cataloger, authenticator authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CategoriaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		categoria, err := service.CriarCategoria(r.Context(), &req)
		if err != nil {
			writeServiceError(w, r, authenticator, err)
			return
		}

		writeJSON(w, http.StatusCreated, categoria)
	}
}

func UpdateCategoria(service cataloging.Cataloger, authenticator authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := paramInt64(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID da categoria inválido", nil)
			return
		}

		var req domain.CategoriaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		categoria, err := service.AtualizarCategoria(r.Context(), id, &req)
		if err != nil {
			writeServiceError(w, r, authenticator, err)
			return
		}

		writeJSON(w, http.StatusOK, categoria)
	}
}

// DeleteCategoria repassa a exclusão; categoria com medicamentos vinculados é
// rejeitada pelo backend e a mensagem dele chega ao SPA como conflito.
func DeleteCategoria(service cataloging.Cataloger, authenticator authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := paramInt64(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID da categoria inválido", nil)
			return
		}

		if err := service.ExcluirCategoria(r.Context(), id); err != nil {
			writeServiceError(w, r, authenticator, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
