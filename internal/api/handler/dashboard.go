package handler

import (
	"net/http"

	"github.com/erickpaes/farmacia-manager-api/internal/usecases/authenticating"
	"github.com/erickpaes/farmacia-manager-api/internal/usecases/dashboarding"
)

// GetDashboard monta a visão de abertura: contagens dos cadastros e os dois
// cartões de alerta. Cada bloco degrada por conta própria, então a resposta é
// sempre 200 mesmo com o backend mancando.
func GetDashboard(service dashboarding.Dashboarder, authenticator authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resumo, err := service.Resumo(r.Context())
		if err != nil {
			writeServiceError(w, r, authenticator, err)
			return
		}

		writeJSON(w, http.StatusOK, resumo)
	}
}
