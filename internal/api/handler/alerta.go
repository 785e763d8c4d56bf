package handler

import (
	"net/http"
	"strconv"

	"github.com/erickpaes/farmacia-manager-api/internal/usecases/alerting"
	"github.com/erickpaes/farmacia-manager-api/internal/usecases/authenticating"
)

// GetAlertaEstoqueBaixo retorna os medicamentos com estoque no limite ou
// abaixo. Sem o parâmetro limite, vale o padrão configurado.
func GetAlertaEstoqueBaixo(service alerting.Alerter, authenticator authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limite, _ := strconv.Atoi(r.URL.Query().Get("limite"))

		alerta, err := service.EstoqueBaixo(r.Context(), limite)
		if err != nil {
			writeServiceError(w, r, authenticator, err)
			return
		}

		writeJSON(w, http.StatusOK, alerta)
	}
}

func GetAlertaValidadeProxima(service alerting.Alerter, authenticator authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dias, _ := strconv.Atoi(r.URL.Query().Get("dias"))

		alerta, err := service.ValidadeProxima(r.Context(), dias)
		if err != nil {
			writeServiceError(w, r, authenticator, err)
			return
		}

		writeJSON(w, http.StatusOK, alerta)
	}
}
