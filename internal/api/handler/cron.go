package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/erickpaes/farmacia-manager-api/internal/scheduler"
	"github.com/erickpaes/farmacia-manager-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeAlertSnapshots = "alert-snapshots"
)

// CronJobServices contém os agendadores que aceitam disparo manual
type CronJobServices struct {
	AlertSnapshotSyncService *scheduler.AlertSnapshotSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeAlertSnapshots:
			if services.AlertSnapshotSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de snapshots de alertas não disponível", nil)
				return
			}
			// A sincronização roda em background com as credenciais de
			// serviço; o contexto da requisição morre junto com a resposta.
			services.AlertSnapshotSyncService.TriggerManualSync(context.Background())

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: alert-snapshots", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"alert-snapshots": services.AlertSnapshotSyncService.GetStatus(),
		}

		writeJSON(w, http.StatusOK, status)
	}
}
