package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/campaign-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-dashboard-api/pkg/log"
)

// CronJobRunner é o agendador de atualização do cache visto pelos handlers
type CronJobRunner interface {
	TriggerManualSync(ctx context.Context) bool
	GetStatus() map[string]any
}

// RunCronJob dispara a atualização agendada fora do horário, sem limpar o cache
func RunCronJob(runner CronJobRunner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if runner == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de atualização agendada não disponível", nil)
			return
		}

		if !runner.TriggerManualSync(r.Context()) {
			logger.Info("cron: atualização já em andamento")
			apiErrors.WriteError(w, apiErrors.ErrRefreshInProgress, "Atualização já em andamento", nil)
			return
		}

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Atualização do cache iniciada",
		})
	})
}

// GetCronStatus retorna o status do agendador
func GetCronStatus(runner CronJobRunner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if runner == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de atualização agendada não disponível", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{
			"refresh": runner.GetStatus(),
		})
	})
}
