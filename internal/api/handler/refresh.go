package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/refreshing"
	"github.com/vfg2006/campaign-dashboard-api/pkg/log"
)

// Mensagens exibidas pelo frontend do dashboard
const (
	refreshSuccessMessage = "Данные обновлены"
	refreshUsageMessage   = "Используйте POST для обновления данных"
)

type refreshResponse struct {
	Success bool                     `json:"success"`
	Message string                   `json:"message,omitempty"`
	RunID   string                   `json:"runId,omitempty"`
	Clients []domain.RefreshedClient `json:"clients,omitempty"`
	Error   string                   `json:"error,omitempty"`
}

// RunRefresh limpa o cache e recarrega as métricas de todos os clientes
func RunRefresh(service refreshing.Refresher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("refresh: atualização manual solicitada")

		report, err := service.Refresh(r.Context())
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, refreshing.ErrRefreshInProgress) {
				status = http.StatusConflict
			}

			logger.WithFields(log.Fields{
				"status_code": status,
				"error":       err.Error(),
			}).Error("refresh: falha na atualização manual")

			writeJSON(w, r, status, refreshResponse{Success: false, Error: err.Error()})
			return
		}

		logger.WithFields(log.Fields{
			log.RunIDField: report.RunID,
			"clients":      len(report.Clients),
		}).Info("refresh: atualização manual concluída")

		writeJSON(w, r, http.StatusOK, refreshResponse{
			Success: true,
			Message: refreshSuccessMessage,
			RunID:   report.RunID,
			Clients: report.Clients,
		})
	})
}

// RefreshUsage orienta o uso do endpoint sem executar nada
func RefreshUsage() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, map[string]any{
			"message": refreshUsageMessage,
			"method":  http.MethodPost,
		})
	})
}
