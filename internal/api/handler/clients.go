package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/campaign-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-dashboard-api/pkg/log"
	"github.com/vfg2006/campaign-dashboard-api/pkg/utils"
)

func ListClients(service reporting.ClientDirectory) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.Clients())
	})
}

// GetClientMetrics retorna o snapshot do cliente, opcionalmente restrito a start_date/end_date
func GetClientMetrics(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger := log.ForClient(r.Context(), id)

		from, to, ok := parsePeriod(w, r, logger)
		if !ok {
			return
		}

		if !ensureClient(w, service, id) {
			return
		}

		result := service.FetchClientMetrics(r.Context(), id)
		if !result.Found() {
			logger.Warn("metrics: nenhum dado disponível para o cliente")
			apiErrors.WriteError(w, apiErrors.ErrDataUnavailable, "Nenhum dado disponível para o cliente", nil)
			return
		}

		if result.Outcome == domain.FetchOutcomeStale {
			w.Header().Set(StaleHeader, "true")
		}

		snapshot := *result.Value
		if from != "" || to != "" {
			snapshot = snapshot.ForPeriod(from, to)
		}

		logger.WithFields(log.Fields{
			"outcome": string(result.Outcome),
			"days":    len(snapshot.DailyData),
		}).Debug("metrics: snapshot entregue")

		writeJSON(w, r, http.StatusOK, snapshot)
	})
}

func GetClientVersions(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if !ensureClient(w, service, id) {
			return
		}

		result := service.FetchClientVersions(r.Context(), id)
		if !result.Found() {
			apiErrors.WriteError(w, apiErrors.ErrDataUnavailable, "Versões indisponíveis para o cliente", nil)
			return
		}

		if result.Outcome == domain.FetchOutcomeStale {
			w.Header().Set(StaleHeader, "true")
		}

		writeJSON(w, r, http.StatusOK, result.Value)
	})
}

func ensureClient(w http.ResponseWriter, service reporting.ClientDirectory, id string) bool {
	if _, err := service.Client(id); err != nil {
		if errors.Is(err, reporting.ErrClientNotFound) {
			apiErrors.WriteError(w, apiErrors.ErrClientNotFound, "Cliente não encontrado: "+id, nil)
			return false
		}
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
		return false
	}
	return true
}

// parsePeriod valida start_date e end_date (YYYY-MM-DD). Parâmetros ausentes não restringem o período.
func parsePeriod(w http.ResponseWriter, r *http.Request, logger log.Logger) (string, string, bool) {
	rawStart := r.URL.Query().Get("start_date")
	rawEnd := r.URL.Query().Get("end_date")

	startDate, err := utils.ParseDate(rawStart)
	if err != nil {
		logger.WithFields(log.Fields{
			"start_date": rawStart,
			"error":      err.Error(),
		}).Warn("metrics: parâmetro start_date inválido")

		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date deve estar no formato YYYY-MM-DD", nil)
		return "", "", false
	}

	endDate, err := utils.ParseDate(rawEnd)
	if err != nil {
		logger.WithFields(log.Fields{
			"end_date": rawEnd,
			"error":    err.Error(),
		}).Warn("metrics: parâmetro end_date inválido")

		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date deve estar no formato YYYY-MM-DD", nil)
		return "", "", false
	}

	if rawStart != "" && rawEnd != "" && endDate.Before(*startDate) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "end_date anterior a start_date", nil)
		return "", "", false
	}

	var from, to string
	if rawStart != "" {
		from = startDate.Format(time.DateOnly)
	}
	if rawEnd != "" {
		to = endDate.Format(time.DateOnly)
	}
	return from, to, true
}
