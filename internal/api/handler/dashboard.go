package handler

import (
	"net/http"

	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/campaign-dashboard-api/pkg/log"
)

func GetDashboard(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data := service.Dashboard(r.Context())

		log.ForContext(r.Context()).WithFields(log.Fields{
			"clients":            len(data.Clients),
			"versions_available": data.VersionsAvailable,
		}).Debug("dashboard: dados montados")

		writeJSON(w, r, http.StatusOK, data)
	})
}
