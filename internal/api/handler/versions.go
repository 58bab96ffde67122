package handler

import (
	"net/http"

	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/reporting"
)

func ListVersions(service reporting.VersionFetcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.FetchAllVersions(r.Context()))
	})
}

func GetVersionerStatus(service reporting.VersionFetcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, map[string]bool{
			"available": service.IsVersionerAvailable(r.Context()),
		})
	})
}
