package handler

import (
	"net/http"

	"github.com/vfg2006/campaign-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/refreshing"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/campaign-dashboard-api/pkg/middleware"
	"github.com/vfg2006/campaign-dashboard-api/pkg/telemetry"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: telemetry.Handler(),
		},
	}
}

// Refresh expõe a atualização manual. Com refreshSecret vazio a rota fica aberta.
func Refresh(service refreshing.Refresher, refreshSecret string) []router.Route {
	return []router.Route{
		{
			Path:        "/api/refresh",
			Method:      http.MethodPost,
			Handler:     RunRefresh(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RefreshGuard(refreshSecret)},
		},
		{
			Path:    "/api/refresh",
			Method:  http.MethodGet,
			Handler: RefreshUsage(),
		},
	}
}

func Clients(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/clients",
			Method:  http.MethodGet,
			Handler: ListClients(service),
		},
		{
			Path:    "/v1/clients/:id/metrics",
			Method:  http.MethodGet,
			Handler: GetClientMetrics(service),
		},
		{
			Path:    "/v1/clients/:id/versions",
			Method:  http.MethodGet,
			Handler: GetClientVersions(service),
		},
	}
}

func Dashboard(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
	}
}

func Versions(service reporting.VersionFetcher) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/versions",
			Method:  http.MethodGet,
			Handler: ListVersions(service),
		},
		{
			Path:    "/v1/versioner/status",
			Method:  http.MethodGet,
			Handler: GetVersionerStatus(service),
		},
	}
}

func CronJobs(runner CronJobRunner, refreshSecret string) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/refresh/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(runner),
			Middlewares: []func(http.Handler) http.Handler{middleware.RefreshGuard(refreshSecret)},
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(runner),
		},
	}
}
