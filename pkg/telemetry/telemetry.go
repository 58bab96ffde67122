package telemetry

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Fontes de dados observadas
const (
	SourceSheets    = "sheets"
	SourceVersioner = "versioner"
)

// Origem de uma atualização
const (
	TriggerManual    = "manual"
	TriggerScheduled = "scheduled"
)

var (
	fetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dashboard",
		Name:      "fetch_total",
		Help:      "Buscas por fonte de dados e resultado (ok, stale, absent).",
	}, []string{"source", "outcome"})

	fetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "dashboard",
		Name:      "fetch_duration_seconds",
		Help:      "Duração das buscas que foram até a fonte de dados.",
		Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	}, []string{"source"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "dashboard",
		Name:      "http_request_duration_seconds",
		Help:      "Duração das requisições HTTP por rota e status.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	refreshTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dashboard",
		Name:      "refresh_total",
		Help:      "Atualizações de cache por origem e resultado.",
	}, []string{"trigger", "result"})
)

// CountFetch registra uma busca respondida sem ir à fonte (cache ou cliente inválido)
func CountFetch(source, outcome string) {
	fetchTotal.WithLabelValues(source, outcome).Inc()
}

// ObserveFetch registra uma busca que foi até a fonte e quanto tempo ela levou
func ObserveFetch(source, outcome string, elapsed time.Duration) {
	fetchTotal.WithLabelValues(source, outcome).Inc()
	fetchDuration.WithLabelValues(source).Observe(elapsed.Seconds())
}

// RecordRefresh registra uma atualização concluída ou recusada
func RecordRefresh(trigger string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	refreshTotal.WithLabelValues(trigger, result).Inc()
}

// ObserveRequest registra uma requisição HTTP. Rotas inexistentes são agrupadas
// para não criar uma série por URL desconhecida.
func ObserveRequest(method, path string, status int, duration time.Duration) {
	if status == http.StatusNotFound || status == http.StatusMethodNotAllowed {
		path = "unmatched"
	}
	httpDuration.WithLabelValues(method, path, strconv.Itoa(status)).Observe(duration.Seconds())
}

// Handler expõe as métricas no formato do Prometheus
func Handler() http.Handler {
	return promhttp.Handler()
}
