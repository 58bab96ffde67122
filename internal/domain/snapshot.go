package domain

import "time"

// FetchOutcome indica a origem do dado entregue por um fetcher
type FetchOutcome string

const (
	FetchOutcomeOK     FetchOutcome = "ok"     // Dado atual (cache válido ou busca nova)
	FetchOutcomeStale  FetchOutcome = "stale"  // Busca falhou, dado expirado do cache
	FetchOutcomeAbsent FetchOutcome = "absent" // Nenhum dado disponível
)

// FetchResult encapsula o resultado de uma busca junto com sua origem
type FetchResult[T any] struct {
	Value   *T
	Outcome FetchOutcome
}

// Found informa se existe algum dado, atual ou expirado
func (r FetchResult[T]) Found() bool {
	return r.Value != nil && r.Outcome != FetchOutcomeAbsent
}

func Fresh[T any](value *T) FetchResult[T] {
	return FetchResult[T]{Value: value, Outcome: FetchOutcomeOK}
}

func Stale[T any](value *T) FetchResult[T] {
	return FetchResult[T]{Value: value, Outcome: FetchOutcomeStale}
}

func Absent[T any]() FetchResult[T] {
	return FetchResult[T]{Outcome: FetchOutcomeAbsent}
}

// ClientMetricsSnapshot é o envelope de métricas de um cliente
type ClientMetricsSnapshot struct {
	ClientID    string         `json:"clientId"`
	ClientName  string         `json:"clientName"`
	LastUpdated time.Time      `json:"lastUpdated"`
	DailyData   []DailyMetric  `json:"dailyData"`
	Summary     MetricsSummary `json:"summary"`
}

// LastDate retorna a data mais recente da série, ou vazio
func (s ClientMetricsSnapshot) LastDate() string {
	if len(s.DailyData) == 0 {
		return ""
	}
	return s.DailyData[len(s.DailyData)-1].Date
}

// ForPeriod retorna uma cópia do snapshot restrita ao período, com o resumo recalculado
func (s ClientMetricsSnapshot) ForPeriod(from, to string) ClientMetricsSnapshot {
	daily := FilterByPeriod(s.DailyData, from, to)
	return ClientMetricsSnapshot{
		ClientID:    s.ClientID,
		ClientName:  s.ClientName,
		LastUpdated: s.LastUpdated,
		DailyData:   daily,
		Summary:     CalculateSummary(daily),
	}
}

// DashboardData reúne os dados exibidos na página principal
type DashboardData struct {
	Clients           []ClientMetricsSnapshot `json:"clients"`
	VersionsAvailable bool                    `json:"versionsAvailable"`
	LastGlobalUpdate  *time.Time              `json:"lastGlobalUpdate,omitempty"`
}
