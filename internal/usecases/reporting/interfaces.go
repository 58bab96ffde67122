package reporting

//go:generate mockgen -source=interfaces.go -destination=mocks/reporter_mock.go -package=mocks

import (
	"context"

	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
)

// ClientDirectory expõe os clientes configurados
type ClientDirectory interface {
	// Clients retorna os clientes na ordem da configuração
	Clients() []domain.ClientProfile

	// Client busca um cliente pelo id, retornando ErrClientNotFound se não existir
	Client(id string) (domain.ClientProfile, error)
}

// MetricsFetcher busca as métricas diárias das planilhas, com cache e fallback para dado expirado
type MetricsFetcher interface {
	FetchClientMetrics(ctx context.Context, clientID string) domain.FetchResult[domain.ClientMetricsSnapshot]
	FetchAllClientsMetrics(ctx context.Context) []domain.ClientMetricsSnapshot

	// RefetchAllClientsMetrics ignora a validade do cache, mas mantém o fallback para dado expirado
	RefetchAllClientsMetrics(ctx context.Context) []domain.ClientMetricsSnapshot
}

// VersionFetcher busca as versões de módulos no Versioner
type VersionFetcher interface {
	FetchClientVersions(ctx context.Context, clientID string) domain.FetchResult[domain.ClientVersionSnapshot]
	FetchAllVersions(ctx context.Context) []domain.ClientVersionSnapshot
	RefetchAllVersions(ctx context.Context) []domain.ClientVersionSnapshot
	IsVersionerAvailable(ctx context.Context) bool
}

// Reporter é a interface completa usada pelos handlers e pela atualização de cache
type Reporter interface {
	ClientDirectory
	MetricsFetcher
	VersionFetcher

	// Dashboard reúne as métricas de todos os clientes e o estado do Versioner
	Dashboard(ctx context.Context) domain.DashboardData
}
