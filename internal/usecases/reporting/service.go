package reporting

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/versioner"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/versioner/versionerclient"
	"github.com/vfg2006/campaign-dashboard-api/internal/cache"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/pkg/log"
	"github.com/vfg2006/campaign-dashboard-api/pkg/telemetry"
	"golang.org/x/sync/errgroup"
)

// Service implementa Reporter sobre as planilhas e o Versioner
type Service struct {
	cfg       *config.Config
	sheets    sheets.SheetsIntegrator
	versioner versioner.VersionerIntegrator
	clock     clockwork.Clock

	metrics  *cache.Typed[domain.ClientMetricsSnapshot]
	versions *cache.Typed[domain.ClientVersionSnapshot]
	bulk     *cache.Typed[[]domain.ProjectVersionRecord]
}

// NewService cria o serviço de relatórios. O cache é compartilhado com a atualização manual.
func NewService(
	cfg *config.Config,
	sheetsService sheets.SheetsIntegrator,
	versionerService versioner.VersionerIntegrator,
	store *cache.Store,
	clock clockwork.Clock,
) *Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Service{
		cfg:       cfg,
		sheets:    sheetsService,
		versioner: versionerService,
		clock:     clock,
		metrics:   cache.NewTyped[domain.ClientMetricsSnapshot](store),
		versions:  cache.NewTyped[domain.ClientVersionSnapshot](store),
		bulk:      cache.NewTyped[[]domain.ProjectVersionRecord](store),
	}
}

func (s *Service) Clients() []domain.ClientProfile {
	return s.cfg.Clients
}

func (s *Service) Client(id string) (domain.ClientProfile, error) {
	client, ok := s.cfg.ClientByID(id)
	if !ok {
		return domain.ClientProfile{}, ErrClientNotFound
	}
	return client, nil
}

// FetchClientMetrics retorna as métricas de um cliente. Em caso de falha na
// planilha devolve o último snapshot conhecido, mesmo expirado.
func (s *Service) FetchClientMetrics(ctx context.Context, clientID string) domain.FetchResult[domain.ClientMetricsSnapshot] {
	return s.fetchClientMetrics(ctx, clientID, false)
}

// RefetchClientMetrics vai à planilha mesmo com o cache válido, mantendo o
// snapshot anterior como fallback se a busca falhar
func (s *Service) RefetchClientMetrics(ctx context.Context, clientID string) domain.FetchResult[domain.ClientMetricsSnapshot] {
	return s.fetchClientMetrics(ctx, clientID, true)
}

func (s *Service) fetchClientMetrics(ctx context.Context, clientID string, force bool) domain.FetchResult[domain.ClientMetricsSnapshot] {
	logger := log.ForClient(ctx, clientID)
	key := cache.MetricsKey(clientID)

	cached, fresh, found := s.metrics.Peek(key)
	if fresh && !force {
		logger.Debug("Retornando métricas do cache")
		telemetry.CountFetch(telemetry.SourceSheets, string(domain.FetchOutcomeOK))
		return domain.Fresh(cached)
	}

	profile, err := s.Client(clientID)
	if err != nil {
		logger.Error("Cliente não encontrado na configuração")
		telemetry.CountFetch(telemetry.SourceSheets, string(domain.FetchOutcomeAbsent))
		return domain.Absent[domain.ClientMetricsSnapshot]()
	}

	started := s.clock.Now()

	daily, err := s.sheets.GetDailyMetrics(ctx, profile)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar métricas da planilha")
		return s.metricsFallback(logger, cached, found, started)
	}

	snapshot := domain.ClientMetricsSnapshot{
		ClientID:    profile.ID,
		ClientName:  profile.Name,
		LastUpdated: s.clock.Now(),
		DailyData:   daily,
		Summary:     domain.CalculateSummary(daily),
	}

	s.metrics.Set(key, snapshot, s.cfg.Cache.TTL)

	logger.Infof("Carregados %d registros de métricas", len(daily))
	telemetry.ObserveFetch(telemetry.SourceSheets, string(domain.FetchOutcomeOK), s.clock.Since(started))

	return domain.Fresh(&snapshot)
}

func (s *Service) metricsFallback(logger log.Logger, cached *domain.ClientMetricsSnapshot, found bool, started time.Time) domain.FetchResult[domain.ClientMetricsSnapshot] {
	if found {
		logger.Warn("Retornando métricas expiradas do cache")
		telemetry.ObserveFetch(telemetry.SourceSheets, string(domain.FetchOutcomeStale), s.clock.Since(started))
		return domain.Stale(cached)
	}

	telemetry.ObserveFetch(telemetry.SourceSheets, string(domain.FetchOutcomeAbsent), s.clock.Since(started))
	return domain.Absent[domain.ClientMetricsSnapshot]()
}

// FetchClientVersions retorna as versões de módulos de um cliente, consultando
// a página do cliente ou o inventário consolidado conforme VERSIONER_MODE
func (s *Service) FetchClientVersions(ctx context.Context, clientID string) domain.FetchResult[domain.ClientVersionSnapshot] {
	return s.fetchClientVersions(ctx, clientID, false)
}

// RefetchClientVersions consulta o Versioner mesmo com o cache válido. No modo
// bulk o inventário consolidado em cache, se válido, é reaproveitado.
func (s *Service) RefetchClientVersions(ctx context.Context, clientID string) domain.FetchResult[domain.ClientVersionSnapshot] {
	return s.fetchClientVersions(ctx, clientID, true)
}

func (s *Service) fetchClientVersions(ctx context.Context, clientID string, force bool) domain.FetchResult[domain.ClientVersionSnapshot] {
	logger := log.ForClient(ctx, clientID)
	key := cache.VersionsKey(clientID)

	cached, fresh, found := s.versions.Peek(key)
	if fresh && !force {
		logger.Debug("Retornando versões do cache")
		telemetry.CountFetch(telemetry.SourceVersioner, string(domain.FetchOutcomeOK))
		return domain.Fresh(cached)
	}

	profile, err := s.Client(clientID)
	if err != nil || (s.cfg.Versioner.Mode == config.VersionerModePerClient && profile.VersionerPath == "") {
		logger.Error("Cliente ou caminho do Versioner não encontrado")
		telemetry.CountFetch(telemetry.SourceVersioner, string(domain.FetchOutcomeAbsent))
		return domain.Absent[domain.ClientVersionSnapshot]()
	}

	started := s.clock.Now()

	var records []domain.VersionRecord
	if s.cfg.Versioner.Mode == config.VersionerModeBulk {
		records, err = s.projectVersions(ctx, profile)
	} else {
		records, err = s.versioner.GetClientVersions(ctx, profile)
	}

	if err != nil {
		if errors.Is(err, versionerclient.ErrTimeout) {
			logger.WithError(err).Error("Timeout ao consultar o Versioner (VPN desligada?)")
		} else {
			logger.WithError(err).Error("Erro ao consultar o Versioner")
		}

		if found {
			logger.Warn("Retornando versões expiradas do cache")
			telemetry.ObserveFetch(telemetry.SourceVersioner, string(domain.FetchOutcomeStale), s.clock.Since(started))
			return domain.Stale(cached)
		}

		telemetry.ObserveFetch(telemetry.SourceVersioner, string(domain.FetchOutcomeAbsent), s.clock.Since(started))
		return domain.Absent[domain.ClientVersionSnapshot]()
	}

	snapshot := domain.ClientVersionSnapshot{
		ClientID:    profile.ID,
		Versions:    records,
		LastChecked: s.clock.Now(),
	}

	s.versions.Set(key, snapshot, s.cfg.Cache.TTL)

	logger.Infof("Obtidos %d módulos do Versioner", len(records))
	telemetry.ObserveFetch(telemetry.SourceVersioner, string(domain.FetchOutcomeOK), s.clock.Since(started))

	return domain.Fresh(&snapshot)
}

// projectVersions filtra o inventário consolidado pelo projeto do cliente.
// O inventário tem entrada própria no cache e é baixado uma vez para todos os clientes.
func (s *Service) projectVersions(ctx context.Context, profile domain.ClientProfile) ([]domain.VersionRecord, error) {
	projectKey := profile.ProjectKey
	if projectKey == "" {
		projectKey = profile.ID
	}

	if records, ok := s.bulk.Get(cache.BulkVersionsKey); ok {
		return versioner.FilterProject(*records, projectKey), nil
	}

	records, err := s.refreshBulk(ctx)
	if err != nil {
		return nil, err
	}

	return versioner.FilterProject(records, projectKey), nil
}

// refreshBulk baixa o inventário consolidado e o grava no cache
func (s *Service) refreshBulk(ctx context.Context) ([]domain.ProjectVersionRecord, error) {
	records, err := s.versioner.GetBulkVersions(ctx)
	if err != nil {
		return nil, err
	}

	s.bulk.Set(cache.BulkVersionsKey, records, s.cfg.Cache.TTL)
	return records, nil
}

// FetchAllClientsMetrics busca as métricas de todos os clientes em paralelo.
// Clientes sem dados são omitidos e a ordem da configuração é mantida.
func (s *Service) FetchAllClientsMetrics(ctx context.Context) []domain.ClientMetricsSnapshot {
	return fetchAll(ctx, s.newGroup(), s.Clients(), s.FetchClientMetrics)
}

// RefetchAllClientsMetrics recarrega as métricas de todos os clientes ignorando
// a validade do cache. Usado pela atualização agendada.
func (s *Service) RefetchAllClientsMetrics(ctx context.Context) []domain.ClientMetricsSnapshot {
	return fetchAll(ctx, s.newGroup(), s.Clients(), s.RefetchClientMetrics)
}

// FetchAllVersions busca as versões de todos os clientes em paralelo
func (s *Service) FetchAllVersions(ctx context.Context) []domain.ClientVersionSnapshot {
	return fetchAll(ctx, s.newGroup(), s.Clients(), s.FetchClientVersions)
}

// RefetchAllVersions recarrega as versões de todos os clientes ignorando a
// validade do cache. No modo bulk o inventário é baixado uma única vez; se
// essa busca falhar, cada cliente segue o fluxo normal com fallback.
func (s *Service) RefetchAllVersions(ctx context.Context) []domain.ClientVersionSnapshot {
	if s.cfg.Versioner.Mode == config.VersionerModeBulk {
		if _, err := s.refreshBulk(ctx); err != nil {
			log.ForContext(ctx).WithError(err).Error("Erro ao recarregar o inventário consolidado do Versioner")
			return s.FetchAllVersions(ctx)
		}
	}

	return fetchAll(ctx, s.newGroup(), s.Clients(), s.RefetchClientVersions)
}

// fetchAll executa fetch para cada cliente, gravando cada resultado no slot do
// seu índice. Slots sem dados são descartados.
func fetchAll[T any](
	ctx context.Context,
	g *errgroup.Group,
	clients []domain.ClientProfile,
	fetch func(context.Context, string) domain.FetchResult[T],
) []T {
	slots := make([]*T, len(clients))

	for i, client := range clients {
		g.Go(func() error {
			if result := fetch(ctx, client.ID); result.Found() {
				slots[i] = result.Value
			}
			return nil
		})
	}
	_ = g.Wait()

	values := make([]T, 0, len(slots))
	for _, value := range slots {
		if value != nil {
			values = append(values, *value)
		}
	}
	return values
}

func (s *Service) IsVersionerAvailable(ctx context.Context) bool {
	return s.versioner.IsAvailable(ctx)
}

// Dashboard busca as métricas e verifica o Versioner ao mesmo tempo
func (s *Service) Dashboard(ctx context.Context) domain.DashboardData {
	var data domain.DashboardData

	var g errgroup.Group
	g.Go(func() error {
		data.Clients = s.FetchAllClientsMetrics(ctx)
		return nil
	})
	g.Go(func() error {
		data.VersionsAvailable = s.IsVersionerAvailable(ctx)
		return nil
	})
	_ = g.Wait()

	for _, snapshot := range data.Clients {
		if data.LastGlobalUpdate == nil || snapshot.LastUpdated.After(*data.LastGlobalUpdate) {
			lastUpdated := snapshot.LastUpdated
			data.LastGlobalUpdate = &lastUpdated
		}
	}

	return data
}

// newGroup cria o grupo de busca. Os goroutines nunca retornam erro, assim a
// falha de um cliente não cancela os demais.
func (s *Service) newGroup() *errgroup.Group {
	g := &errgroup.Group{}
	if s.cfg.RefreshSync.MaxConcurrentFetches > 0 {
		g.SetLimit(s.cfg.RefreshSync.MaxConcurrentFetches)
	}
	return g
}
