package refreshing

//go:generate mockgen -source=service.go -destination=mocks/refresher_mock.go -package=mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/vfg2006/campaign-dashboard-api/internal/cache"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/campaign-dashboard-api/pkg/log"
	"github.com/vfg2006/campaign-dashboard-api/pkg/telemetry"
	"github.com/vfg2006/campaign-dashboard-api/pkg/utils"
	"golang.org/x/sync/errgroup"
)

// Refresher recarrega o cache de métricas e versões
type Refresher interface {
	// Refresh limpa o cache e busca novamente as métricas de todos os clientes
	Refresh(ctx context.Context) (*domain.RefreshReport, error)

	// Warm busca novamente métricas e versões mesmo com o cache válido, sem
	// limpá-lo, preservando o fallback para dado expirado
	Warm(ctx context.Context) (*domain.RefreshReport, error)
}

type Service struct {
	reporter reporting.Reporter
	store    *cache.Store

	runMutex sync.Mutex
	running  bool
}

func NewService(reporter reporting.Reporter, store *cache.Store) *Service {
	return &Service{
		reporter: reporter,
		store:    store,
	}
}

func (s *Service) Refresh(ctx context.Context) (*domain.RefreshReport, error) {
	report, err := s.run(ctx, func(ctx context.Context, logger log.Logger) []domain.ClientMetricsSnapshot {
		s.store.Clear()
		logger.Info("Cache limpo")

		// Versões voltam para o cache na próxima consulta
		return s.reporter.FetchAllClientsMetrics(ctx)
	})

	telemetry.RecordRefresh(telemetry.TriggerManual, err)
	return report, err
}

func (s *Service) Warm(ctx context.Context) (*domain.RefreshReport, error) {
	report, err := s.run(ctx, func(ctx context.Context, logger log.Logger) []domain.ClientMetricsSnapshot {
		var (
			snapshots []domain.ClientMetricsSnapshot
			versions  []domain.ClientVersionSnapshot
		)

		var g errgroup.Group
		g.Go(func() error {
			snapshots = s.reporter.RefetchAllClientsMetrics(ctx)
			return nil
		})
		g.Go(func() error {
			versions = s.reporter.RefetchAllVersions(ctx)
			return nil
		})
		_ = g.Wait()

		logger.Infof("Versões atualizadas para %d clientes", len(versions))
		return snapshots
	})

	telemetry.RecordRefresh(telemetry.TriggerScheduled, err)
	return report, err
}

// run garante uma única atualização por vez e monta o relatório
func (s *Service) run(ctx context.Context, load func(context.Context, log.Logger) []domain.ClientMetricsSnapshot) (*domain.RefreshReport, error) {
	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		return nil, ErrRefreshInProgress
	}
	s.running = true
	s.runMutex.Unlock()

	defer func() {
		s.runMutex.Lock()
		s.running = false
		s.runMutex.Unlock()
	}()

	runID, err := utils.NewRunID()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerateRunID, err)
	}

	// Os logs dos fetchers passam a carregar o run_id
	ctx = log.WithRunID(ctx, runID)
	logger := log.ForContext(ctx)

	snapshots := load(ctx, logger)

	// Requisição cancelada durante a busca
	if err := ctx.Err(); err != nil {
		logger.WithError(err).Warn("Atualização interrompida")
		return nil, err
	}

	logger.Infof("Carregados dados de %d clientes", len(snapshots))

	return domain.NewRefreshReport(runID, snapshots), nil
}
