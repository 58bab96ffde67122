package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/refreshing"
)

// RefreshSyncConfig representa a configuração do agendador de atualização do cache
type RefreshSyncConfig struct {
	CronSchedule         string
	MaxConcurrentFetches int
	CacheTTL             time.Duration
	SyncEnabled          bool
}

// RefreshSyncService agenda a atualização diária do cache de métricas e versões
type RefreshSyncService struct {
	scheduler           *gocron.Scheduler
	config              RefreshSyncConfig
	refresher           refreshing.Refresher
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
	lastSyncClients     int
}

// NewRefreshSyncService cria uma nova instância do agendador de atualização
func NewRefreshSyncService(refresher refreshing.Refresher, appConfig *config.Config) *RefreshSyncService {
	syncConfig := RefreshSyncConfig{
		CronSchedule:         appConfig.RefreshSync.CronSchedule,
		MaxConcurrentFetches: appConfig.RefreshSync.MaxConcurrentFetches,
		CacheTTL:             appConfig.Cache.TTL,
		SyncEnabled:          appConfig.RefreshSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":          syncConfig.CronSchedule,
		"max_concurrent_fetches": syncConfig.MaxConcurrentFetches,
		"cache_ttl":              syncConfig.CacheTTL.String(),
		"sync_enabled":           syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de atualização do cache carregada")

	return &RefreshSyncService{
		scheduler: scheduler,
		config:    syncConfig,
		refresher: refresher,
	}
}

// Start inicia o agendador
func (s *RefreshSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Atualização agendada do cache desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de atualização do cache")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAll(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do cache: %w", err)
	}

	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização do cache")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAll recarrega métricas e versões de todos os clientes sem limpar o cache
func (s *RefreshSyncService) syncAll(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização do cache já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando atualização agendada do cache")
	startTime := time.Now()

	report, err := s.refresher.Warm(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if err != nil {
		s.lastSyncError = err.Error()
		logrus.WithError(err).Error("Erro na atualização agendada do cache")
		return
	}

	s.lastSyncError = ""
	s.lastSyncClients = len(report.Clients)
	s.lastSyncCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"run_id":   report.RunID,
		"duration": time.Since(startTime).String(),
		"clients":  len(report.Clients),
	}).Info("Atualização agendada do cache concluída")
}

// TriggerManualSync inicia manualmente uma atualização sem limpar o cache.
// Retorna false se já existe uma atualização em andamento.
func (s *RefreshSyncService) TriggerManualSync(ctx context.Context) bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização do cache já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando atualização manual do cache")
	go s.syncAll(context.WithoutCancel(ctx))
	return true
}

// GetStatus retorna o status atual do agendador
func (s *RefreshSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentFetches,
		"cache_ttl":              s.config.CacheTTL.String(),
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_clients":      s.lastSyncClients,
		"last_sync_error":        s.lastSyncError,
	}
}
