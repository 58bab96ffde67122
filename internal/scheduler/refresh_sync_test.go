package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/refreshing"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/refreshing/mocks"
	"go.uber.org/mock/gomock"
)

func newRefreshSyncConfig(enabled bool) *config.Config {
	return &config.Config{
		Cache: config.Cache{TTL: 24 * time.Hour},
		RefreshSync: config.RefreshSync{
			CronSchedule: "0 5 * * *",
			Enabled:      enabled,
		},
	}
}

func TestRefreshSyncService_syncAll(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(refresher *mocks.MockRefresher)
		validate func(t *testing.T, status map[string]any)
	}{
		{
			name: "Atualização concluída registra os clientes",
			setup: func(refresher *mocks.MockRefresher) {
				refresher.EXPECT().Warm(gomock.Any()).Return(&domain.RefreshReport{
					RunID:   "run_abc",
					Clients: []domain.RefreshedClient{{ID: "t2-rf"}, {ID: "beeline-rf"}},
				}, nil)
			},
			validate: func(t *testing.T, status map[string]any) {
				assert.Equal(t, 2, status["last_sync_clients"])
				assert.Equal(t, "", status["last_sync_error"])
				assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
			},
		},
		{
			name: "Atualização recusada registra o erro",
			setup: func(refresher *mocks.MockRefresher) {
				refresher.EXPECT().Warm(gomock.Any()).Return(nil, refreshing.ErrRefreshInProgress)
			},
			validate: func(t *testing.T, status map[string]any) {
				assert.Equal(t, refreshing.ErrRefreshInProgress.Error(), status["last_sync_error"])
				assert.True(t, status["last_sync_completed_at"].(time.Time).IsZero())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			refresher := mocks.NewMockRefresher(ctrl)
			tt.setup(refresher)

			service := NewRefreshSyncService(refresher, newRefreshSyncConfig(true))
			service.syncAll(context.Background())

			status := service.GetStatus()
			assert.Equal(t, false, status["sync_running"])
			assert.False(t, status["last_sync_started_at"].(time.Time).IsZero())
			tt.validate(t, status)
		})
	}
}

func TestRefreshSyncService_TriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	done := make(chan struct{})
	refresher := mocks.NewMockRefresher(ctrl)
	refresher.EXPECT().Warm(gomock.Any()).DoAndReturn(func(ctx context.Context) (*domain.RefreshReport, error) {
		defer close(done)
		return &domain.RefreshReport{RunID: "run_manual"}, nil
	})

	service := NewRefreshSyncService(refresher, newRefreshSyncConfig(true))

	require.True(t, service.TriggerManualSync(context.Background()))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("atualização manual não executou")
	}
}

func TestRefreshSyncService_TriggerManualSyncWhileRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewRefreshSyncService(mocks.NewMockRefresher(ctrl), newRefreshSyncConfig(true))
	service.syncRunning = true

	assert.False(t, service.TriggerManualSync(context.Background()))
}

func TestRefreshSyncService_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Desabilitado não agenda", func(t *testing.T) {
		service := NewRefreshSyncService(mocks.NewMockRefresher(ctrl), newRefreshSyncConfig(false))

		require.NoError(t, service.Start(context.Background()))
		assert.Empty(t, service.scheduler.Jobs())
	})

	t.Run("Cron inválido", func(t *testing.T) {
		cfg := newRefreshSyncConfig(true)
		cfg.RefreshSync.CronSchedule = "not a cron"
		service := NewRefreshSyncService(mocks.NewMockRefresher(ctrl), cfg)

		assert.Error(t, service.Start(context.Background()))
	})

	t.Run("Agenda e para com o contexto", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		service := NewRefreshSyncService(mocks.NewMockRefresher(ctrl), newRefreshSyncConfig(true))

		require.NoError(t, service.Start(ctx))
		assert.Len(t, service.scheduler.Jobs(), 1)
	})
}
