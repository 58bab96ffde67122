package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sheetsmocks "github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/sheets/mocks"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/versioner"
	versionermocks "github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/versioner/mocks"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/versioner/versionerclient"
	versionerclientmocks "github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/versioner/versionerclient/mocks"
	"github.com/vfg2006/campaign-dashboard-api/internal/cache"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

var (
	t2Profile      = domain.ClientProfile{ID: "t2-rf", Name: "Т2 РФ", SpreadsheetID: "sheet-t2", VersionerPath: "/t2", ProjectKey: "t2"}
	beelineProfile = domain.ClientProfile{ID: "beeline-rf", Name: "Билайн РФ", SpreadsheetID: "sheet-beeline", VersionerPath: "/beeline", ProjectKey: "beeline"}
)

type fixture struct {
	service   *Service
	sheets    *sheetsmocks.MockSheetsIntegrator
	versioner *versionermocks.MockVersionerIntegrator
	store     *cache.Store
	clock     *clockwork.FakeClock
}

func newFixture(t *testing.T, mode string) *fixture {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{
		Cache:     config.Cache{TTL: 24 * time.Hour},
		Versioner: config.Versioner{Mode: mode},
		Clients:   []domain.ClientProfile{t2Profile, beelineProfile},
	}

	clock := clockwork.NewFakeClockAt(time.Date(2024, 3, 16, 8, 0, 0, 0, time.UTC))
	store := cache.New(clock)
	sheets := sheetsmocks.NewMockSheetsIntegrator(ctrl)
	versioner := versionermocks.NewMockVersionerIntegrator(ctrl)

	return &fixture{
		service:   NewService(cfg, sheets, versioner, store, clock),
		sheets:    sheets,
		versioner: versioner,
		store:     store,
		clock:     clock,
	}
}

func dailyMetrics(dates ...string) []domain.DailyMetric {
	metrics := make([]domain.DailyMetric, 0, len(dates))
	for _, date := range dates {
		metrics = append(metrics, domain.DailyMetric{Date: date, DeliveredSms: 100, Profit: 10, SmsToClickConversion: 0.1})
	}
	return metrics
}

func TestFetchClientMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("Busca na planilha e grava no cache", func(t *testing.T) {
		f := newFixture(t, config.VersionerModePerClient)
		f.sheets.EXPECT().GetDailyMetrics(gomock.Any(), t2Profile).Return(dailyMetrics("2024-03-14", "2024-03-15"), nil).Times(1)

		result := f.service.FetchClientMetrics(ctx, "t2-rf")

		require.Equal(t, domain.FetchOutcomeOK, result.Outcome)
		assert.Equal(t, "t2-rf", result.Value.ClientID)
		assert.Equal(t, "Т2 РФ", result.Value.ClientName)
		assert.Equal(t, f.clock.Now(), result.Value.LastUpdated)
		assert.Equal(t, 200.0, result.Value.Summary.TotalSms)
		assert.Equal(t, "2024-03-14", result.Value.Summary.PeriodStart)
		assert.True(t, f.store.Has(cache.MetricsKey("t2-rf")))

		// Segunda chamada vem do cache
		cached := f.service.FetchClientMetrics(ctx, "t2-rf")
		assert.Equal(t, domain.FetchOutcomeOK, cached.Outcome)
		assert.Equal(t, result.Value.DailyData, cached.Value.DailyData)
	})

	t.Run("Cliente desconhecido", func(t *testing.T) {
		f := newFixture(t, config.VersionerModePerClient)

		result := f.service.FetchClientMetrics(ctx, "mts")

		assert.Equal(t, domain.FetchOutcomeAbsent, result.Outcome)
		assert.False(t, result.Found())
	})

	t.Run("Erro sem cache", func(t *testing.T) {
		f := newFixture(t, config.VersionerModePerClient)
		f.sheets.EXPECT().GetDailyMetrics(gomock.Any(), t2Profile).Return(nil, errors.New("credentials"))

		result := f.service.FetchClientMetrics(ctx, "t2-rf")

		assert.Equal(t, domain.FetchOutcomeAbsent, result.Outcome)
		assert.Nil(t, result.Value)
	})

	t.Run("Erro com cache expirado retorna dado antigo", func(t *testing.T) {
		f := newFixture(t, config.VersionerModePerClient)
		gomock.InOrder(
			f.sheets.EXPECT().GetDailyMetrics(gomock.Any(), t2Profile).Return(dailyMetrics("2024-03-15"), nil),
			f.sheets.EXPECT().GetDailyMetrics(gomock.Any(), t2Profile).Return(nil, errors.New("quota exceeded")),
		)

		first := f.service.FetchClientMetrics(ctx, "t2-rf")
		require.Equal(t, domain.FetchOutcomeOK, first.Outcome)

		f.clock.Advance(25 * time.Hour)

		result := f.service.FetchClientMetrics(ctx, "t2-rf")

		assert.Equal(t, domain.FetchOutcomeStale, result.Outcome)
		assert.True(t, result.Found())
		assert.Equal(t, first.Value.LastUpdated, result.Value.LastUpdated)
	})
}

func TestFetchClientVersions_PerClient(t *testing.T) {
	ctx := context.Background()

	t.Run("Busca e grava no cache", func(t *testing.T) {
		f := newFixture(t, config.VersionerModePerClient)
		f.versioner.EXPECT().GetClientVersions(gomock.Any(), t2Profile).Return([]domain.VersionRecord{
			{ModuleName: "api", Version: "1.2.3", Environment: "production"},
		}, nil).Times(1)

		result := f.service.FetchClientVersions(ctx, "t2-rf")
		require.Equal(t, domain.FetchOutcomeOK, result.Outcome)
		assert.Equal(t, "t2-rf", result.Value.ClientID)
		assert.Len(t, result.Value.Versions, 1)
		assert.Equal(t, f.clock.Now(), result.Value.LastChecked)

		cached := f.service.FetchClientVersions(ctx, "t2-rf")
		assert.Equal(t, domain.FetchOutcomeOK, cached.Outcome)
	})

	t.Run("Timeout com snapshot expirado retorna o snapshot", func(t *testing.T) {
		f := newFixture(t, config.VersionerModePerClient)
		gomock.InOrder(
			f.versioner.EXPECT().GetClientVersions(gomock.Any(), t2Profile).Return([]domain.VersionRecord{
				{ModuleName: "api", Version: "1.2.3", Environment: "production"},
			}, nil),
			f.versioner.EXPECT().GetClientVersions(gomock.Any(), t2Profile).Return(nil, versionerclient.ErrTimeout),
		)

		first := f.service.FetchClientVersions(ctx, "t2-rf")
		require.Equal(t, domain.FetchOutcomeOK, first.Outcome)

		f.clock.Advance(48 * time.Hour)

		result := f.service.FetchClientVersions(ctx, "t2-rf")

		assert.Equal(t, domain.FetchOutcomeStale, result.Outcome)
		assert.Equal(t, "1.2.3", result.Value.Versions[0].Version)
	})

	t.Run("Timeout sem snapshot", func(t *testing.T) {
		f := newFixture(t, config.VersionerModePerClient)
		f.versioner.EXPECT().GetClientVersions(gomock.Any(), t2Profile).Return(nil, versionerclient.ErrTimeout)

		result := f.service.FetchClientVersions(ctx, "t2-rf")

		assert.Equal(t, domain.FetchOutcomeAbsent, result.Outcome)
	})

	t.Run("Cliente sem caminho no Versioner", func(t *testing.T) {
		f := newFixture(t, config.VersionerModePerClient)
		f.service.cfg.Clients = append(f.service.cfg.Clients, domain.ClientProfile{ID: "mts", SpreadsheetID: "x"})

		result := f.service.FetchClientVersions(ctx, "mts")

		assert.Equal(t, domain.FetchOutcomeAbsent, result.Outcome)
	})
}

func TestFetchClientVersions_Bulk(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, config.VersionerModeBulk)

	f.versioner.EXPECT().GetBulkVersions(gomock.Any()).Return([]domain.ProjectVersionRecord{
		{Project: "t2", VersionRecord: domain.VersionRecord{ModuleName: "api", Version: "1.2.3", LatestVersion: "1.3.0"}},
		{Project: "beeline", VersionRecord: domain.VersionRecord{ModuleName: "api", Version: "1.3.0", LatestVersion: "1.3.0"}},
		{Project: "beeline", VersionRecord: domain.VersionRecord{ModuleName: "web", Version: "2.0.0", LatestVersion: "2.0.0"}},
	}, nil).Times(1)

	t2 := f.service.FetchClientVersions(ctx, "t2-rf")
	beeline := f.service.FetchClientVersions(ctx, "beeline-rf")

	require.Equal(t, domain.FetchOutcomeOK, t2.Outcome)
	require.Equal(t, domain.FetchOutcomeOK, beeline.Outcome)
	require.Len(t, t2.Value.Versions, 1)
	assert.True(t, t2.Value.Versions[0].Outdated())
	assert.Len(t, beeline.Value.Versions, 2)
	assert.True(t, f.store.Has(cache.BulkVersionsKey))
}

func TestFetchAllClientsMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("Mantém a ordem da configuração", func(t *testing.T) {
		f := newFixture(t, config.VersionerModePerClient)
		f.sheets.EXPECT().GetDailyMetrics(gomock.Any(), t2Profile).DoAndReturn(
			func(ctx context.Context, profile domain.ClientProfile) ([]domain.DailyMetric, error) {
				time.Sleep(20 * time.Millisecond)
				return dailyMetrics("2024-03-15"), nil
			})
		f.sheets.EXPECT().GetDailyMetrics(gomock.Any(), beelineProfile).Return(dailyMetrics("2024-03-14"), nil)

		snapshots := f.service.FetchAllClientsMetrics(ctx)

		require.Len(t, snapshots, 2)
		assert.Equal(t, "t2-rf", snapshots[0].ClientID)
		assert.Equal(t, "beeline-rf", snapshots[1].ClientID)
	})

	t.Run("Cliente com erro é omitido", func(t *testing.T) {
		f := newFixture(t, config.VersionerModePerClient)
		f.sheets.EXPECT().GetDailyMetrics(gomock.Any(), t2Profile).Return(nil, errors.New("forbidden"))
		f.sheets.EXPECT().GetDailyMetrics(gomock.Any(), beelineProfile).Return(dailyMetrics("2024-03-14"), nil)

		snapshots := f.service.FetchAllClientsMetrics(ctx)

		require.Len(t, snapshots, 1)
		assert.Equal(t, "beeline-rf", snapshots[0].ClientID)
	})

	t.Run("Respeita o limite de concorrência", func(t *testing.T) {
		f := newFixture(t, config.VersionerModePerClient)
		f.service.cfg.RefreshSync.MaxConcurrentFetches = 1
		f.sheets.EXPECT().GetDailyMetrics(gomock.Any(), gomock.Any()).Return(dailyMetrics("2024-03-14"), nil).Times(2)

		snapshots := f.service.FetchAllClientsMetrics(ctx)

		assert.Len(t, snapshots, 2)
	})
}

func TestFetchAllVersions(t *testing.T) {
	f := newFixture(t, config.VersionerModePerClient)
	f.versioner.EXPECT().GetClientVersions(gomock.Any(), t2Profile).Return(nil, versionerclient.ErrTimeout)
	f.versioner.EXPECT().GetClientVersions(gomock.Any(), beelineProfile).Return([]domain.VersionRecord{}, nil)

	snapshots := f.service.FetchAllVersions(context.Background())

	require.Len(t, snapshots, 1)
	assert.Equal(t, "beeline-rf", snapshots[0].ClientID)
}

func TestFetchClientVersions_InventarioMalformado(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	cfg := &config.Config{
		Cache:     config.Cache{TTL: 24 * time.Hour},
		Versioner: config.Versioner{Mode: config.VersionerModePerClient},
		Clients:   []domain.ClientProfile{t2Profile},
	}

	clock := clockwork.NewFakeClockAt(time.Date(2024, 3, 16, 8, 0, 0, 0, time.UTC))
	client := versionerclientmocks.NewMockClient(ctrl)
	service := NewService(cfg, sheetsmocks.NewMockSheetsIntegrator(ctrl), versioner.New(cfg, client), cache.New(clock), clock)

	gomock.InOrder(
		client.EXPECT().Fetch(gomock.Any(), "/t2").Return(&versionerclient.Response{
			ContentType: "application/json",
			Body:        []byte(`{"auth-service":"2.1.0"}`),
		}, nil),
		client.EXPECT().Fetch(gomock.Any(), "/t2").Return(&versionerclient.Response{
			ContentType: "application/json",
			Body:        []byte(`{"auth-service":`),
		}, nil),
	)

	first := service.FetchClientVersions(ctx, "t2-rf")
	require.Equal(t, domain.FetchOutcomeOK, first.Outcome)
	require.Len(t, first.Value.Versions, 1)

	clock.Advance(25 * time.Hour)

	result := service.FetchClientVersions(ctx, "t2-rf")

	require.Equal(t, domain.FetchOutcomeStale, result.Outcome)
	require.Len(t, result.Value.Versions, 1)
	assert.Equal(t, "2.1.0", result.Value.Versions[0].Version)
	assert.Equal(t, first.Value.LastChecked, result.Value.LastChecked)
}

func TestRefetchAllClientsMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("Busca novamente mesmo com cache válido", func(t *testing.T) {
		f := newFixture(t, config.VersionerModePerClient)
		f.sheets.EXPECT().GetDailyMetrics(gomock.Any(), t2Profile).Return(dailyMetrics("2024-03-15"), nil).Times(2)
		f.sheets.EXPECT().GetDailyMetrics(gomock.Any(), beelineProfile).Return(dailyMetrics("2024-03-14"), nil).Times(2)

		require.Len(t, f.service.FetchAllClientsMetrics(ctx), 2)

		f.clock.Advance(time.Hour)
		snapshots := f.service.RefetchAllClientsMetrics(ctx)

		require.Len(t, snapshots, 2)
		assert.Equal(t, f.clock.Now(), snapshots[0].LastUpdated)
	})

	t.Run("Erro mantém o dado em cache", func(t *testing.T) {
		f := newFixture(t, config.VersionerModePerClient)
		gomock.InOrder(
			f.sheets.EXPECT().GetDailyMetrics(gomock.Any(), t2Profile).Return(dailyMetrics("2024-03-15"), nil),
			f.sheets.EXPECT().GetDailyMetrics(gomock.Any(), t2Profile).Return(nil, errors.New("quota exceeded")),
		)
		gomock.InOrder(
			f.sheets.EXPECT().GetDailyMetrics(gomock.Any(), beelineProfile).Return(dailyMetrics("2024-03-14"), nil),
			f.sheets.EXPECT().GetDailyMetrics(gomock.Any(), beelineProfile).Return(dailyMetrics("2024-03-14", "2024-03-15"), nil),
		)

		first := f.service.FetchAllClientsMetrics(ctx)
		require.Len(t, first, 2)

		snapshots := f.service.RefetchAllClientsMetrics(ctx)

		require.Len(t, snapshots, 2)
		assert.Equal(t, first[0].LastUpdated, snapshots[0].LastUpdated)
		assert.Len(t, snapshots[1].DailyData, 2)
	})
}

func TestRefetchAllVersions_Bulk(t *testing.T) {
	ctx := context.Background()

	t.Run("Baixa o inventário uma vez por atualização", func(t *testing.T) {
		f := newFixture(t, config.VersionerModeBulk)
		f.service.cfg.RefreshSync.MaxConcurrentFetches = 1
		f.versioner.EXPECT().GetBulkVersions(gomock.Any()).Return([]domain.ProjectVersionRecord{
			{Project: "t2", VersionRecord: domain.VersionRecord{ModuleName: "api", Version: "1.2.3"}},
		}, nil).Times(2)

		require.Len(t, f.service.FetchAllVersions(ctx), 2)

		snapshots := f.service.RefetchAllVersions(ctx)

		require.Len(t, snapshots, 2)
		assert.Len(t, snapshots[0].Versions, 1)
		assert.Empty(t, snapshots[1].Versions)
	})

	t.Run("Falha no inventário usa o cache", func(t *testing.T) {
		f := newFixture(t, config.VersionerModeBulk)
		f.service.cfg.RefreshSync.MaxConcurrentFetches = 1
		gomock.InOrder(
			f.versioner.EXPECT().GetBulkVersions(gomock.Any()).Return([]domain.ProjectVersionRecord{
				{Project: "t2", VersionRecord: domain.VersionRecord{ModuleName: "api", Version: "1.2.3"}},
			}, nil),
			f.versioner.EXPECT().GetBulkVersions(gomock.Any()).Return(nil, versionerclient.ErrTimeout),
		)

		first := f.service.FetchAllVersions(ctx)
		require.Len(t, first, 2)

		snapshots := f.service.RefetchAllVersions(ctx)

		require.Len(t, snapshots, 2)
		assert.Equal(t, first[0].Versions, snapshots[0].Versions)
	})
}

func TestDashboard(t *testing.T) {
	t.Run("Combina métricas e disponibilidade do Versioner", func(t *testing.T) {
		f := newFixture(t, config.VersionerModePerClient)
		f.sheets.EXPECT().GetDailyMetrics(gomock.Any(), t2Profile).Return(dailyMetrics("2024-03-15"), nil)
		f.sheets.EXPECT().GetDailyMetrics(gomock.Any(), beelineProfile).Return(dailyMetrics("2024-03-14"), nil)
		f.versioner.EXPECT().IsAvailable(gomock.Any()).Return(true)

		data := f.service.Dashboard(context.Background())

		assert.Len(t, data.Clients, 2)
		assert.True(t, data.VersionsAvailable)
		require.NotNil(t, data.LastGlobalUpdate)
		assert.Equal(t, f.clock.Now(), *data.LastGlobalUpdate)
	})

	t.Run("Sem dados", func(t *testing.T) {
		f := newFixture(t, config.VersionerModePerClient)
		f.sheets.EXPECT().GetDailyMetrics(gomock.Any(), gomock.Any()).Return(nil, errors.New("forbidden")).Times(2)
		f.versioner.EXPECT().IsAvailable(gomock.Any()).Return(false)

		data := f.service.Dashboard(context.Background())

		assert.Empty(t, data.Clients)
		assert.False(t, data.VersionsAvailable)
		assert.Nil(t, data.LastGlobalUpdate)
	})
}

func TestClient(t *testing.T) {
	f := newFixture(t, config.VersionerModePerClient)

	client, err := f.service.Client("beeline-rf")
	require.NoError(t, err)
	assert.Equal(t, "Билайн РФ", client.Name)

	_, err = f.service.Client("mts")
	assert.ErrorIs(t, err, ErrClientNotFound)

	assert.Len(t, f.service.Clients(), 2)
}
