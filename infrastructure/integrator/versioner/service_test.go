package versioner

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	versionerdomain "github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/versioner/domain"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/versioner/versionerclient"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/versioner/versionerclient/mocks"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestConfig() *config.Config {
	return &config.Config{
		Versioner: config.Versioner{
			URL:      "http://versioner.test",
			Mode:     config.VersionerModeBulk,
			BulkPath: "/api/versions",
		},
	}
}

func TestGetClientVersions(t *testing.T) {
	profile := domain.ClientProfile{ID: "t2-rf", VersionerPath: "/t2"}

	tests := []struct {
		name      string
		profile   domain.ClientProfile
		setupMock func(client *mocks.MockClient)
		want      []domain.VersionRecord
		wantErr   error
	}{
		{
			name:    "Objeto JSON",
			profile: profile,
			setupMock: func(client *mocks.MockClient) {
				client.EXPECT().Fetch(gomock.Any(), "/t2").Return(&versionerclient.Response{
					ContentType: "application/json",
					Body:        []byte(`{"api":"1.2.3","web":"2.0.0"}`),
				}, nil)
			},
			want: []domain.VersionRecord{
				{ModuleName: "api", Version: "1.2.3", Environment: "production"},
				{ModuleName: "web", Version: "2.0.0", Environment: "production"},
			},
		},
		{
			name:    "Página HTML",
			profile: profile,
			setupMock: func(client *mocks.MockClient) {
				client.EXPECT().Fetch(gomock.Any(), "/t2").Return(&versionerclient.Response{
					ContentType: "text/html; charset=utf-8",
					Body:        []byte(`<tr><td>api</td><td>1.2.3</td></tr>`),
				}, nil)
			},
			want: []domain.VersionRecord{
				{ModuleName: "api", Version: "1.2.3", Environment: "production"},
			},
		},
		{
			name:    "Timeout",
			profile: profile,
			setupMock: func(client *mocks.MockClient) {
				client.EXPECT().Fetch(gomock.Any(), "/t2").Return(nil, versionerclient.ErrTimeout)
			},
			wantErr: versionerclient.ErrTimeout,
		},
		{
			name:    "JSON truncado",
			profile: profile,
			setupMock: func(client *mocks.MockClient) {
				client.EXPECT().Fetch(gomock.Any(), "/t2").Return(&versionerclient.Response{
					ContentType: "application/json",
					Body:        []byte(`{"auth-service":`),
				}, nil)
			},
			wantErr: versionerdomain.ErrMalformedInventory,
		},
		{
			name:      "Cliente sem caminho no Versioner",
			profile:   domain.ClientProfile{ID: "mts"},
			setupMock: func(client *mocks.MockClient) {},
			wantErr:   errors.New("sem versionerPath"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mocks.NewMockClient(ctrl)
			tt.setupMock(client)

			service := New(newTestConfig(), client)
			versions, err := service.GetClientVersions(context.Background(), tt.profile)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, versions)
		})
	}
}

func TestGetBulkVersions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().Fetch(gomock.Any(), "/api/versions").Return(&versionerclient.Response{
		ContentType: "application/json",
		Body: []byte(`[
			{"project":"t2","name":"api","version":"1.2.3"},
			{"project":"beeline","name":"api","version":"1.10.0"},
			{"project":"beeline","name":"web","version":"dev-build"}
		]`),
	}, nil)

	service := New(newTestConfig(), client)
	records, err := service.GetBulkVersions(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "1.10.0", records[0].LatestVersion)
	assert.True(t, records[0].Outdated())
	assert.Equal(t, "1.10.0", records[1].LatestVersion)
	assert.False(t, records[1].Outdated())
	assert.Empty(t, records[2].LatestVersion)
}

func TestGetBulkVersions_JSONInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().Fetch(gomock.Any(), "/api/versions").Return(&versionerclient.Response{
		ContentType: "application/json",
		Body:        []byte(`[{"project":"t2","name":`),
	}, nil)

	service := New(newTestConfig(), client)
	records, err := service.GetBulkVersions(context.Background())

	assert.ErrorIs(t, err, versionerdomain.ErrMalformedInventory)
	assert.Nil(t, records)
}

func TestIsAvailable(t *testing.T) {
	tests := []struct {
		name      string
		available bool
		err       error
		want      bool
	}{
		{name: "Disponível", available: true, want: true},
		{name: "Resposta não 2xx", available: false, want: false},
		{name: "Timeout", err: versionerclient.ErrTimeout, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mocks.NewMockClient(ctrl)
			client.EXPECT().Probe(gomock.Any()).Return(tt.available, tt.err)

			service := New(newTestConfig(), client)
			assert.Equal(t, tt.want, service.IsAvailable(context.Background()))
		})
	}
}

func TestResolveLatestVersions(t *testing.T) {
	records := []domain.ProjectVersionRecord{
		{Project: "t2", VersionRecord: domain.VersionRecord{ModuleName: "API", Version: "v1.2.3"}},
		{Project: "beeline", VersionRecord: domain.VersionRecord{ModuleName: "api", Version: "1.2.10"}},
		{Project: "mts", VersionRecord: domain.VersionRecord{ModuleName: "api", Version: "1.3.0-rc.1"}},
		{Project: "mts", VersionRecord: domain.VersionRecord{ModuleName: "web", Version: "N/A"}},
		{Project: "t2", VersionRecord: domain.VersionRecord{ModuleName: "web", Version: "2.0.0", LatestVersion: "2.1.0"}},
	}

	ResolveLatestVersions(records)

	assert.Equal(t, "1.3.0-rc.1", records[0].LatestVersion)
	assert.Equal(t, "1.3.0-rc.1", records[1].LatestVersion)
	assert.Equal(t, "1.3.0-rc.1", records[2].LatestVersion)
	assert.Equal(t, "2.0.0", records[3].LatestVersion)
	assert.Equal(t, "2.1.0", records[4].LatestVersion)
}

func TestFilterProject(t *testing.T) {
	records := []domain.ProjectVersionRecord{
		{Project: "T2", VersionRecord: domain.VersionRecord{ModuleName: "api", Version: "1.0.0"}},
		{Project: "beeline", VersionRecord: domain.VersionRecord{ModuleName: "api", Version: "1.1.0"}},
		{Project: "t2", VersionRecord: domain.VersionRecord{ModuleName: "web", Version: "2.0.0"}},
	}

	versions := FilterProject(records, "t2")

	require.Len(t, versions, 2)
	assert.Equal(t, "api", versions[0].ModuleName)
	assert.Equal(t, "web", versions[1].ModuleName)
	assert.Empty(t, FilterProject(records, "mts"))
}
