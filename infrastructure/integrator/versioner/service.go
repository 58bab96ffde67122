package versioner

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/semver"
	versionerdomain "github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/versioner/domain"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/versioner/versionerclient"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/pkg/log"
)

type VersionerIntegrator interface {
	// GetClientVersions consulta a página do Versioner de um cliente
	GetClientVersions(ctx context.Context, profile domain.ClientProfile) ([]domain.VersionRecord, error)
	// GetBulkVersions consulta o inventário consolidado de todos os projetos
	GetBulkVersions(ctx context.Context) ([]domain.ProjectVersionRecord, error)
	// IsAvailable verifica se o Versioner responde (normalmente exige VPN)
	IsAvailable(ctx context.Context) bool
}

type VersionerService struct {
	cfg    *config.Config
	Client versionerclient.Client
}

func New(cfg *config.Config, client versionerclient.Client) VersionerIntegrator {
	return &VersionerService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *VersionerService) GetClientVersions(ctx context.Context, profile domain.ClientProfile) ([]domain.VersionRecord, error) {
	if profile.VersionerPath == "" {
		return nil, fmt.Errorf("cliente %s sem versionerPath", profile.ID)
	}

	resp, err := s.Client.Fetch(ctx, profile.VersionerPath)
	if err != nil {
		return nil, err
	}

	inventory, err := versionerdomain.DecodeInventory(resp.ContentType, resp.Body)
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"client_id": profile.ID,
		"source":    inventory.Kind.String(),
	}).Debug("Inventário do Versioner decodificado")

	return inventory.Records(), nil
}

func (s *VersionerService) GetBulkVersions(ctx context.Context) ([]domain.ProjectVersionRecord, error) {
	resp, err := s.Client.Fetch(ctx, s.cfg.Versioner.BulkPath)
	if err != nil {
		return nil, err
	}

	records, err := versionerdomain.DecodeBulkInventory(resp.ContentType, resp.Body)
	if err != nil {
		return nil, err
	}
	ResolveLatestVersions(records)

	return records, nil
}

func (s *VersionerService) IsAvailable(ctx context.Context) bool {
	available, err := s.Client.Probe(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Debug("Versioner indisponível")
		return false
	}
	return available
}

// ResolveLatestVersions preenche LatestVersion com a maior versão semântica de
// cada módulo entre todos os projetos. Versões que não são semver são ignoradas
// na comparação e um LatestVersion informado pelo Versioner é preservado.
func ResolveLatestVersions(records []domain.ProjectVersionRecord) {
	latest := make(map[string]*semver.Version)

	for _, record := range records {
		version, err := semver.NewVersion(record.Version)
		if err != nil {
			continue
		}

		module := strings.ToLower(record.ModuleName)
		if current, ok := latest[module]; !ok || version.GreaterThan(current) {
			latest[module] = version
		}
	}

	for i := range records {
		if records[i].LatestVersion != "" {
			continue
		}
		if version, ok := latest[strings.ToLower(records[i].ModuleName)]; ok {
			records[i].LatestVersion = version.Original()
		}
	}
}

// FilterProject retorna as versões de um projeto do inventário consolidado
func FilterProject(records []domain.ProjectVersionRecord, projectKey string) []domain.VersionRecord {
	versions := []domain.VersionRecord{}
	for _, record := range records {
		if strings.EqualFold(record.Project, projectKey) {
			versions = append(versions, record.VersionRecord)
		}
	}
	return versions
}
