package sheets

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/pkg/log"
)

type SheetsIntegrator interface {
	GetDailyMetrics(ctx context.Context, profile domain.ClientProfile) ([]domain.DailyMetric, error)
}

type SheetsService struct {
	cfg    *config.Config
	Client sheetsclient.Client
}

func New(cfg *config.Config, client sheetsclient.Client) SheetsIntegrator {
	return &SheetsService{
		cfg:    cfg,
		Client: client,
	}
}

// GetDailyMetrics lê a planilha do cliente e retorna as métricas diárias em ordem de data
func (s *SheetsService) GetDailyMetrics(ctx context.Context, profile domain.ClientProfile) ([]domain.DailyMetric, error) {
	logger := log.ForContext(ctx).WithField("client_id", profile.ID)

	sheetName, err := s.resolveSheetName(ctx, profile)
	if err != nil {
		return nil, err
	}

	readRange := SheetRange(sheetName, s.cfg.Sheets.ColumnRange)

	rows, err := s.Client.GetValues(ctx, profile.SpreadsheetID, readRange)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler planilha do cliente %s", profile.ID)
	}

	headerRows := min(max(s.cfg.Sheets.HeaderRows, 0), len(rows))

	metrics := make([]domain.DailyMetric, 0, len(rows)-headerRows)
	for _, row := range rows[headerRows:] {
		metric, ok := RowToMetric(row)
		if !ok {
			continue
		}
		metrics = append(metrics, metric)
	}

	// Datas ISO ordenam como string. Dias repetidos mantêm a ordem da planilha.
	sort.SliceStable(metrics, func(i, j int) bool {
		return metrics[i].Date < metrics[j].Date
	})

	logger.WithField("records", len(metrics)).Debug("Métricas lidas da planilha")

	return metrics, nil
}

// resolveSheetName usa a primeira aba da planilha. Sem ela, cai para a aba
// configurada no cliente e depois para a aba padrão.
func (s *SheetsService) resolveSheetName(ctx context.Context, profile domain.ClientProfile) (string, error) {
	name, err := s.Client.FirstSheetName(ctx, profile.SpreadsheetID)
	if err == nil {
		return name, nil
	}

	if errors.Is(err, sheetsclient.ErrMissingCredentials) {
		return "", err
	}

	fallback := profile.SheetName
	if fallback == "" {
		fallback = s.cfg.Sheets.DefaultSheet
	}

	log.ForContext(ctx).WithError(err).
		WithField("client_id", profile.ID).
		Warnf("Não foi possível descobrir a primeira aba, usando %s", fallback)

	return fallback, nil
}

// SheetRange monta o intervalo em notação A1 com o nome da aba entre aspas
func SheetRange(sheetName, columns string) string {
	escaped := strings.ReplaceAll(sheetName, "'", "''")
	return fmt.Sprintf("'%s'!%s", escaped, columns)
}
