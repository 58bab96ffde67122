package sheetsclient

//go:generate mockgen -source=client.go -destination=mocks/client_mock.go -package=mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/pkg/errors"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// ErrMissingCredentials indica que GOOGLE_CREDENTIALS_JSON não foi configurada
var ErrMissingCredentials = errors.New("GOOGLE_CREDENTIALS_JSON não configurada")

// Client expõe apenas a leitura que o dashboard precisa da API do Google Sheets
type Client interface {
	// FirstSheetName retorna o título da primeira aba da planilha
	FirstSheetName(ctx context.Context, spreadsheetID string) (string, error)
	// GetValues retorna as células do intervalo como texto formatado
	GetValues(ctx context.Context, spreadsheetID, readRange string) ([][]string, error)
}

type GoogleSheetsClient struct {
	cfg *config.Config

	mu      sync.Mutex
	service *sheets.Service
}

// NewClient cria o cliente. A autenticação acontece na primeira chamada,
// assim a ausência de credenciais falha apenas a busca em andamento.
func NewClient(cfg *config.Config) Client {
	return &GoogleSheetsClient{cfg: cfg}
}

func (c *GoogleSheetsClient) FirstSheetName(ctx context.Context, spreadsheetID string) (string, error) {
	service, err := c.authenticate(ctx)
	if err != nil {
		return "", err
	}

	spreadsheet, err := service.Spreadsheets.Get(spreadsheetID).
		Fields("sheets.properties.title").
		Context(ctx).
		Do()
	if err != nil {
		return "", errors.Wrap(err, "erro ao buscar abas da planilha")
	}

	if len(spreadsheet.Sheets) == 0 || spreadsheet.Sheets[0].Properties == nil || spreadsheet.Sheets[0].Properties.Title == "" {
		return "", errors.New("planilha sem abas")
	}

	return spreadsheet.Sheets[0].Properties.Title, nil
}

func (c *GoogleSheetsClient) GetValues(ctx context.Context, spreadsheetID, readRange string) ([][]string, error) {
	service, err := c.authenticate(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := service.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler intervalo %s", readRange)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = cellToString(cell)
		}
		rows = append(rows, cells)
	}

	return rows, nil
}

// authenticate cria o serviço autenticado e o reutiliza nas chamadas seguintes
func (c *GoogleSheetsClient) authenticate(ctx context.Context) (*sheets.Service, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.service != nil {
		return c.service, nil
	}

	credentials := c.cfg.Google.CredentialsJSON
	if credentials == "" {
		return nil, ErrMissingCredentials
	}

	// O token é renovado fora da requisição que disparou a autenticação
	service, err := sheets.NewService(
		context.WithoutCancel(ctx),
		option.WithCredentialsJSON([]byte(credentials)),
		option.WithScopes(sheets.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao autenticar no Google Sheets")
	}

	c.service = service
	return service, nil
}

func cellToString(cell any) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
