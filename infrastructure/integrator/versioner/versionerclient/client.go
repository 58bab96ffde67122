package versionerclient

//go:generate mockgen -source=client.go -destination=mocks/client_mock.go -package=mocks

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
)

// ErrTimeout indica que o Versioner não respondeu a tempo. O serviço só é
// acessível pela VPN, então na prática significa VPN desligada.
var ErrTimeout = errors.New("tempo esgotado ao consultar o Versioner")

// Accept enviado ao Versioner: algumas instâncias respondem JSON, outras uma página HTML
const acceptHeader = "application/json, text/html"

// Response é a resposta bruta do Versioner
type Response struct {
	ContentType string
	Body        []byte
}

type Client interface {
	// Fetch faz um GET em VERSIONER_URL + path
	Fetch(ctx context.Context, path string) (*Response, error)
	// Probe faz um HEAD na URL base e informa se a resposta foi 2xx
	Probe(ctx context.Context) (bool, error)
}

type VersionerClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &VersionerClient{
		httpClient: &http.Client{},
		config:     cfg,
	}
}

func (c *VersionerClient) Fetch(ctx context.Context, path string) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Versioner.Timeout)
	defer cancel()

	url := c.config.Versioner.URL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar requisição para o Versioner")
	}
	req.Header.Set("Accept", acceptHeader)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, wrapRequestError(ctx, err, url)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("versioner: HTTP %d em %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, wrapRequestError(ctx, err, url)
	}

	return &Response{
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}

func (c *VersionerClient) Probe(ctx context.Context) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Versioner.ProbeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.config.Versioner.URL, nil)
	if err != nil {
		return false, errors.Wrap(err, "erro ao criar requisição para o Versioner")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, wrapRequestError(ctx, err, c.config.Versioner.URL)
	}
	defer resp.Body.Close()

	return resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices, nil
}

// wrapRequestError distingue o estouro do prazo dos demais erros de rede
func wrapRequestError(ctx context.Context, err error, url string) error {
	var netErr net.Error
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return errors.Wrapf(ErrTimeout, "GET %s", url)
	}
	return errors.Wrapf(err, "erro ao consultar %s", url)
}
