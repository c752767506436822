package plannerclient

import (
	"context"
	"net/http"
	"net/url"
	"path"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/production-dashboard-api/internal/config"
	"github.com/vfg2006/production-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	forecastPath           = "/forecast"
	factoryInfoPath        = "/factory-info"
	productionSchedulePath = "/generate-production-schedule"
)

// Falhas possíveis ao falar com o serviço de planejamento
var (
	ErrTransport        = errors.New("planner: falha de comunicação")
	ErrUnexpectedStatus = errors.New("planner: status de resposta inesperado")
	ErrMalformedPayload = errors.New("planner: resposta malformada")
)

type Client interface {
	GetForecast(ctx context.Context) (*domain.Forecast, error)
	GetFactoryInfo(ctx context.Context) (*domain.FactoryConfig, error)
	// GenerateSchedule pede um novo cronograma. Com params nil, nenhuma query é enviada.
	GenerateSchedule(ctx context.Context, params *domain.RegenerationParams) ([]domain.ScheduleEntry, error)
}

type PlannerClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient cria o cliente HTTP do serviço de planejamento
func NewClient(cfg *config.Config) Client {
	return &PlannerClient{
		httpClient: &http.Client{
			Timeout: cfg.Planner.Timeout,
		},
		baseURL: cfg.Planner.URL,
	}
}

// get executa um GET no serviço e decodifica o JSON em out
func (c *PlannerClient) get(ctx context.Context, endpointPath string, query url.Values, out any) error {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return errors.Wrap(err, "erro ao analisar a URL base")
	}
	endpoint.Path = path.Join(endpoint.Path, endpointPath)
	if len(query) > 0 {
		endpoint.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(ErrTransport, "GET %s: %v", endpointPath, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.Wrapf(ErrUnexpectedStatus, "GET %s: %s", endpointPath, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(ErrMalformedPayload, "GET %s: %v", endpointPath, err)
	}

	return nil
}
