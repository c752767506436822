package plannerclient

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/production-dashboard-api/internal/domain"
)

type forecastResponse struct {
	Year     *int                    `json:"year"`
	Products *[]forecastEntryPayload `json:"products"`
}

type forecastEntryPayload struct {
	ProductID   *int    `json:"product_id"`
	ProductName *string `json:"product_name"`
	TotalUnits  *int    `json:"total_units"`
	SeasonStart *string `json:"season_start"`
	SeasonEnd   *string `json:"season_end"`
}

func (c *PlannerClient) GetForecast(ctx context.Context) (*domain.Forecast, error) {
	var response forecastResponse
	if err := c.get(ctx, forecastPath, nil, &response); err != nil {
		return nil, err
	}

	forecast, err := response.toDomain()
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedPayload, "GET %s: %v", forecastPath, err)
	}
	return forecast, nil
}

func (r forecastResponse) toDomain() (*domain.Forecast, error) {
	if r.Year == nil {
		return nil, errors.New("campo year ausente")
	}
	if r.Products == nil {
		return nil, errors.New("campo products ausente")
	}

	forecast := &domain.Forecast{
		Year:     *r.Year,
		Products: make([]domain.ForecastEntry, 0, len(*r.Products)),
	}
	for i, p := range *r.Products {
		if p.ProductID == nil || p.ProductName == nil || p.TotalUnits == nil || p.SeasonStart == nil || p.SeasonEnd == nil {
			return nil, errors.Errorf("produto %d com campos obrigatórios ausentes", i)
		}
		if err := checkDate(*p.SeasonStart); err != nil {
			return nil, errors.Wrapf(err, "produto %d: season_start", i)
		}
		if err := checkDate(*p.SeasonEnd); err != nil {
			return nil, errors.Wrapf(err, "produto %d: season_end", i)
		}

		forecast.Products = append(forecast.Products, domain.ForecastEntry{
			ProductID:   *p.ProductID,
			ProductName: *p.ProductName,
			TotalUnits:  *p.TotalUnits,
			SeasonStart: *p.SeasonStart,
			SeasonEnd:   *p.SeasonEnd,
		})
	}
	return forecast, nil
}

func checkDate(value string) error {
	if _, err := time.Parse(time.DateOnly, value); err != nil {
		return errors.Errorf("data inválida %q", value)
	}
	return nil
}
