package plannerclient

import (
	"context"
	"net/url"

	"github.com/pkg/errors"
	"github.com/vfg2006/production-dashboard-api/internal/domain"
)

type scheduleEntryPayload struct {
	Date           *string `json:"date"`
	ProductID      *int    `json:"product_id"`
	ProductName    *string `json:"product_name"`
	ScheduledUnits *int    `json:"scheduled_units"`
}

func (c *PlannerClient) GenerateSchedule(ctx context.Context, params *domain.RegenerationParams) ([]domain.ScheduleEntry, error) {
	var query url.Values
	if params != nil {
		query = params.Query()
	}

	var response []scheduleEntryPayload
	if err := c.get(ctx, productionSchedulePath, query, &response); err != nil {
		return nil, err
	}
	if response == nil {
		return nil, errors.Wrapf(ErrMalformedPayload, "GET %s: esperada uma lista", productionSchedulePath)
	}

	entries, err := toScheduleEntries(response)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedPayload, "GET %s: %v", productionSchedulePath, err)
	}
	return entries, nil
}

func toScheduleEntries(payload []scheduleEntryPayload) ([]domain.ScheduleEntry, error) {
	entries := make([]domain.ScheduleEntry, 0, len(payload))
	for i, p := range payload {
		if p.Date == nil || p.ProductID == nil || p.ProductName == nil || p.ScheduledUnits == nil {
			return nil, errors.Errorf("entrada %d com campos obrigatórios ausentes", i)
		}
		if err := checkDate(*p.Date); err != nil {
			return nil, errors.Wrapf(err, "entrada %d", i)
		}

		entries = append(entries, domain.ScheduleEntry{
			Date:           *p.Date,
			ProductID:      *p.ProductID,
			ProductName:    *p.ProductName,
			ScheduledUnits: *p.ScheduledUnits,
		})
	}
	return entries, nil
}
