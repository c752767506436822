package plannerclient

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/production-dashboard-api/internal/domain"
)

type factoryInfoResponse struct {
	FactoryID             *int                       `json:"factory_id"`
	FactoryName           *string                    `json:"factory_name"`
	MaxDailyCapacity      *int                       `json:"max_daily_capacity"`
	MachineEfficiency     *int                       `json:"machine_efficiency"`
	AvailableShiftsPerDay *int                       `json:"available_shifts_per_day"`
	HoursPerShift         *int                       `json:"hours_per_shift"`
	DowntimeSchedule      []domain.DowntimeWindow    `json:"downtime_schedule"`
	ProductConstraints    []domain.ProductConstraint `json:"product_constraints"`
}

func (c *PlannerClient) GetFactoryInfo(ctx context.Context) (*domain.FactoryConfig, error) {
	var response factoryInfoResponse
	if err := c.get(ctx, factoryInfoPath, nil, &response); err != nil {
		return nil, err
	}

	factory, err := response.toDomain()
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedPayload, "GET %s: %v", factoryInfoPath, err)
	}
	return factory, nil
}

func (r factoryInfoResponse) toDomain() (*domain.FactoryConfig, error) {
	if r.MaxDailyCapacity == nil || r.MachineEfficiency == nil || r.AvailableShiftsPerDay == nil || r.HoursPerShift == nil {
		return nil, errors.New("parâmetros numéricos da fábrica ausentes")
	}

	factory := &domain.FactoryConfig{
		MaxDailyCapacity:      *r.MaxDailyCapacity,
		MachineEfficiency:     *r.MachineEfficiency,
		AvailableShiftsPerDay: *r.AvailableShiftsPerDay,
		HoursPerShift:         *r.HoursPerShift,
		DowntimeSchedule:      r.DowntimeSchedule,
		ProductConstraints:    r.ProductConstraints,
	}
	if r.FactoryID != nil {
		factory.FactoryID = *r.FactoryID
	}
	if r.FactoryName != nil {
		factory.FactoryName = *r.FactoryName
	}
	if factory.DowntimeSchedule == nil {
		factory.DowntimeSchedule = []domain.DowntimeWindow{}
	}
	if factory.ProductConstraints == nil {
		factory.ProductConstraints = []domain.ProductConstraint{}
	}

	for i, d := range factory.DowntimeSchedule {
		if err := checkDate(d.Date); err != nil {
			return nil, errors.Wrapf(err, "parada %d", i)
		}
	}
	return factory, nil
}
