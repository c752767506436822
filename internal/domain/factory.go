package domain

import (
	"fmt"
	"net/url"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DowntimeWindow é uma parada programada da fábrica
type DowntimeWindow struct {
	Date                  string `json:"date"`
	Reason                string `json:"reason"`
	ExpectedDowntimeHours int    `json:"expected_downtime_hours"`
}

// ProductConstraint limita a produção diária de um produto
type ProductConstraint struct {
	ProductID      int `json:"product_id"`
	MaxUnitsPerDay int `json:"max_units_per_day"`
	PriorityLevel  int `json:"priority_level"`
}

// FactoryConfig representa a resposta de /factory-info
type FactoryConfig struct {
	FactoryID             int                 `json:"factory_id"`
	FactoryName           string              `json:"factory_name"`
	MaxDailyCapacity      int                 `json:"max_daily_capacity"`
	MachineEfficiency     int                 `json:"machine_efficiency"`
	AvailableShiftsPerDay int                 `json:"available_shifts_per_day"`
	HoursPerShift         int                 `json:"hours_per_shift"`
	DowntimeSchedule      []DowntimeWindow    `json:"downtime_schedule"`
	ProductConstraints    []ProductConstraint `json:"product_constraints"`
}

// DefaultFactoryConfig é a configuração usada quando /factory-info não responde
func DefaultFactoryConfig() FactoryConfig {
	return FactoryConfig{
		FactoryID:             101,
		FactoryName:           "California Processing Plant",
		MaxDailyCapacity:      20000,
		MachineEfficiency:     90,
		AvailableShiftsPerDay: 2,
		HoursPerShift:         8,
		DowntimeSchedule: []DowntimeWindow{
			{Date: "2025-07-15", Reason: "Maintenance", ExpectedDowntimeHours: 4},
			{Date: "2025-09-10", Reason: "Line Cleaning", ExpectedDowntimeHours: 6},
		},
		ProductConstraints: []ProductConstraint{
			{ProductID: 1, MaxUnitsPerDay: 12000, PriorityLevel: 2},
			{ProductID: 2, MaxUnitsPerDay: 10000, PriorityLevel: 3},
			{ProductID: 3, MaxUnitsPerDay: 18000, PriorityLevel: 1},
			{ProductID: 4, MaxUnitsPerDay: 9000, PriorityLevel: 4},
		},
	}
}

// Clone faz uma cópia profunda da configuração
func (c FactoryConfig) Clone() FactoryConfig {
	out := c
	out.DowntimeSchedule = make([]DowntimeWindow, len(c.DowntimeSchedule))
	copy(out.DowntimeSchedule, c.DowntimeSchedule)
	out.ProductConstraints = make([]ProductConstraint, len(c.ProductConstraints))
	copy(out.ProductConstraints, c.ProductConstraints)
	return out
}

// DuplicateConstraintIDs lista os product_id repetidos nas restrições.
// Apenas informativo: a unicidade não é imposta.
func (c FactoryConfig) DuplicateConstraintIDs() []int {
	seen := make(map[int]int, len(c.ProductConstraints))
	var duplicates []int
	for _, pc := range c.ProductConstraints {
		seen[pc.ProductID]++
		if seen[pc.ProductID] == 2 {
			duplicates = append(duplicates, pc.ProductID)
		}
	}
	return duplicates
}

// RegenerationParams monta o payload de regeneração. A lista de paradas
// segue serializada em JSON, como o serviço de planejamento espera.
func (c FactoryConfig) RegenerationParams() (*RegenerationParams, error) {
	downtime := c.DowntimeSchedule
	if downtime == nil {
		downtime = []DowntimeWindow{}
	}

	serialized, err := json.Marshal(downtime)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar paradas programadas: %w", err)
	}

	return &RegenerationParams{
		MaxDailyCapacity:      c.MaxDailyCapacity,
		MachineEfficiency:     c.MachineEfficiency,
		AvailableShiftsPerDay: c.AvailableShiftsPerDay,
		HoursPerShift:         c.HoursPerShift,
		DowntimeSchedule:      string(serialized),
	}, nil
}

// RegenerationParams são os cinco campos exigidos para regenerar o cronograma
type RegenerationParams struct {
	MaxDailyCapacity      int    `json:"max_daily_capacity"`
	MachineEfficiency     int    `json:"machine_efficiency"`
	AvailableShiftsPerDay int    `json:"available_shifts_per_day"`
	HoursPerShift         int    `json:"hours_per_shift"`
	DowntimeSchedule      string `json:"downtime_schedule"`
}

// Validate garante que a lista de paradas é um array JSON válido
func (p *RegenerationParams) Validate() error {
	if p == nil {
		return fmt.Errorf("parâmetros de regeneração ausentes")
	}
	if p.DowntimeSchedule == "" {
		return fmt.Errorf("downtime_schedule é obrigatório")
	}

	var windows []DowntimeWindow
	if err := json.UnmarshalFromString(p.DowntimeSchedule, &windows); err != nil {
		return fmt.Errorf("downtime_schedule não é uma lista JSON válida: %w", err)
	}
	if windows == nil {
		return fmt.Errorf("downtime_schedule deve ser uma lista JSON")
	}
	return nil
}

// Query monta a query string enviada ao serviço de planejamento
func (p *RegenerationParams) Query() url.Values {
	query := url.Values{}
	query.Set("max_daily_capacity", strconv.Itoa(p.MaxDailyCapacity))
	query.Set("machine_efficiency", strconv.Itoa(p.MachineEfficiency))
	query.Set("available_shifts_per_day", strconv.Itoa(p.AvailableShiftsPerDay))
	query.Set("hours_per_shift", strconv.Itoa(p.HoursPerShift))
	query.Set("downtime_schedule", p.DowntimeSchedule)
	return query
}
