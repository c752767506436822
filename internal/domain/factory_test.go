package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactoryConfig_RegenerationParams(t *testing.T) {
	cfg := DefaultFactoryConfig()

	params, err := cfg.RegenerationParams()
	require.NoError(t, err)

	assert.Equal(t, 20000, params.MaxDailyCapacity)
	assert.Equal(t, 90, params.MachineEfficiency)
	assert.Equal(t, 2, params.AvailableShiftsPerDay)
	assert.Equal(t, 8, params.HoursPerShift)
	assert.JSONEq(t, `[
		{"date":"2025-07-15","reason":"Maintenance","expected_downtime_hours":4},
		{"date":"2025-09-10","reason":"Line Cleaning","expected_downtime_hours":6}
	]`, params.DowntimeSchedule)
	assert.NoError(t, params.Validate())
}

func TestFactoryConfig_RegenerationParams_EmptyDowntime(t *testing.T) {
	cfg := DefaultFactoryConfig()
	cfg.DowntimeSchedule = nil

	params, err := cfg.RegenerationParams()
	require.NoError(t, err)
	assert.Equal(t, "[]", params.DowntimeSchedule)
}

func TestRegenerationParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  *RegenerationParams
		wantErr bool
	}{
		{name: "Parâmetros nulos", params: nil, wantErr: true},
		{name: "Lista de paradas ausente", params: &RegenerationParams{MaxDailyCapacity: 1}, wantErr: true},
		{name: "Lista de paradas não é JSON", params: &RegenerationParams{DowntimeSchedule: "maintenance"}, wantErr: true},
		{name: "Lista de paradas é null", params: &RegenerationParams{DowntimeSchedule: "null"}, wantErr: true},
		{name: "Lista vazia é válida", params: &RegenerationParams{DowntimeSchedule: "[]"}, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRegenerationParams_Query(t *testing.T) {
	params := &RegenerationParams{
		MaxDailyCapacity:      20000,
		MachineEfficiency:     90,
		AvailableShiftsPerDay: 2,
		HoursPerShift:         8,
		DowntimeSchedule:      "[]",
	}

	query := params.Query()
	assert.Equal(t, "20000", query.Get("max_daily_capacity"))
	assert.Equal(t, "90", query.Get("machine_efficiency"))
	assert.Equal(t, "2", query.Get("available_shifts_per_day"))
	assert.Equal(t, "8", query.Get("hours_per_shift"))
	assert.Equal(t, "[]", query.Get("downtime_schedule"))
	assert.Len(t, query, 5)
}

func TestFactoryConfig_Clone(t *testing.T) {
	original := DefaultFactoryConfig()
	clone := original.Clone()

	clone.DowntimeSchedule[0].Reason = "Changed"
	clone.ProductConstraints = append(clone.ProductConstraints, ProductConstraint{ProductID: 9})

	assert.Equal(t, "Maintenance", original.DowntimeSchedule[0].Reason)
	assert.Len(t, original.ProductConstraints, 4)
}

func TestFactoryConfig_DuplicateConstraintIDs(t *testing.T) {
	cfg := DefaultFactoryConfig()
	assert.Empty(t, cfg.DuplicateConstraintIDs())

	cfg.ProductConstraints = append(cfg.ProductConstraints,
		ProductConstraint{ProductID: 2},
		ProductConstraint{ProductID: 2},
	)
	assert.Equal(t, []int{2}, cfg.DuplicateConstraintIDs())
}
