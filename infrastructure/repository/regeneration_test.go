package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/production-dashboard-api/internal/domain"
)

func TestBuildInsertRegeneration(t *testing.T) {
	createdAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	record := &domain.RegenerationRecord{
		ID: "abc123",
		Params: domain.RegenerationParams{
			MaxDailyCapacity:      20000,
			MachineEfficiency:     90,
			AvailableShiftsPerDay: 2,
			HoursPerShift:         8,
			DowntimeSchedule:      "[]",
		},
		Status:    domain.RegenerationSucceeded,
		Entries:   488,
		CreatedAt: createdAt,
	}

	query, args, err := buildInsertRegeneration(record)
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO schedule_regeneration (id,max_daily_capacity,machine_efficiency,available_shifts_per_day,hours_per_shift,downtime_schedule,status,entries,error,created_at) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)",
		query,
	)
	assert.Equal(t, []interface{}{"abc123", 20000, 90, 2, 8, "[]", "succeeded", 488, "", createdAt}, args)
}

func TestBuildListRegenerations(t *testing.T) {
	tests := []struct {
		name          string
		limit         int
		expectedLimit string
	}{
		{name: "Limite informado", limit: 5, expectedLimit: "LIMIT 5"},
		{name: "Limite zero usa o padrão", limit: 0, expectedLimit: "LIMIT 20"},
		{name: "Limite negativo usa o padrão", limit: -3, expectedLimit: "LIMIT 20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListRegenerations(tt.limit)
			require.NoError(t, err)
			assert.Contains(t, query, "FROM schedule_regeneration sr")
			assert.Contains(t, query, "ORDER BY sr.created_at DESC")
			assert.Contains(t, query, tt.expectedLimit)
			assert.Empty(t, args)
		})
	}
}
