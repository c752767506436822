package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSchedule() []ScheduleEntry {
	return []ScheduleEntry{
		{Date: "2025-07-02", ProductID: 2, ProductName: "Tomato Paste", ScheduledUnits: 500},
		{Date: "2025-06-01", ProductID: 3, ProductName: "Canned Pears", ScheduledUnits: 100},
		{Date: "2025-06-01", ProductID: 1, ProductName: "Canned Peaches", ScheduledUnits: 12000},
		{Date: "2025-06-02", ProductID: 1, ProductName: "Canned Peaches", ScheduledUnits: 11000},
		{Date: "2026-01-05", ProductID: 1, ProductName: "Canned Peaches", ScheduledUnits: 7},
		{Date: "2024-12-31", ProductID: 2, ProductName: "Tomato Paste", ScheduledUnits: 3},
	}
}

func TestAggregateYearly(t *testing.T) {
	tests := []struct {
		name     string
		entries  []ScheduleEntry
		validate func(t *testing.T, result YearlyProduction)
	}{
		{
			name:    "Lista vazia - nenhuma linha e nenhuma coluna",
			entries: nil,
			validate: func(t *testing.T, result YearlyProduction) {
				assert.NotNil(t, result.Products)
				assert.NotNil(t, result.Months)
				assert.Empty(t, result.Products)
				assert.Empty(t, result.Months)
			},
		},
		{
			name:    "Soma por mês e produto",
			entries: sampleSchedule(),
			validate: func(t *testing.T, result YearlyProduction) {
				require.Len(t, result.Months, 4)

				june := result.Months[1]
				assert.Equal(t, "June 2025", june.Label)
				assert.Equal(t, 2025, june.Year)
				assert.Equal(t, 6, june.MonthNumber)
				assert.Equal(t, 23000, june.Units["Canned Peaches"])
				assert.Equal(t, 100, june.Units["Canned Pears"])
				assert.Equal(t, 0, june.Units["Tomato Paste"])
			},
		},
		{
			name:    "Meses ordenados por ano e mês",
			entries: sampleSchedule(),
			validate: func(t *testing.T, result YearlyProduction) {
				labels := make([]string, 0, len(result.Months))
				for _, m := range result.Months {
					labels = append(labels, m.Label)
				}
				assert.Equal(t, []string{"December 2024", "June 2025", "July 2025", "January 2026"}, labels)
			},
		},
		{
			name:    "Colunas na ordem em que os produtos aparecem e células zeradas",
			entries: sampleSchedule(),
			validate: func(t *testing.T, result YearlyProduction) {
				assert.Equal(t, []string{"Tomato Paste", "Canned Pears", "Canned Peaches"}, result.Products)
				for _, m := range result.Months {
					assert.Len(t, m.Units, 3, m.Label)
				}
			},
		},
		{
			name: "Datas inválidas são ignoradas",
			entries: []ScheduleEntry{
				{Date: "2025/06/01", ProductID: 1, ProductName: "Canned Peaches", ScheduledUnits: 10},
				{Date: "", ProductID: 1, ProductName: "Canned Peaches", ScheduledUnits: 10},
				{Date: "2025-06-03", ProductID: 1, ProductName: "Canned Peaches", ScheduledUnits: 5},
			},
			validate: func(t *testing.T, result YearlyProduction) {
				require.Len(t, result.Months, 1)
				assert.Equal(t, 5, result.Months[0].Units["Canned Peaches"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, AggregateYearly(tt.entries))
		})
	}
}

func TestAggregateYearly_SumMatchesEntries(t *testing.T) {
	entries := sampleSchedule()
	result := AggregateYearly(entries)

	expected := map[string]int{}
	for _, e := range entries {
		expected[e.Date[:7]+"|"+e.ProductName] += e.ScheduledUnits
	}

	for _, m := range result.Months {
		prefix := fmt.Sprintf("%04d-%02d", m.Year, m.MonthNumber)
		for product, units := range m.Units {
			assert.Equal(t, expected[prefix+"|"+product], units, "%s %s", m.Label, product)
		}
	}
}

func TestScheduleDates(t *testing.T) {
	dates := ScheduleDates(sampleSchedule())
	assert.Equal(t, []string{"2024-12-31", "2025-06-01", "2025-06-02", "2025-07-02", "2026-01-05"}, dates)

	assert.Equal(t, []string{}, ScheduleDates(nil))
}

func TestDailyProduction(t *testing.T) {
	t.Run("Filtra pela data e ordena por product_id", func(t *testing.T) {
		daily := DailyProduction(sampleSchedule(), "2025-06-01")
		require.Len(t, daily, 2)
		assert.Equal(t, 1, daily[0].ProductID)
		assert.Equal(t, 3, daily[1].ProductID)
		for _, e := range daily {
			assert.Equal(t, "2025-06-01", e.Date)
		}
	})

	t.Run("Data sem entradas retorna lista vazia", func(t *testing.T) {
		daily := DailyProduction(sampleSchedule(), "2030-01-01")
		assert.NotNil(t, daily)
		assert.Empty(t, daily)
	})

	t.Run("Comparação exata da data", func(t *testing.T) {
		daily := DailyProduction(sampleSchedule(), "2025/06/01")
		assert.Empty(t, daily)
	})
}
