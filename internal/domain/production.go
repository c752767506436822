package domain

import (
	"fmt"
	"sort"

	"github.com/vfg2006/production-dashboard-api/pkg/utils"
)

// DefaultSelectedDate é a data exibida no detalhe diário quando nenhuma é escolhida
const DefaultSelectedDate = "2025-06-01"

// MonthlyProduction é uma linha da matriz mês × produto
type MonthlyProduction struct {
	Label       string         `json:"month"` // ex.: "June 2025"
	Year        int            `json:"year"`
	MonthNumber int            `json:"month_number"` // 1-12
	Units       map[string]int `json:"units"`        // nome do produto -> unidades
}

// YearlyProduction é a matriz agregada. Products são as colunas, na ordem em que aparecem.
type YearlyProduction struct {
	Products []string            `json:"products"`
	Months   []MonthlyProduction `json:"months"`
}

// AggregateYearly agrupa as entradas por mês e por nome de produto, somando as unidades.
// Entradas com data inválida são ignoradas.
func AggregateYearly(entries []ScheduleEntry) YearlyProduction {
	result := YearlyProduction{
		Products: []string{},
		Months:   []MonthlyProduction{},
	}

	seenProducts := make(map[string]bool)
	byMonth := make(map[int]*MonthlyProduction)

	for _, entry := range entries {
		date, err := utils.ParseDate(entry.Date)
		if err != nil || date.IsZero() {
			continue
		}

		if !seenProducts[entry.ProductName] {
			seenProducts[entry.ProductName] = true
			result.Products = append(result.Products, entry.ProductName)
		}

		key := date.Year()*100 + int(date.Month())
		month, ok := byMonth[key]
		if !ok {
			month = &MonthlyProduction{
				Label:       fmt.Sprintf("%s %d", date.Month().String(), date.Year()),
				Year:        date.Year(),
				MonthNumber: int(date.Month()),
				Units:       make(map[string]int),
			}
			byMonth[key] = month
		}
		month.Units[entry.ProductName] += entry.ScheduledUnits
	}

	keys := make([]int, 0, len(byMonth))
	for key := range byMonth {
		keys = append(keys, key)
	}
	sort.Ints(keys)

	for _, key := range keys {
		month := byMonth[key]
		// Células ausentes valem zero
		for _, product := range result.Products {
			if _, ok := month.Units[product]; !ok {
				month.Units[product] = 0
			}
		}
		result.Months = append(result.Months, *month)
	}

	return result
}

// ScheduleDates retorna as datas distintas presentes no cronograma, em ordem crescente
func ScheduleDates(entries []ScheduleEntry) []string {
	seen := make(map[string]bool, len(entries))
	dates := make([]string, 0)
	for _, entry := range entries {
		if seen[entry.Date] {
			continue
		}
		seen[entry.Date] = true
		dates = append(dates, entry.Date)
	}
	sort.Strings(dates)
	return dates
}

// DailyProduction retorna as entradas da data informada ordenadas por product_id
func DailyProduction(entries []ScheduleEntry, date string) []ScheduleEntry {
	daily := make([]ScheduleEntry, 0)
	for _, entry := range entries {
		if entry.Date == date {
			daily = append(daily, entry)
		}
	}
	sort.SliceStable(daily, func(i, j int) bool {
		return daily[i].ProductID < daily[j].ProductID
	})
	return daily
}
