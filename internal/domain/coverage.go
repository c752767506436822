package domain

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// ProductCoverage compara o total previsto de um produto com o total programado
type ProductCoverage struct {
	ProductID       int     `json:"product_id"`
	ProductName     string  `json:"product_name"`
	ForecastUnits   int     `json:"forecast_units"`
	ScheduledUnits  int     `json:"scheduled_units"`
	CoveragePercent float64 `json:"coverage_percent"`
}

// CoverageReport é o quanto do cronograma atual atende a previsão anual
type CoverageReport struct {
	Year                int               `json:"year"`
	Products            []ProductCoverage `json:"products"`
	TotalForecastUnits  int               `json:"total_forecast_units"`
	TotalScheduledUnits int               `json:"total_scheduled_units"`
	CoveragePercent     float64           `json:"coverage_percent"`
}

// ForecastCoverage calcula a cobertura por produto da previsão, casando pelo product_id
func ForecastCoverage(forecast *Forecast, entries []ScheduleEntry) CoverageReport {
	report := CoverageReport{Products: []ProductCoverage{}}
	if forecast == nil {
		return report
	}
	report.Year = forecast.Year

	scheduledByProduct := make(map[int]int)
	for _, entry := range entries {
		scheduledByProduct[entry.ProductID] += entry.ScheduledUnits
	}

	for _, product := range forecast.Products {
		scheduled := scheduledByProduct[product.ProductID]
		report.Products = append(report.Products, ProductCoverage{
			ProductID:       product.ProductID,
			ProductName:     product.ProductName,
			ForecastUnits:   product.TotalUnits,
			ScheduledUnits:  scheduled,
			CoveragePercent: coveragePercent(scheduled, product.TotalUnits),
		})
		report.TotalForecastUnits += product.TotalUnits
		report.TotalScheduledUnits += scheduled
	}

	report.CoveragePercent = coveragePercent(report.TotalScheduledUnits, report.TotalForecastUnits)
	return report
}

func coveragePercent(scheduled, forecast int) float64 {
	if forecast == 0 {
		return 0
	}
	return decimal.NewFromInt(int64(scheduled)).
		Mul(hundred).
		Div(decimal.NewFromInt(int64(forecast))).
		Round(2).
		InexactFloat64()
}
