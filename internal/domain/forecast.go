package domain

// ForecastEntry é a previsão anual de um produto
type ForecastEntry struct {
	ProductID   int    `json:"product_id"`
	ProductName string `json:"product_name"`
	TotalUnits  int    `json:"total_units"`
	SeasonStart string `json:"season_start"` // YYYY-MM-DD
	SeasonEnd   string `json:"season_end"`   // YYYY-MM-DD
}

// Forecast representa a resposta de /forecast do serviço de planejamento
type Forecast struct {
	Year     int             `json:"year"`
	Products []ForecastEntry `json:"products"`
}

// EmptyForecast é o resultado degradado usado quando a previsão não pode ser obtida
func EmptyForecast() *Forecast {
	return &Forecast{
		Year:     0,
		Products: []ForecastEntry{},
	}
}
