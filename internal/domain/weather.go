package domain

// Weather is the current conditions at a destination, as reported by the
// weather service at the time the plan was requested.
type Weather struct {
	TemperatureCelsius float64 `json:"temperature_celsius"`
	Description        string  `json:"description"`
	HumidityPercent    int     `json:"humidity_percent"`
}
