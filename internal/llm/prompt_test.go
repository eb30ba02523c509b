package llm_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/travel-planner/backend/internal/domain"
	"github.com/pkordes/travel-planner/backend/internal/llm"
)

func tokyoRequest() domain.PlanRequest {
	return domain.PlanRequest{
		Destination:   "Tokyo",
		DepartureDate: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		ReturnDate:    time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC),
		Activities:    "hiking",
		Accommodation: "Hotel",
	}
}

func TestPlanPrompt_WithWeather(t *testing.T) {
	w := &domain.Weather{TemperatureCelsius: 21.5, Description: "clear sky", HumidityPercent: 64}

	got := llm.PlanPrompt(tokyoRequest(), w)

	assert.Contains(t, got, "You are an expert at planning overseas trips.")
	assert.Contains(t, got, "- The flight options")
	assert.Contains(t, got,
		"The user's request is:\n"+
			"Destination: Tokyo, Departure Date: 2025-05-01, Return Date: 2025-05-10, "+
			"Activities: hiking, Accommodation: Hotel, "+
			"Weather during your trip: 21.5 °C, clear sky, Humidity: 64%\n")
}

func TestPlanPrompt_WithoutWeather(t *testing.T) {
	got := llm.PlanPrompt(tokyoRequest(), nil)

	assert.Contains(t, got,
		"The user's request is:\n"+
			"Destination: Tokyo, Departure Date: 2025-05-01, Return Date: 2025-05-10, "+
			"Activities: hiking, Accommodation: Hotel\n")
	assert.NotContains(t, got, "Weather during your trip")
}

func TestWeatherSummary_WholeDegrees(t *testing.T) {
	got := llm.WeatherSummary(domain.Weather{TemperatureCelsius: 18, Description: "light rain", HumidityPercent: 90})

	assert.Equal(t, "Weather during your trip: 18 °C, light rain, Humidity: 90%", got)
}

func TestChatPrompt_WrapsQuery(t *testing.T) {
	got := llm.ChatPrompt("Do I need a visa for Japan?")

	assert.Contains(t, got, "travel assistant")
	assert.Contains(t, got, "The traveller asks:\nDo I need a visa for Japan?\n")
}
