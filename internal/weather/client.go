// Package weather fetches current conditions for a destination from the
// OpenWeatherMap current-weather endpoint.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pkordes/travel-planner/backend/internal/domain"
)

// Client calls the OpenWeatherMap API. It is safe for concurrent use.
type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
}

// NewClient constructs a Client. baseURL is the API root without a trailing
// slash (e.g. "https://api.openweathermap.org"). A nil httpClient means
// http.DefaultClient; no timeout is added beyond what the client carries.
func NewClient(httpClient *http.Client, baseURL, apiKey string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{http: httpClient, baseURL: baseURL, apiKey: apiKey}
}

// currentResponse is the subset of the current-weather payload we read.
type currentResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
}

// Current returns the current weather at destination, in metric units.
//
// Any failure (non-2xx status, transport error, undecodable body) is reported
// as domain.ErrWeatherUnavailable. Callers are expected to carry on without
// weather data when they see it.
func (c *Client) Current(ctx context.Context, destination string) (domain.Weather, error) {
	q := url.Values{}
	q.Set("q", destination)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")
	endpoint := c.baseURL + "/data/2.5/weather?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.Weather{}, fmt.Errorf("weather.Client.Current: %w: %v", domain.ErrWeatherUnavailable, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.Weather{}, fmt.Errorf("weather.Client.Current: %w: %v", domain.ErrWeatherUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.Weather{}, fmt.Errorf("weather.Client.Current: %w: status %d", domain.ErrWeatherUnavailable, resp.StatusCode)
	}

	var body currentResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.Weather{}, fmt.Errorf("weather.Client.Current: %w: decode: %v", domain.ErrWeatherUnavailable, err)
	}

	w := domain.Weather{
		TemperatureCelsius: body.Main.Temp,
		HumidityPercent:    body.Main.Humidity,
	}
	if len(body.Weather) > 0 {
		w.Description = body.Weather[0].Description
	}
	return w, nil
}
