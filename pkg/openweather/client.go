// Package openweather is the weather source collaborator: a thin client for
// an OpenWeather-compatible API returning normalized readings.
package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kisanmitra/weather-engine/internal/model"
)

// ErrLocationNotFound signals that the place could not be resolved, as
// opposed to a transient upstream failure. Callers skip the farmer on the
// former and may see the latter succeed next sweep.
var ErrLocationNotFound = errors.New("location not found")

const (
	defaultBaseURL = "https://api.openweathermap.org/data/2.5"
	defaultGeoURL  = "https://api.openweathermap.org/geo/1.0"
)

// Client calls the weather API over HTTP.
type Client struct {
	apiKey  string
	baseURL string
	geoURL  string
	client  *http.Client
}

// NewClient creates a weather client. Empty URLs fall back to the public
// OpenWeather endpoints; timeout bounds every call.
func NewClient(apiKey, baseURL, geoURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if geoURL == "" {
		geoURL = defaultGeoURL
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		geoURL:  geoURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type weatherDesc struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}

type currentResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"` // m/s with units=metric
		Gust  float64 `json:"gust"`
	} `json:"wind"`
	Rain struct {
		OneHour float64 `json:"1h"`
	} `json:"rain"`
	Weather []weatherDesc `json:"weather"`
	Dt      int64         `json:"dt"`
}

type forecastResponse struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Temp struct {
			Max float64 `json:"max"`
		} `json:"temp"`
		Humidity float64       `json:"humidity"`
		Speed    float64       `json:"speed"`
		Gust     float64       `json:"gust"`
		Rain     float64       `json:"rain"`
		Weather  []weatherDesc `json:"weather"`
	} `json:"list"`
}

type geoResult struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Current returns the current normalized reading for the coordinates.
func (c *Client) Current(ctx context.Context, lat, lon float64) (model.WeatherReading, error) {
	u := fmt.Sprintf("%s/weather?lat=%f&lon=%f&units=metric&appid=%s", c.baseURL, lat, lon, c.apiKey)

	var resp currentResponse
	if err := c.getJSON(ctx, u, &resp); err != nil {
		return model.WeatherReading{}, fmt.Errorf("fetch current weather: %w", err)
	}

	reading := model.WeatherReading{
		Timestamp:       time.Unix(resp.Dt, 0),
		TemperatureC:    resp.Main.Temp,
		PrecipitationMM: resp.Rain.OneHour,
		WindSpeedKmh:    resp.Wind.Speed * 3.6,
		WindGustKmh:     resp.Wind.Gust * 3.6,
		Humidity:        resp.Main.Humidity,
		Condition:       normalizeCondition(resp.Weather),
		Latitude:        lat,
		Longitude:       lon,
	}

	return reading, nil
}

// Forecast returns one normalized reading per day, starting today.
func (c *Client) Forecast(ctx context.Context, lat, lon float64, days int) ([]model.WeatherReading, error) {
	u := fmt.Sprintf("%s/forecast/daily?lat=%f&lon=%f&cnt=%d&units=metric&appid=%s",
		c.baseURL, lat, lon, days, c.apiKey)

	var resp forecastResponse
	if err := c.getJSON(ctx, u, &resp); err != nil {
		return nil, fmt.Errorf("fetch forecast: %w", err)
	}

	readings := make([]model.WeatherReading, 0, len(resp.List))
	for _, day := range resp.List {
		readings = append(readings, model.WeatherReading{
			Timestamp:       time.Unix(day.Dt, 0),
			TemperatureC:    day.Temp.Max,
			PrecipitationMM: day.Rain,
			WindSpeedKmh:    day.Speed * 3.6,
			WindGustKmh:     day.Gust * 3.6,
			Humidity:        day.Humidity,
			Condition:       normalizeCondition(day.Weather),
			Latitude:        lat,
			Longitude:       lon,
		})
	}

	return readings, nil
}

// Geocode resolves a place name ("district, state") to coordinates. Returns
// ErrLocationNotFound when the geocoder has no match.
func (c *Client) Geocode(ctx context.Context, place string) (float64, float64, error) {
	u := fmt.Sprintf("%s/direct?q=%s&limit=1&appid=%s", c.geoURL, url.QueryEscape(place), c.apiKey)

	var results []geoResult
	if err := c.getJSON(ctx, u, &results); err != nil {
		return 0, 0, fmt.Errorf("geocode %q: %w", place, err)
	}

	if len(results) == 0 {
		return 0, 0, fmt.Errorf("geocode %q: %w", place, ErrLocationNotFound)
	}

	return results[0].Lat, results[0].Lon, nil
}

func (c *Client) getJSON(ctx context.Context, u string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrLocationNotFound
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("weather API error: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// normalizeCondition maps the API's condition descriptor to one of the
// model's coded conditions. Hail inside a thunderstorm gets its own code
// because the rule engine treats it as critical on its own.
func normalizeCondition(descs []weatherDesc) string {
	if len(descs) == 0 {
		return model.WeatherClear
	}

	main := strings.ToLower(descs[0].Main)
	desc := strings.ToLower(descs[0].Description)

	if main == model.WeatherThunderstorm && strings.Contains(desc, "hail") {
		return model.WeatherThunderstormHail
	}

	return main
}
