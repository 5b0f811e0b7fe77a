package openweather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kisanmitra/weather-engine/internal/model"
)

func TestClient_Current(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"main": {"temp": 41.5, "humidity": 30},
			"wind": {"speed": 10, "gust": 15},
			"rain": {"1h": 2.5},
			"weather": [{"main": "Clear", "description": "clear sky"}],
			"dt": 1700000000
		}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", srv.URL, srv.URL, time.Second)

	reading, err := c.Current(context.Background(), 30.9, 75.85)
	require.NoError(t, err)

	assert.Equal(t, 41.5, reading.TemperatureC)
	assert.Equal(t, 2.5, reading.PrecipitationMM)
	assert.InDelta(t, 36.0, reading.WindSpeedKmh, 0.01)
	assert.InDelta(t, 54.0, reading.WindGustKmh, 0.01)
	assert.Equal(t, model.WeatherClear, reading.Condition)
	assert.Equal(t, 30.9, reading.Latitude)
	assert.Equal(t, 75.85, reading.Longitude)
}

func TestClient_Current_HailCondition(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"main": {"temp": 25, "humidity": 80},
			"weather": [{"main": "Thunderstorm", "description": "thunderstorm with hail"}],
			"dt": 1700000000
		}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", srv.URL, srv.URL, time.Second)

	reading, err := c.Current(context.Background(), 30.9, 75.85)
	require.NoError(t, err)
	assert.Equal(t, model.WeatherThunderstormHail, reading.Condition)
}

func TestClient_Forecast(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/forecast/daily", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("cnt"))

		_, _ = w.Write([]byte(`{
			"list": [
				{"dt": 1700000000, "temp": {"max": 30}, "humidity": 50, "speed": 5, "rain": 0,
				 "weather": [{"main": "Clouds", "description": "scattered clouds"}]},
				{"dt": 1700086400, "temp": {"max": 28}, "humidity": 70, "speed": 4, "rain": 32,
				 "weather": [{"main": "Rain", "description": "heavy rain"}]}
			]
		}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", srv.URL, srv.URL, time.Second)

	days, err := c.Forecast(context.Background(), 30.9, 75.85, 2)
	require.NoError(t, err)
	require.Len(t, days, 2)

	assert.Equal(t, model.WeatherClouds, days[0].Condition)
	assert.Equal(t, 32.0, days[1].PrecipitationMM)
	assert.Equal(t, model.WeatherRain, days[1].Condition)
}

func TestClient_Geocode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/direct", r.URL.Path)
		assert.Equal(t, "Ludhiana, Punjab", r.URL.Query().Get("q"))

		_, _ = w.Write([]byte(`[{"lat": 30.9, "lon": 75.85}]`))
	}))
	defer srv.Close()

	c := NewClient("test-key", srv.URL, srv.URL, time.Second)

	lat, lon, err := c.Geocode(context.Background(), "Ludhiana, Punjab")
	require.NoError(t, err)
	assert.Equal(t, 30.9, lat)
	assert.Equal(t, 75.85, lon)
}

func TestClient_Geocode_NoMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient("test-key", srv.URL, srv.URL, time.Second)

	_, _, err := c.Geocode(context.Background(), "Lost, Nowhere")
	assert.ErrorIs(t, err, ErrLocationNotFound)
}

func TestClient_NotFoundStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient("test-key", srv.URL, srv.URL, time.Second)

	_, err := c.Current(context.Background(), 0, 0)
	assert.ErrorIs(t, err, ErrLocationNotFound)
}

func TestClient_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient("test-key", srv.URL, srv.URL, time.Second)

	_, err := c.Current(context.Background(), 0, 0)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrLocationNotFound)
}
