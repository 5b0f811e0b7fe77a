package model

import (
	"fmt"
	"time"
)

// Normalized coded weather conditions produced by the weather source client.
const (
	WeatherClear            = "clear"
	WeatherClouds           = "clouds"
	WeatherRain             = "rain"
	WeatherDrizzle          = "drizzle"
	WeatherThunderstorm     = "thunderstorm"
	WeatherThunderstormHail = "thunderstorm_with_hail"
	WeatherSnow             = "snow"
	WeatherMist             = "mist"
)

// WeatherReading is a single normalized observation (or one forecast day) for
// one location. Readings are ephemeral: they are fetched fresh each sweep and
// never persisted, since their minute-scale validity makes caching pointless.
type WeatherReading struct {
	Timestamp       time.Time `json:"timestamp"`
	TemperatureC    float64   `json:"temperature_c"`
	PrecipitationMM float64   `json:"precipitation_mm"`
	WindSpeedKmh    float64   `json:"wind_speed_kmh"`
	WindGustKmh     float64   `json:"wind_gust_kmh"`
	Humidity        float64   `json:"humidity_percent"`
	Condition       string    `json:"condition"` // one of the Weather* codes above
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
}

// Summary renders the reading as a short human-readable line, used in
// advisory snapshots and generation prompts.
func (r WeatherReading) Summary() string {
	return fmt.Sprintf("%.1f°C, %s, %.1fmm precipitation, wind %.0f km/h, humidity %.0f%%",
		r.TemperatureC, r.Condition, r.PrecipitationMM, r.WindSpeedKmh, r.Humidity)
}
