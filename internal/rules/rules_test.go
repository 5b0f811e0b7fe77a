package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kisanmitra/weather-engine/internal/model"
)

func eventFor(events []Event, condition model.Condition) (Event, bool) {
	for _, ev := range events {
		if ev.Condition == condition {
			return ev, true
		}
	}

	return Event{}, false
}

func TestEvaluate_HeavyRain(t *testing.T) {
	tests := []struct {
		name     string
		precip   float64
		expected bool
	}{
		{"above threshold", 26.0, true},
		{"well above threshold", 80.0, true},
		{"at threshold", 25.0, false},
		{"below threshold", 10.0, false},
		{"no rain", 0.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := Evaluate(model.WeatherReading{TemperatureC: 25, PrecipitationMM: tt.precip}, nil)

			ev, found := eventFor(events, model.ConditionHeavyRain)
			assert.Equal(t, tt.expected, found)
			if found {
				assert.Equal(t, model.SeverityHigh, ev.Severity)
				assert.Equal(t, tt.precip, ev.Value)
				assert.Equal(t, TimingNow, ev.Timing)
			}
		})
	}
}

func TestEvaluate_ExtremeHeatEscalation(t *testing.T) {
	events := Evaluate(model.WeatherReading{TemperatureC: 42, PrecipitationMM: 0, WindSpeedKmh: 10, Humidity: 50}, nil)
	require.Len(t, events, 1)
	assert.Equal(t, model.ConditionExtremeHeat, events[0].Condition)
	assert.Equal(t, model.SeverityHigh, events[0].Severity)

	events = Evaluate(model.WeatherReading{TemperatureC: 46, Humidity: 50}, nil)
	ev, found := eventFor(events, model.ConditionExtremeHeat)
	require.True(t, found)
	assert.Equal(t, model.SeverityCritical, ev.Severity)
}

func TestEvaluate_ExtremeColdEscalation(t *testing.T) {
	events := Evaluate(model.WeatherReading{TemperatureC: 3, Humidity: 40}, nil)
	ev, found := eventFor(events, model.ConditionExtremeCold)
	require.True(t, found)
	assert.Equal(t, model.SeverityHigh, ev.Severity)

	events = Evaluate(model.WeatherReading{TemperatureC: -2, Humidity: 40}, nil)
	ev, found = eventFor(events, model.ConditionExtremeCold)
	require.True(t, found)
	assert.Equal(t, model.SeverityCritical, ev.Severity)
}

func TestEvaluate_StrongWinds(t *testing.T) {
	events := Evaluate(model.WeatherReading{TemperatureC: 25, WindSpeedKmh: 30}, nil)
	ev, found := eventFor(events, model.ConditionStrongWinds)
	require.True(t, found)
	assert.Equal(t, model.SeverityMedium, ev.Severity)

	events = Evaluate(model.WeatherReading{TemperatureC: 25, WindSpeedKmh: 45}, nil)
	ev, found = eventFor(events, model.ConditionStrongWinds)
	require.True(t, found)
	assert.Equal(t, model.SeverityHigh, ev.Severity)
}

func TestEvaluate_FrostAndColdCoOccur(t *testing.T) {
	events := Evaluate(model.WeatherReading{TemperatureC: 2, Humidity: 85}, nil)

	cold, found := eventFor(events, model.ConditionExtremeCold)
	require.True(t, found, "extreme_cold should fire")
	assert.Equal(t, model.SeverityHigh, cold.Severity)

	frost, found := eventFor(events, model.ConditionFrost)
	require.True(t, found, "frost should fire alongside extreme_cold")
	assert.Equal(t, model.SeverityHigh, frost.Severity)

	assert.Len(t, events, 2)
}

func TestEvaluate_FrostNeedsHumidity(t *testing.T) {
	events := Evaluate(model.WeatherReading{TemperatureC: 2, Humidity: 60}, nil)

	_, found := eventFor(events, model.ConditionFrost)
	assert.False(t, found, "frost requires humidity above 80%")
}

func TestEvaluate_Hail(t *testing.T) {
	events := Evaluate(model.WeatherReading{TemperatureC: 20, Condition: model.WeatherThunderstormHail}, nil)

	ev, found := eventFor(events, model.ConditionHail)
	require.True(t, found)
	assert.Equal(t, model.SeverityCritical, ev.Severity)
}

func TestEvaluate_UpcomingRain(t *testing.T) {
	next := &model.WeatherReading{PrecipitationMM: 30}
	events := Evaluate(model.WeatherReading{TemperatureC: 25}, next)

	ev, found := eventFor(events, model.ConditionUpcomingRain)
	require.True(t, found)
	assert.Equal(t, model.SeverityMedium, ev.Severity)
	assert.Equal(t, TimingNextDay, ev.Timing)

	events = Evaluate(model.WeatherReading{TemperatureC: 25}, &model.WeatherReading{PrecipitationMM: 5})
	_, found = eventFor(events, model.ConditionUpcomingRain)
	assert.False(t, found)

	events = Evaluate(model.WeatherReading{TemperatureC: 25}, nil)
	_, found = eventFor(events, model.ConditionUpcomingRain)
	assert.False(t, found, "no forecast, no upcoming_rain")
}

func TestEvaluate_CalmWeather(t *testing.T) {
	events := Evaluate(model.WeatherReading{
		TemperatureC:    28,
		PrecipitationMM: 2,
		WindSpeedKmh:    12,
		Humidity:        55,
		Condition:       model.WeatherClouds,
	}, nil)

	assert.Empty(t, events)
}
