// Package rules is the condition rule engine: a pure mapping from weather
// readings to condition events. All branching lives in the threshold table
// below so each predicate can be tuned and tested on its own.
package rules

import (
	"github.com/kisanmitra/weather-engine/internal/model"
)

// Threshold constants. Values are agronomic defaults for the Indian plains
// and are deliberately centralized here.
const (
	HeavyRainMM        = 25.0 // mm of precipitation in a reading
	ExtremeHeatC       = 40.0
	ExtremeHeatSevereC = 45.0
	ExtremeColdC       = 5.0
	ExtremeColdSevereC = 0.0
	StrongWindKmh      = 25.0
	StrongWindSevereKmh = 40.0
	FrostTempC         = 4.0
	FrostHumidity      = 80.0
)

// Timing distinguishes a condition observed now from one forecast for the
// next day.
type Timing string

const (
	TimingNow     Timing = "now"
	TimingNextDay Timing = "next_day"
)

// Event is an ephemeral signal that a threshold was crossed. Events are
// consumed immediately by the alert deduplicator and never stored.
type Event struct {
	Condition model.Condition
	Severity  model.Severity
	Value     float64 // the numeric value that triggered the rule
	Timing    Timing
}

// rule is one declarative predicate over a reading. trigger returns the
// triggering value and whether the rule fired; severity grades that value.
type rule struct {
	condition model.Condition
	trigger   func(r model.WeatherReading) (float64, bool)
	severity  func(value float64) model.Severity
}

func constant(s model.Severity) func(float64) model.Severity {
	return func(float64) model.Severity { return s }
}

func escalating(threshold float64, base, severe model.Severity, above bool) func(float64) model.Severity {
	return func(value float64) model.Severity {
		if above && value > threshold {
			return severe
		}
		if !above && value < threshold {
			return severe
		}
		return base
	}
}

// table holds the rules evaluated against the current reading. Multiple
// rules may fire for one reading; each firing yields an independent event.
var table = []rule{
	{
		condition: model.ConditionHeavyRain,
		trigger: func(r model.WeatherReading) (float64, bool) {
			return r.PrecipitationMM, r.PrecipitationMM > HeavyRainMM
		},
		severity: constant(model.SeverityHigh),
	},
	{
		condition: model.ConditionExtremeHeat,
		trigger: func(r model.WeatherReading) (float64, bool) {
			return r.TemperatureC, r.TemperatureC > ExtremeHeatC
		},
		severity: escalating(ExtremeHeatSevereC, model.SeverityHigh, model.SeverityCritical, true),
	},
	{
		condition: model.ConditionExtremeCold,
		trigger: func(r model.WeatherReading) (float64, bool) {
			return r.TemperatureC, r.TemperatureC < ExtremeColdC
		},
		severity: escalating(ExtremeColdSevereC, model.SeverityHigh, model.SeverityCritical, false),
	},
	{
		condition: model.ConditionStrongWinds,
		trigger: func(r model.WeatherReading) (float64, bool) {
			return r.WindSpeedKmh, r.WindSpeedKmh > StrongWindKmh
		},
		severity: escalating(StrongWindSevereKmh, model.SeverityMedium, model.SeverityHigh, true),
	},
	{
		condition: model.ConditionFrost,
		trigger: func(r model.WeatherReading) (float64, bool) {
			return r.TemperatureC, r.TemperatureC < FrostTempC && r.Humidity > FrostHumidity
		},
		severity: constant(model.SeverityHigh),
	},
	{
		condition: model.ConditionHail,
		trigger: func(r model.WeatherReading) (float64, bool) {
			return 0, r.Condition == model.WeatherThunderstormHail
		},
		severity: constant(model.SeverityCritical),
	},
}

// Evaluate runs every rule against the current reading and, when a next-day
// forecast is available, checks it for upcoming heavy rain. The returned
// events are independent; co-occurrence is expected and not collapsed.
func Evaluate(current model.WeatherReading, nextDay *model.WeatherReading) []Event {
	var events []Event

	for _, rl := range table {
		value, fired := rl.trigger(current)
		if !fired {
			continue
		}

		events = append(events, Event{
			Condition: rl.condition,
			Severity:  rl.severity(value),
			Value:     value,
			Timing:    TimingNow,
		})
	}

	if nextDay != nil && nextDay.PrecipitationMM > HeavyRainMM {
		events = append(events, Event{
			Condition: model.ConditionUpcomingRain,
			Severity:  model.SeverityMedium,
			Value:     nextDay.PrecipitationMM,
			Timing:    TimingNextDay,
		})
	}

	return events
}
