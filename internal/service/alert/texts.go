package alert

import (
	"fmt"

	"github.com/kisanmitra/weather-engine/internal/model"
	"github.com/kisanmitra/weather-engine/internal/rules"
)

// recommendations holds the condition-specific default actions attached to
// every alert, whether or not text generation succeeded.
var recommendations = map[model.Condition][]string{
	model.ConditionHeavyRain: {
		"Ensure field drainage channels are clear",
		"Delay fertilizer and pesticide application",
		"Move harvested produce under cover",
	},
	model.ConditionExtremeHeat: {
		"Irrigate early morning or late evening",
		"Apply mulch to retain soil moisture",
		"Provide shade and extra water for livestock",
	},
	model.ConditionExtremeCold: {
		"Irrigate lightly in the evening to protect roots",
		"Cover nursery beds and young plants",
	},
	model.ConditionStrongWinds: {
		"Stake or support tall and climbing crops",
		"Postpone spraying operations",
		"Secure greenhouse covers and stored equipment",
	},
	model.ConditionFrost: {
		"Irrigate fields before nightfall to reduce frost damage",
		"Cover sensitive crops with straw or row covers",
		"Light smudge fires on the windward side if permitted",
	},
	model.ConditionHail: {
		"Move people and livestock to shelter immediately",
		"Protect nursery beds with netting if time allows",
		"Document crop damage for insurance claims",
	},
	model.ConditionUpcomingRain: {
		"Plan harvesting of mature crops before the rain",
		"Prepare drainage channels in advance",
	},
}

var defaultRecommendations = []string{
	"Monitor your fields closely",
	"Follow local agricultural department guidance",
}

// RecommendationsFor returns the default actions for a condition. The list
// is never empty.
func RecommendationsFor(condition model.Condition) []string {
	if recs, ok := recommendations[condition]; ok {
		return recs
	}

	return defaultRecommendations
}

// FallbackMessage builds the deterministic alert text used when the
// generation collaborator is unavailable.
func FallbackMessage(ev rules.Event) string {
	switch ev.Condition {
	case model.ConditionHeavyRain:
		return fmt.Sprintf("Heavy rainfall of %.0fmm detected in your area. Protect your crops and ensure proper drainage.", ev.Value)
	case model.ConditionExtremeHeat:
		return fmt.Sprintf("Extreme heat of %.0f°C in your area. Irrigate your crops and avoid midday field work.", ev.Value)
	case model.ConditionExtremeCold:
		return fmt.Sprintf("Temperature has dropped to %.0f°C. Protect sensitive crops from cold damage.", ev.Value)
	case model.ConditionStrongWinds:
		return fmt.Sprintf("Strong winds of %.0f km/h expected. Secure supports for tall crops and postpone spraying.", ev.Value)
	case model.ConditionFrost:
		return "Frost conditions likely tonight. Cover young plants and irrigate before nightfall."
	case model.ConditionHail:
		return "Hailstorm detected in your area. Take shelter and protect what you can immediately."
	case model.ConditionUpcomingRain:
		return fmt.Sprintf("Heavy rain of %.0fmm expected tomorrow. Plan field work and harvesting accordingly.", ev.Value)
	default:
		return "Adverse weather conditions detected in your area. Take precautions to protect your crops."
	}
}
