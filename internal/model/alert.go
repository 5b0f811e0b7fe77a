package model

import (
	"time"

	"github.com/google/uuid"
)

// Condition is the tag of an agronomically critical weather condition.
type Condition string

const (
	ConditionHeavyRain    Condition = "heavy_rain"
	ConditionExtremeHeat  Condition = "extreme_heat"
	ConditionExtremeCold  Condition = "extreme_cold"
	ConditionStrongWinds  Condition = "strong_winds"
	ConditionFrost        Condition = "frost"
	ConditionHail         Condition = "hail"
	ConditionUpcomingRain Condition = "upcoming_rain"
)

// Severity grades how urgent an alert is.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// AtLeastHigh reports whether the severity warrants out-of-band delivery.
func (s Severity) AtLeastHigh() bool {
	return s == SeverityHigh || s == SeverityCritical
}

// Alert is a persisted warning for one farmer about one condition.
//
// For a given (farmer, condition) pair at most one alert may be created
// within the deduplication window; the repository enforces this atomically.
type Alert struct {
	ID              uuid.UUID `json:"id"`
	FarmerID        uuid.UUID `json:"farmer_id"`
	Condition       Condition `json:"condition"`
	Severity        Severity  `json:"severity"`
	Message         string    `json:"message"`         // short human-readable alert text
	Recommendations []string  `json:"recommendations"` // ordered condition-specific actions
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	ValidFrom       time.Time `json:"valid_from"`
	ValidUntil      time.Time `json:"valid_until"` // read-time visibility bound, not the deletion horizon
	Read            bool      `json:"read"`
	CreatedAt       time.Time `json:"created_at"`
}
