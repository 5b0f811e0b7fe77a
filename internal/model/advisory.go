package model

import (
	"time"

	"github.com/google/uuid"
)

// Provenance records where advisory or alert text came from.
type Provenance string

const (
	ProvenanceAI       Provenance = "ai"       // text produced by the generation collaborator
	ProvenanceFallback Provenance = "fallback" // deterministic rule-based text
)

// Advisory is the once-per-day farming advice for one farmer.
//
// Identity is (farmer, calendar date); regeneration on the same day is an
// upsert, never a duplicate.
type Advisory struct {
	ID             uuid.UUID  `json:"id"`
	FarmerID       uuid.UUID  `json:"farmer_id"`
	Date           time.Time  `json:"date"`            // calendar date, truncated to midnight UTC
	WeatherSummary string     `json:"weather_summary"` // snapshot of the conditions the advice was based on
	Crops          []string   `json:"crops"`           // crop names considered relevant
	PrimaryAdvice  string     `json:"primary_advice"`
	Tips           []string   `json:"tips"` // up to two supporting tips
	Provenance     Provenance `json:"provenance"`
	ExpiresAt      time.Time  `json:"expires_at"` // read-time visibility bound (24h)
	CreatedAt      time.Time  `json:"created_at"`
}

// Crop describes one recommended crop as returned by the crop-mapping
// collaborator.
type Crop struct {
	Name             string `json:"name"`
	LocalName        string `json:"local_name"`
	WaterRequirement string `json:"water_requirement"` // low, medium or high
}
