package model

import (
	"fmt"

	"github.com/google/uuid"
)

// Farmer represents a registered farmer as stored by the account subsystem.
//
// The engine reads farmers to know where to check the weather and how to
// reach them; it never mutates this record.
type Farmer struct {
	ID        uuid.UUID `json:"id"`        // unique identifier, owned by the account subsystem
	Name      string    `json:"name"`      // display name
	Email     string    `json:"email"`     // contact address for out-of-band delivery, may be empty
	Language  string    `json:"language"`  // preferred language code, e.g. "hi", "mr", "en"
	State     string    `json:"state"`     // state used for crop mapping and geocoding fallback
	District  string    `json:"district"`  // district used for geocoding fallback
	Latitude  *float64  `json:"latitude"`  // resolved coordinates, nil until geocoded
	Longitude *float64  `json:"longitude"` // resolved coordinates, nil until geocoded
	Crops     []string  `json:"crops"`     // names of currently grown crops
}

// HasCoordinates reports whether the farmer's location is already resolved.
func (f Farmer) HasCoordinates() bool {
	return f.Latitude != nil && f.Longitude != nil
}

// Place returns the "district, state" string used for delayed geocoding when
// no coordinates are stored.
func (f Farmer) Place() string {
	if f.District == "" {
		return f.State
	}

	return fmt.Sprintf("%s, %s", f.District, f.State)
}
