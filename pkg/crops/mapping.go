// Package crops is the crop-mapping collaborator: it resolves a farmer's
// region and grown crops into the recommended crop list used in advisories.
package crops

import (
	"strings"

	"github.com/kisanmitra/weather-engine/internal/model"
)

// Mapper resolves recommended crops from a static regional table.
type Mapper struct{}

func NewMapper() *Mapper {
	return &Mapper{}
}

// byRegion maps a lowercased state name to its common crops. The table is a
// curated snapshot, not an exhaustive agronomic database.
var byRegion = map[string][]model.Crop{
	"punjab": {
		{Name: "wheat", LocalName: "गेहूं", WaterRequirement: "medium"},
		{Name: "rice", LocalName: "चावल", WaterRequirement: "high"},
		{Name: "maize", LocalName: "मक्का", WaterRequirement: "medium"},
	},
	"maharashtra": {
		{Name: "cotton", LocalName: "कापूस", WaterRequirement: "medium"},
		{Name: "sugarcane", LocalName: "ऊस", WaterRequirement: "high"},
		{Name: "soybean", LocalName: "सोयाबीन", WaterRequirement: "low"},
	},
	"uttar pradesh": {
		{Name: "wheat", LocalName: "गेहूं", WaterRequirement: "medium"},
		{Name: "sugarcane", LocalName: "गन्ना", WaterRequirement: "high"},
		{Name: "potato", LocalName: "आलू", WaterRequirement: "medium"},
	},
	"rajasthan": {
		{Name: "bajra", LocalName: "बाजरा", WaterRequirement: "low"},
		{Name: "mustard", LocalName: "सरसों", WaterRequirement: "low"},
		{Name: "gram", LocalName: "चना", WaterRequirement: "low"},
	},
	"tamil nadu": {
		{Name: "rice", LocalName: "அரிசி", WaterRequirement: "high"},
		{Name: "groundnut", LocalName: "நிலக்கடலை", WaterRequirement: "low"},
		{Name: "millet", LocalName: "கம்பு", WaterRequirement: "low"},
	},
}

var defaults = []model.Crop{
	{Name: "wheat", LocalName: "गेहूं", WaterRequirement: "medium"},
	{Name: "rice", LocalName: "चावल", WaterRequirement: "high"},
	{Name: "pulses", LocalName: "दालें", WaterRequirement: "low"},
}

// GetRecommendedCrops returns the crops relevant to a farmer: everything the
// farmer already grows (enriched from the regional table when known), padded
// with regional recommendations.
func (m *Mapper) GetRecommendedCrops(region string, grown []string) []model.Crop {
	regional, ok := byRegion[strings.ToLower(strings.TrimSpace(region))]
	if !ok {
		regional = defaults
	}

	known := make(map[string]model.Crop, len(regional))
	for _, c := range regional {
		known[c.Name] = c
	}

	var result []model.Crop
	seen := make(map[string]bool)

	for _, name := range grown {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		if c, ok := known[name]; ok {
			result = append(result, c)
			continue
		}

		result = append(result, model.Crop{Name: name, WaterRequirement: "medium"})
	}

	for _, c := range regional {
		if seen[c.Name] {
			continue
		}
		seen[c.Name] = true
		result = append(result, c)
	}

	return result
}
