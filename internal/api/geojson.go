package api

import (
	"github.com/mr1hm/go-crisis-finder/internal/models"
)

type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}
type Feature struct {
	Type       string         `json:"type"`
	Geometry   Geometry       `json:"geometry"`
	Properties map[string]any `json:"properties"`
}
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

func toGeoJSON(centers []models.CrisisCenter) FeatureCollection {
	features := make([]Feature, 0, len(centers))

	for _, c := range centers {
		f := Feature{
			Type: "Feature",
			Geometry: Geometry{
				Type:        "Point",
				Coordinates: []float64{c.Coordinates.Longitude, c.Coordinates.Latitude},
			},
			Properties: map[string]any{
				"id":        c.ID,
				"name":      c.Name,
				"region":    c.Region,
				"phone":     c.Phone,
				"languages": c.Languages,
			},
		}
		features = append(features, f)
	}

	return FeatureCollection{
		Type:     "FeatureCollection",
		Features: features,
	}
}
