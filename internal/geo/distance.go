package geo

import (
	"math"

	"github.com/golang/geo/s2"

	"github.com/mr1hm/go-crisis-finder/internal/models"
)

const EarthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance between a and b in kilometers.
func HaversineKm(a, b models.Coordinates) float64 {
	from := s2.LatLngFromDegrees(a.Latitude, a.Longitude)
	to := s2.LatLngFromDegrees(b.Latitude, b.Longitude)

	d := from.Distance(to).Radians() * EarthRadiusKm
	if d < 0 || math.IsNaN(d) {
		return 0
	}
	return d
}

// Round2 rounds to two decimal places for display. Comparisons use raw values.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
