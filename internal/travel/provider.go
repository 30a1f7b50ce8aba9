// Package travel is the boundary to the external mapping provider.
package travel

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNoRoute  = errors.New("no route between locations")
	ErrTimeout  = errors.New("travel provider timed out")
	ErrNoAPIKey = errors.New("maps API key missing")
)

type Mode string

const (
	ModeDriving Mode = "driving"
	ModeTransit Mode = "transit"
)

// Leg is the provider's estimate for one travel mode.
type Leg struct {
	Duration     time.Duration
	DurationText string
	DistanceM    int
	DistanceText string
}

// Provider returns travel metrics between two locations. Locations are
// either "lat,lng" pairs or place names the provider can geocode.
type Provider interface {
	Travel(ctx context.Context, origin, destination string, mode Mode) (Leg, error)
}
