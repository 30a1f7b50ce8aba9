// Package distance computes the distance metrics returned with a center.
package distance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mr1hm/go-crisis-finder/internal/geo"
	"github.com/mr1hm/go-crisis-finder/internal/models"
	"github.com/mr1hm/go-crisis-finder/internal/travel"
)

const DefaultTimeout = 3 * time.Second

// Result holds raw values; rounding happens when the response is built.
// StraightLineKm is 0 when StraightLineKnown is false, which is not the same
// as the origin being at the center.
type Result struct {
	StraightLineKm    float64
	StraightLineKnown bool
	Driving           *travel.Leg
	Transit           *travel.Leg
}

// Enriched reports whether the provider contributed any travel mode.
func (r Result) Enriched() bool {
	return r.Driving != nil || r.Transit != nil
}

type Options struct {
	Timeout time.Duration
	Transit bool
}

type Resolver struct {
	provider travel.Provider
	timeout  time.Duration
	modes    []travel.Mode
}

// NewResolver returns a resolver. A nil provider yields straight-line only
// results.
func NewResolver(provider travel.Provider, opts Options) *Resolver {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	modes := []travel.Mode{travel.ModeDriving}
	if opts.Transit {
		modes = append(modes, travel.ModeTransit)
	}

	return &Resolver{
		provider: provider,
		timeout:  opts.Timeout,
		modes:    modes,
	}
}

func (r *Resolver) ProviderAvailable() bool {
	return r.provider != nil
}

// Compute never fails: provider errors and timeouts drop the affected mode
// and are logged.
func (r *Resolver) Compute(ctx context.Context, origin models.Place, center models.CrisisCenter) Result {
	var res Result

	if origin.Coordinates != nil {
		res.StraightLineKm = geo.HaversineKm(*origin.Coordinates, center.Coordinates)
		res.StraightLineKnown = true
	}

	if r.provider == nil {
		return res
	}

	from := providerLocation(origin)
	if from == "" {
		return res
	}
	to := center.Coordinates.String()

	legs := make([]*travel.Leg, len(r.modes))
	var g errgroup.Group
	for i, mode := range r.modes {
		g.Go(func() error {
			leg, err := r.travel(ctx, from, to, mode)
			if err != nil {
				slog.Warn("travel provider degraded, omitting mode",
					"mode", mode, "origin", from, "center", center.ID, "error", err)
				return nil
			}
			legs[i] = &leg
			return nil
		})
	}
	g.Wait()

	for i, mode := range r.modes {
		switch mode {
		case travel.ModeDriving:
			res.Driving = legs[i]
		case travel.ModeTransit:
			res.Transit = legs[i]
		}
	}

	return res
}

// travel makes exactly one provider call bounded by the resolver timeout.
// The select returns on timeout even if the provider ignores ctx; a late
// result lands in the buffered channel and is dropped.
func (r *Resolver) travel(ctx context.Context, from, to string, mode travel.Mode) (travel.Leg, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	type result struct {
		leg travel.Leg
		err error
	}
	ch := make(chan result, 1)

	go func() {
		leg, err := r.provider.Travel(ctx, from, to, mode)
		ch <- result{leg: leg, err: err}
	}()

	select {
	case res := <-ch:
		return res.leg, res.err
	case <-ctx.Done():
		return travel.Leg{}, fmt.Errorf("%w: %s after %s", travel.ErrTimeout, mode, r.timeout)
	}
}

func providerLocation(p models.Place) string {
	if p.Coordinates != nil {
		return p.Coordinates.String()
	}
	if p.Name == "" {
		return ""
	}
	return p.Name + ", Finland"
}
