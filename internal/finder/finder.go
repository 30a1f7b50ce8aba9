// Package finder answers nearest-center queries by running the locator,
// distance resolver and response assembler against the current gazetteer.
package finder

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mr1hm/go-crisis-finder/internal/distance"
	"github.com/mr1hm/go-crisis-finder/internal/gazetteer"
	"github.com/mr1hm/go-crisis-finder/internal/locator"
	"github.com/mr1hm/go-crisis-finder/internal/models"
	"github.com/mr1hm/go-crisis-finder/internal/response"
)

var ErrUnavailable = errors.New("gazetteer not loaded")

// Snapshotter returns the gazetteer in use, or nil if none is loaded.
type Snapshotter interface {
	Current() *gazetteer.Gazetteer
}

// Recorder receives a record of every lookup. Implementations must not block.
type Recorder interface {
	Record(l models.Lookup)
}

type Service struct {
	gazetteers Snapshotter
	resolver   *distance.Resolver
	locatorOpt locator.Options
	recorder   Recorder
}

// NewService wires the finder. recorder may be nil.
func NewService(gazetteers Snapshotter, resolver *distance.Resolver, opts locator.Options, recorder Recorder) *Service {
	return &Service{
		gazetteers: gazetteers,
		resolver:   resolver,
		locatorOpt: opts,
		recorder:   recorder,
	}
}

// Find resolves query to the nearest crisis center. Exactly one of the
// results is non-nil.
func (s *Service) Find(ctx context.Context, query string) (*response.Response, *response.ErrorResponse) {
	gaz := s.gazetteers.Current()
	if gaz == nil {
		slog.Error("lookup rejected", "query", query, "error", ErrUnavailable)
		return nil, response.Unavailable()
	}

	out := locator.New(gaz, s.locatorOpt).Resolve(query)

	var dist distance.Result
	if out.HasCenter() {
		dist = s.resolver.Compute(ctx, out.Place, out.Center)
	}

	resp, errResp := response.Assemble(out, dist)

	switch out.Kind {
	case locator.KindFallback:
		slog.Warn("unknown city, using fallback center", "query", query, "center", out.Center.ID)
	case locator.KindNotFound:
		slog.Info("ambiguous city", "query", query, "candidates", len(out.Candidates))
	}

	s.record(out, dist)
	return resp, errResp
}

func (s *Service) ProviderAvailable() bool {
	return s.resolver.ProviderAvailable()
}

// Centers returns all centers of the current gazetteer, or ErrUnavailable.
func (s *Service) Centers() ([]models.CrisisCenter, error) {
	gaz := s.gazetteers.Current()
	if gaz == nil {
		return nil, ErrUnavailable
	}
	return gaz.Centers(), nil
}

func (s *Service) record(out locator.Outcome, dist distance.Result) {
	if s.recorder == nil {
		return
	}
	l := models.Lookup{
		Query:      out.Query,
		Normalized: out.Normalized,
		Outcome:    out.Kind.String(),
		Enriched:   dist.Enriched(),
	}
	if out.HasCenter() {
		l.CenterID = out.Center.ID
	}
	s.recorder.Record(l)
}
