package travel

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

type GoogleProvider struct {
	client   *maps.Client
	language string
}

type GoogleOption func(*googleOptions)

type googleOptions struct {
	baseURL  string
	language string
}

// WithBaseURL points the client at another Maps API host.
func WithBaseURL(url string) GoogleOption {
	return func(o *googleOptions) { o.baseURL = url }
}

func WithLanguage(lang string) GoogleOption {
	return func(o *googleOptions) { o.language = lang }
}

func NewGoogleProvider(apiKey string, opts ...GoogleOption) (*GoogleProvider, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}

	o := googleOptions{language: "fi"}
	for _, opt := range opts {
		opt(&o)
	}

	clientOpts := []maps.ClientOption{maps.WithAPIKey(apiKey)}
	if o.baseURL != "" {
		clientOpts = append(clientOpts, maps.WithBaseURL(o.baseURL))
	}

	client, err := maps.NewClient(clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("error creating maps client: %w", err)
	}

	return &GoogleProvider{client: client, language: o.language}, nil
}

func (p *GoogleProvider) Travel(ctx context.Context, origin, destination string, mode Mode) (Leg, error) {
	req := &maps.DistanceMatrixRequest{
		Origins:      []string{origin},
		Destinations: []string{destination},
		Mode:         googleMode(mode),
		Units:        maps.UnitsMetric,
		Language:     p.language,
	}

	resp, err := p.client.DistanceMatrix(ctx, req)
	if err != nil {
		return Leg{}, fmt.Errorf("error requesting distance matrix: %w", err)
	}

	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
		return Leg{}, fmt.Errorf("%w: empty distance matrix", ErrNoRoute)
	}

	el := resp.Rows[0].Elements[0]
	if el.Status != "OK" {
		return Leg{}, fmt.Errorf("%w: element status %s", ErrNoRoute, el.Status)
	}

	return Leg{
		Duration:     el.Duration,
		DurationText: FormatDuration(el.Duration),
		DistanceM:    el.Distance.Meters,
		DistanceText: el.Distance.HumanReadable,
	}, nil
}

func googleMode(m Mode) maps.Mode {
	if m == ModeTransit {
		return maps.TravelModeTransit
	}
	return maps.TravelModeDriving
}
