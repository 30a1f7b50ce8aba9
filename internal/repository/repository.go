package repository

import (
	"context"
	"time"

	"github.com/mr1hm/go-crisis-finder/internal/models"
)

type LookupRepository interface {
	AddLookup(ctx context.Context, l *models.Lookup) error
	// CenterStats counts lookups per center created at or after since.
	CenterStats(ctx context.Context, since time.Time) ([]models.CenterStat, error)
	RecentLookups(ctx context.Context, limit int) ([]models.Lookup, error)
}
