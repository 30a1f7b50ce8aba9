// Package lookup records served lookups off the request path.
package lookup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mr1hm/go-crisis-finder/internal/config"
	"github.com/mr1hm/go-crisis-finder/internal/models"
	"github.com/mr1hm/go-crisis-finder/internal/repository"
	"github.com/mr1hm/go-crisis-finder/internal/worker"
)

const writeTimeout = 5 * time.Second

type Recorder struct {
	repo repository.LookupRepository
	pool *worker.WorkerPool
}

func NewRecorder(cfg config.WorkerConfig, repo repository.LookupRepository) *Recorder {
	r := &Recorder{repo: repo}
	r.pool = worker.NewWorkerPool("lookup-recorder", cfg.Count, cfg.BufferSize, r.process)
	return r
}

func (r *Recorder) Start(ctx context.Context) {
	r.pool.Start(ctx)
}

// Record queues l for writing and never blocks. ID and CreatedAt are filled
// in when empty.
func (r *Recorder) Record(l models.Lookup) {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now()
	}

	if !r.pool.TrySubmit(&l) {
		slog.Warn("lookup log queue full, dropping record", "id", l.ID, "outcome", l.Outcome)
	}
}

func (r *Recorder) process(ctx context.Context, job worker.Job) error {
	l, ok := job.(*models.Lookup)
	if !ok {
		return fmt.Errorf("unexpected job type %T", job)
	}

	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	if err := r.repo.AddLookup(ctx, l); err != nil {
		return err
	}

	slog.Debug("recorded lookup", "id", l.ID, "outcome", l.Outcome, "center", l.CenterID)
	return nil
}

// Stop drains queued records and waits for the workers.
func (r *Recorder) Stop() {
	r.pool.Stop()
	slog.Info("lookup recorder stopped")
}
