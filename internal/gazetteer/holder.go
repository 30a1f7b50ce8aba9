package gazetteer

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
)

// Holder owns the current gazetteer snapshot. Readers get whole snapshots;
// a reload builds a new gazetteer and swaps the pointer, never editing the
// one in use.
type Holder struct {
	path    string
	current atomic.Pointer[Gazetteer]
}

func NewHolder(path string) *Holder {
	return &Holder{path: path}
}

// Current returns the loaded snapshot, or nil if nothing has loaded yet.
func (h *Holder) Current() *Gazetteer {
	return h.current.Load()
}

func (h *Holder) Store(g *Gazetteer) {
	h.current.Store(g)
}

// Reload loads the definition again. On failure the previous snapshot stays.
func (h *Holder) Reload() error {
	g, err := Load(h.path)
	if err != nil {
		return err
	}
	h.current.Store(g)
	slog.Info("gazetteer loaded", "path", h.path, "centers", g.Len())
	return nil
}

// Watch reloads the gazetteer whenever the definition file changes. The
// containing directory is watched since editors often replace files by
// rename. The returned stop func blocks until the watcher has exited.
func (h *Holder) Watch(ctx context.Context) (stop func(), err error) {
	if h.path == "" {
		return nil, fmt.Errorf("no gazetteer file to watch")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("error creating watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(h.path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("error watching %s: %w", h.path, err)
	}

	ctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()
		defer watcher.Close()

		target := filepath.Clean(h.path)
		for {
			select {
			case <-ctx.Done():
				return
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != target {
					continue
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				if err := h.Reload(); err != nil {
					slog.Error("gazetteer reload failed, keeping previous snapshot", "path", h.path, "error", err)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Warn("gazetteer watcher error", "error", err)
			}
		}
	}()

	return func() {
		cancel()
		wg.Wait()
	}, nil
}
