package store

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"

	"github.com/santhosh-kumar-karthikeyan/graph-ops/core"
)

// watchDebounce coalesces the burst of events a single save produces.
const watchDebounce = 50 * time.Millisecond

// Watch starts a background goroutine that reloads g whenever the data file
// is written or replaced by another process. onReload, if non-nil, is called
// after every reload attempt with its error (nil on success).
//
// The directory is watched rather than the file, so atomic replacements
// (including this Store's own Save) are seen. Content identical to what this
// Store last wrote or read is ignored, and a burst of events collapses into
// one reload.
//
// The goroutine exits when ctx is done or the returned stop function is called.
func (s *Store) Watch(ctx context.Context, g *core.Graph, onReload func(error)) (stop func(), err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store watcher: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("store watcher add %s: %w", dir, err)
	}
	target := filepath.Clean(s.path)

	done := make(chan struct{})
	debounced := debounce.New(watchDebounce)
	go func() {
		defer w.Close()
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				debounced(func() {
					select {
					case <-done:
					case <-ctx.Done():
					default:
						s.reload(g, onReload)
					}
				})
			case werr, ok := <-w.Errors:
				if !ok {
					return
				}
				s.logger.Warn().Err(werr).Str("path", s.path).Msg("watcher error")
			case <-ctx.Done():
				return
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() { once.Do(func() { close(done) }) }, nil
}

// reload re-reads the data file after a change event.
func (s *Store) reload(g *core.Graph, onReload func(error)) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		// a writer may still be mid-replace; the next event retries
		s.logger.Debug().Err(err).Str("path", s.path).Msg("reload skipped")
		return
	}
	if len(bytes.TrimSpace(data)) == 0 || s.unchanged(data) {
		// truncated by a writer that has not finished yet, or our own content
		return
	}

	err = s.apply(g, data)
	if err != nil {
		s.logger.Warn().Err(err).Str("path", s.path).Msg("reload failed, keeping current graph")
	} else {
		s.logger.Info().Str("path", s.path).Msg("graph reloaded from disk")
	}
	if onReload != nil {
		onReload(err)
	}
}
