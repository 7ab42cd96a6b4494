package store

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultLoadTimeout bounds one shared load, independent of the callers waiting on it.
const DefaultLoadTimeout = time.Minute

// Loader fetches the full contents of one entity source.
type Loader[T any] func(ctx context.Context) ([]T, error)

// RefreshObserver is told about every reload attempt.
type RefreshObserver interface {
	StoreRefreshed(store string, d time.Duration, items int, err error)
}

// Store caches the last successful load of one entity source.
//
// Readers never block on I/O: they see the previous snapshot until a refresh succeeds.
// Concurrent Refresh calls share a single load.
type Store[T any] struct {
	name        string
	load        Loader[T]
	observer    RefreshObserver
	group       singleflight.Group
	loadTimeout time.Duration

	mu       sync.RWMutex
	items    []T
	loaded   bool
	loadedAt time.Time
}

func New[T any](name string, load Loader[T], observer RefreshObserver) *Store[T] {
	return &Store[T]{name: name, load: load, observer: observer, loadTimeout: DefaultLoadTimeout}
}

// WithLoadTimeout replaces DefaultLoadTimeout.
func (s *Store[T]) WithLoadTimeout(d time.Duration) *Store[T] {
	s.loadTimeout = d
	return s
}

func (s *Store[T]) Name() string {
	return s.name
}

// Snapshot returns a copy of the cached items; callers may reorder it freely.
func (s *Store[T]) Snapshot() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Each calls fn for every cached item under the read lock. fn must not call back into s.
func (s *Store[T]) Each(fn func(T)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		fn(it)
	}
}

func (s *Store[T]) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

func (s *Store[T]) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

// Refresh reloads the source. On failure the previous snapshot stays in place.
//
// The shared load keeps the values of ctx but not its cancellation: a caller that gives up
// returns ctx.Err() while the load carries on for the other waiters.
func (s *Store[T]) Refresh(ctx context.Context) error {
	ch := s.group.DoChan("refresh", func() (interface{}, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.loadTimeout)
		defer cancel()

		start := time.Now()
		items, err := s.load(loadCtx)
		if s.observer != nil {
			s.observer.StoreRefreshed(s.name, time.Since(start), len(items), err)
		}
		if err != nil {
			return nil, err
		}
		s.Replace(items)
		return nil, nil
	})
	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Replace swaps the snapshot without calling the loader.
func (s *Store[T]) Replace(items []T) {
	cp := make([]T, len(items))
	copy(cp, items)

	s.mu.Lock()
	s.items = cp
	s.loaded = true
	s.loadedAt = time.Now()
	s.mu.Unlock()
}
