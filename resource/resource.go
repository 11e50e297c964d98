// Package resource provides the query-bound view resource used by every
// page: one primitive owning the fetch lifecycle (loading state, dependency
// key, stale-result discard, degrade-to-empty on failure) instead of each
// page re-implementing its own flags.
package resource

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// State is the load status of a resource.
type State int

const (
	// Idle means no load has been requested yet.
	Idle State = iota
	// Loading means a fetch is in flight.
	Loading
	// Ready means the last relevant fetch settled, possibly to the empty value.
	Ready
)

// FetchFunc loads the value for one dependency key.
type FetchFunc[T any] func(ctx context.Context, key string) (T, error)

// Resource binds a fetch function to a dependency key (slug, filter, page
// number). Reloading with a new key supersedes any in-flight fetch for an
// older key: only the result matching the latest requested key is applied,
// by request identity rather than arrival order.
//
// The request handlers in this server are one-shot and use Group instead;
// Resource is the library form of the same load lifecycle for long-lived
// consumers that re-key, such as a polling client navigating between pages.
type Resource[T any] struct {
	fetch FetchFunc[T]

	mu    sync.Mutex
	gen   uint64
	key   string
	state State
	value T
}

// New returns an idle Resource bound to fetch.
func New[T any](fetch FetchFunc[T]) *Resource[T] {
	return &Resource[T]{fetch: fetch}
}

// Load fetches the value for key and returns it. On failure the resource
// degrades to the zero value and still reports Ready; it is never left in
// perpetual Loading. If a newer Load started while this one was in flight,
// the stale result is discarded and the newer value is returned instead.
func (r *Resource[T]) Load(ctx context.Context, key string) T {
	r.mu.Lock()
	r.gen++
	gen := r.gen
	r.key = key
	r.state = Loading
	r.mu.Unlock()

	value, err := r.fetch(ctx, key)
	if err != nil {
		zap.L().Warn("resource: fetch failed, degrading to empty",
			zap.String("key", key), zap.Error(err))
		var zero T
		value = zero
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if gen != r.gen {
		// A newer load superseded this one; its key won.
		return r.value
	}
	r.value = value
	r.state = Ready
	return r.value
}

// Value returns the last committed value.
func (r *Resource[T]) Value() T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.value
}

// State returns the current load status.
func (r *Resource[T]) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Key returns the dependency key of the latest requested load.
func (r *Resource[T]) Key() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.key
}
