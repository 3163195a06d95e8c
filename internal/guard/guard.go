// Package guard implements the resolver's reentrancy guard: the set of
// providers currently executing within the current logical call. The
// spec's design notes call out two equally valid models — a per-thread
// set, or a set carried explicitly through a context — and prefer the
// latter "because it makes the invariant local and removes hidden state."
// Go has no stable goroutine-local storage to hang a thread-local off of
// anyway, so context is also the only idiomatic option here.
package guard

import (
	"context"

	"github.com/latticeconf/coordinate/spi"
)

type contextKey struct{}

// set is the mutable active-provider bookkeeping for one top-level
// Resolve call. It is stored behind a pointer in the context so every
// nested Resolve call sharing that context observes the same set.
type set struct {
	active map[spi.ProviderID]bool
}

// Seed returns a context carrying a fresh, empty active-provider set if
// ctx does not already have one, and ctx unchanged otherwise. A resolver's
// top-level entry point calls this once; nested calls made by providers
// reusing the same context are no-ops here and share the existing set.
func Seed(ctx context.Context) context.Context {
	if _, ok := ctx.Value(contextKey{}).(*set); ok {
		return ctx
	}
	return context.WithValue(ctx, contextKey{}, &set{active: make(map[spi.ProviderID]bool)})
}

func current(ctx context.Context) *set {
	s, ok := ctx.Value(contextKey{}).(*set)
	if !ok {
		// A guard-less context behaves as an always-empty, write-discarding
		// set: Active reports false and Activate/Deactivate are no-ops.
		// This only happens if a caller bypasses Seed, which internal
		// code never does.
		return &set{active: make(map[spi.ProviderID]bool)}
	}
	return s
}

// Active reports whether id is currently executing somewhere up the
// logical call stack captured by ctx.
func Active(ctx context.Context, id spi.ProviderID) bool {
	return current(ctx).active[id]
}

// Activate records id as executing. Idempotent.
func Activate(ctx context.Context, id spi.ProviderID) {
	current(ctx).active[id] = true
}

// Deactivate records id as no longer executing. Idempotent.
func Deactivate(ctx context.Context, id spi.ProviderID) {
	delete(current(ctx).active, id)
}

// Empty reports whether no provider is currently marked active. Used by
// the resolver's post-collection-pass assertion and by tests asserting
// invariant 1 from spec.md §8.
func Empty(ctx context.Context) bool {
	return len(current(ctx).active) == 0
}
