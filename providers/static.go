// Package providers holds concrete spi.Provider implementations: a static
// in-memory map for tests and small programs, an environment-variable
// provider using the teacher's path-to-env-var transform, and a
// TOML-backed provider for multi-coordinate manifests discovered the way
// config.Builder's WithFileDiscovery locates its config file.
package providers

import (
	"context"

	"github.com/google/uuid"

	"github.com/latticeconf/coordinate/spi"
)

// entry is one coordinate-scoped value registered with a StaticMap.
type entry struct {
	coordinates   spi.Coordinates
	value         *string
	authoritative bool
}

// StaticMap is a Provider backed by an in-process list of name ->
// coordinate-scoped entries, the simplest possible Provider and the one
// exercised most heavily by the resolver's own tests.
type StaticMap struct {
	id      spi.ProviderID
	entries map[string][]entry
}

// NewStaticMap returns an empty StaticMap with a freshly generated
// ProviderID. Use WithValue to populate it; the returned pointer is
// intended to be built up and then registered with a Builder.
func NewStaticMap() *StaticMap {
	return &StaticMap{
		id:      spi.ProviderID("static-map-" + uuid.NewString()),
		entries: make(map[string][]entry),
	}
}

// WithID overrides the generated ProviderID, useful for tests that assert
// on Value.Source() or for arbiters.Priority configurations that
// reference providers by a stable name.
func (s *StaticMap) WithID(id spi.ProviderID) *StaticMap {
	s.id = id
	return s
}

// WithValue registers name at coordinates with value, returning s for
// chaining. Every entry registered this way carries a non-nil payload;
// WithValue cannot register an absent (nil) value.
func (s *StaticMap) WithValue(name string, coordinates spi.Coordinates, value string, authoritative bool) *StaticMap {
	s.entries[name] = append(s.entries[name], entry{
		coordinates:   coordinates.Clone(),
		value:         &value,
		authoritative: authoritative,
	})
	return s
}

func (s *StaticMap) ID() spi.ProviderID { return s.id }

// Lookup returns every registered entry for name as a single synthetic
// Value per call is not possible (a Provider returns at most one Value);
// instead StaticMap relies on the caller having registered entries keyed
// to distinct coordinate sets and returns the one that is an exact match
// to callerCoordinates if present, else the most specific subset. This
// mirrors how a real multi-row backing store (a database table keyed by
// coordinates) would be queried, without needing the resolver's own
// ranking logic duplicated here — StaticMap intentionally returns only
// one candidate per call, per spec.md's Provider contract.
func (s *StaticMap) Lookup(ctx context.Context, callerCoordinates spi.Coordinates, name string) (*spi.Value, error) {
	candidates, ok := s.entries[name]
	if !ok {
		return nil, nil
	}

	var best *entry
	bestSpec := -1
	for i := range candidates {
		c := candidates[i]
		if !c.coordinates.Subset(callerCoordinates) {
			continue
		}
		if c.coordinates.Len() > bestSpec {
			best = &candidates[i]
			bestSpec = c.coordinates.Len()
		}
	}
	if best == nil {
		return nil, nil
	}

	v := spi.NewValue(s.id, best.coordinates, name, best.value, best.authoritative)
	return &v, nil
}
