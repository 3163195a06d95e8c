package providers

import (
	"context"
	"os"
	"strings"

	"github.com/latticeconf/coordinate/spi"
)

// Environment is a Provider that answers from process environment
// variables, using the same path-to-env-var transform as the teacher's
// config.Builder (dots to underscores, upper-cased, optionally prefixed).
// Because an environment variable carries no coordinates of its own, it
// only ever answers for the empty coordinate set: callers with non-empty
// coordinates requesting the same name still see this as a candidate
// (empty is a subset of everything), available as a last-resort fallback
// beneath anything coordinate-scoped.
type Environment struct {
	id     spi.ProviderID
	prefix string
}

// NewEnvironment returns an Environment provider, prefixing every
// transformed env var name with prefix (no prefix applied if empty).
func NewEnvironment(prefix string) *Environment {
	return &Environment{id: spi.ProviderID("environment"), prefix: prefix}
}

func (e *Environment) ID() spi.ProviderID { return e.id }

func (e *Environment) Lookup(ctx context.Context, callerCoordinates spi.Coordinates, name string) (*spi.Value, error) {
	envVar := e.transform(name)
	raw, ok := os.LookupEnv(envVar)
	if !ok {
		return nil, nil
	}
	v := spi.NewValue(e.id, spi.Coordinates{}, name, &raw, false)
	return &v, nil
}

func (e *Environment) transform(name string) string {
	env := strings.ToUpper(strings.ReplaceAll(name, ".", "_"))
	if e.prefix != "" {
		return e.prefix + env
	}
	return env
}
