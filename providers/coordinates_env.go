package providers

import (
	"context"
	"os"

	"github.com/latticeconf/coordinate/spi"
)

// CoordinatesEnv is a narrow Provider that answers only
// configurationCoordinates lookups (see coordinate.ConfigurationCoordinatesName)
// from a single named environment variable, formatted as the brace-
// delimited, comma-separated key=value syntax spec.md's S5 scenario
// documents (e.g. "{region=west,environment=test}"; the bare
// "region=west,environment=test" form is also accepted by
// converters.MapStringString). Register it ahead of any file- or
// map-backed provider so an operator can override a deployment's
// coordinates without touching its config file.
type CoordinatesEnv struct {
	id     spi.ProviderID
	envVar string
	name   string
}

// NewCoordinatesEnv returns a CoordinatesEnv reading envVar, answering
// only for the given configuration name (pass
// coordinate.ConfigurationCoordinatesName in the common case).
func NewCoordinatesEnv(envVar, name string) *CoordinatesEnv {
	return &CoordinatesEnv{id: spi.ProviderID("coordinates-env"), envVar: envVar, name: name}
}

func (p *CoordinatesEnv) ID() spi.ProviderID { return p.id }

func (p *CoordinatesEnv) Lookup(ctx context.Context, callerCoordinates spi.Coordinates, name string) (*spi.Value, error) {
	if name != p.name {
		return nil, nil
	}
	raw, ok := os.LookupEnv(p.envVar)
	if !ok {
		return nil, nil
	}
	v := spi.NewValue(p.id, spi.Coordinates{}, name, &raw, true)
	return &v, nil
}
