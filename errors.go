package coordinate

import (
	"errors"
	"fmt"

	"github.com/latticeconf/coordinate/spi"
)

// ErrNullArgument is returned (wrapped with detail) when a required
// argument to GetValue is nil: name or converter. Mirrors spec.md's
// NullArgumentError.
var ErrNullArgument = errors.New("coordinate: required argument is nil")

// ErrNotInitialized is returned when Resolve is invoked on a Resolver that
// has not finished Bootstrap. Mirrors spec.md's IllegalStateError.
var ErrNotInitialized = errors.New("coordinate: resolver used before bootstrap completed")

// NoSuchConverterError is re-exported from spi for caller convenience; see
// spi.NoSuchConverterError.
type NoSuchConverterError = spi.NoSuchConverterError

// AmbiguousConfigurationValuesError is returned when ranking leaves a tie
// that no arbiter in the chain resolved. It carries the full candidate set
// for diagnostics, per spec.md §7.
type AmbiguousConfigurationValuesError struct {
	CallerCoordinates spi.Coordinates
	Name              string
	Values            []spi.Value
}

func (e *AmbiguousConfigurationValuesError) Error() string {
	return fmt.Sprintf("coordinate: ambiguous configuration value for %q at %v: %d candidates and no arbiter resolved them",
		e.Name, e.CallerCoordinates, len(e.Values))
}

// MalformedValueError describes one malformed ConfigurationValue observed
// during a resolve call. By default it is only passed to the resolver's
// malformed-value sink (see Resolver.handleMalformed and Logger); with
// strict malformed handling enabled, the error for the first malformed
// value is also returned to the caller.
type MalformedValueError struct {
	Value  spi.Value
	Reason string
}

func (e *MalformedValueError) Error() string {
	return fmt.Sprintf("coordinate: malformed value from provider %q for %q: %s", e.Value.Source(), e.Value.Name(), e.Reason)
}
