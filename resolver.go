// Package coordinate implements a coordinate-aware configuration
// resolution engine: given a logical "location" (coordinates describing
// the caller's deployment context) and a property name, it selects one
// value from a federation of independent Provider implementations,
// reconciling conflicting answers by specificity, authority and, as a
// last resort, an arbiter chain.
//
// The core (this package) never talks to the outside world — it has no
// opinion about where providers, converters or arbiters come from.
// Concrete collaborators live in the providers, converters and arbiters
// subpackages; Bootstrap/Builder in bootstrap.go wires them together.
package coordinate

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/latticeconf/coordinate/internal/guard"
	"github.com/latticeconf/coordinate/spi"
)

// ConfigurationCoordinatesName is the reserved property name whose value,
// resolved once at bootstrap against empty caller coordinates, becomes
// the process-wide configuration coordinates returned by
// Resolver.GetConfigurationCoordinates.
const ConfigurationCoordinatesName = "configurationCoordinates"

// Resolver is the orchestrator described by spec.md §4.5: it iterates
// providers, classifies and ranks the ConfigurationValues they return,
// invokes arbitration on unresolved ties, and dispatches the winner (or
// the default) to a Converter. Build one with Builder; the zero value is
// not usable (Resolve on it returns ErrNotInitialized).
type Resolver struct {
	providers   []spi.Provider
	converters  *spi.Registry
	arbiters    []spi.Arbiter
	logger      Logger
	strict      bool
	initialized bool

	coordinates spi.Coordinates
}

// GetConfigurationCoordinates returns the process-wide coordinates
// resolved once during Bootstrap. The returned map is a defensive clone;
// callers may not mutate the Resolver's copy.
func (r *Resolver) GetConfigurationCoordinates() spi.Coordinates {
	return r.coordinates.Clone()
}

// GetConversionTypes returns the set of TypeDescriptors for which a
// converter is registered, in registration order.
func (r *Resolver) GetConversionTypes() []spi.TypeDescriptor {
	return r.converters.Types()
}

// ConversionTypesRegistered is a stable-order variant of GetConversionTypes:
// registration order depends on how a Builder's providers/converters were
// assembled (explicit WithConverter calls, a Discoverer, or both in some
// build-specific mix), which makes it a poor fit for output a caller wants
// to diff or golden-test across runs. ConversionTypesRegistered instead
// sorts by each TypeDescriptor's string form, for deterministic logging and
// cmd/coordctl's --list-types.
func (r *Resolver) ConversionTypesRegistered() []spi.TypeDescriptor {
	types := r.converters.Types()
	sort.SliceStable(types, func(i, j int) bool {
		return fmt.Sprintf("%v", types[i]) < fmt.Sprintf("%v", types[j])
	})
	return types
}

// Resolve is the core algorithm (spec.md §4.5). callerCoordinates nil is
// treated as empty. name and converter must be non-nil.
//
// Resolve returns the converted winning value, or converter applied to
// defaultValue if no provider produced a usable candidate.
func (r *Resolver) Resolve(ctx context.Context, callerCoordinates spi.Coordinates, name string, converter spi.AnyConverter, defaultValue *string) (any, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name", ErrNullArgument)
	}
	if converter == nil {
		return nil, fmt.Errorf("%w: converter", ErrNullArgument)
	}
	if !r.initialized {
		return nil, ErrNotInitialized
	}
	if callerCoordinates == nil {
		callerCoordinates = spi.Coordinates{}
	}

	ctx = guard.Seed(ctx)
	correlationID := uuid.New()

	selected, bad, tieQueue, err := r.collect(ctx, callerCoordinates, name)
	if err != nil {
		return nil, err
	}

	if len(bad) > 0 {
		if r.strict {
			return nil, r.escalateMalformed(correlationID, callerCoordinates, name, bad)
		}
		r.handleMalformed(correlationID, callerCoordinates, name, bad)
	}

	if selected == nil && len(tieQueue) > 0 {
		selected, err = r.rank(ctx, callerCoordinates, name, tieQueue)
		if err != nil {
			if ambig, ok := err.(*AmbiguousConfigurationValuesError); ok {
				r.logger.ambiguous(correlationID, ambig)
			}
			return nil, err
		}
	}

	if selected == nil {
		return converter.ConvertAny(defaultValue)
	}
	v := selected.Value()
	return converter.ConvertAny(v)
}

// collect implements spec.md §4.5.1: the single pass over all providers
// that classifies each returned value as malformed, an exact match, or a
// subset-match tie candidate.
func (r *Resolver) collect(ctx context.Context, callerCoordinates spi.Coordinates, name string) (selected *spi.Value, bad []spi.Value, tieQueue []spi.Value, err error) {
	// A nested Resolve issued by a provider shares the outer call's guard
	// set, in which that provider is still active; only a call that starts
	// with an empty set can expect it to be empty again after its pass.
	topLevel := guard.Empty(ctx)

	for _, p := range r.providers {
		id := p.ID()

		var value *spi.Value
		if guard.Active(ctx, id) {
			value = nil
		} else {
			guard.Activate(ctx, id)
			value, err = func() (*spi.Value, error) {
				defer guard.Deactivate(ctx, id)
				return p.Lookup(ctx, callerCoordinates, name)
			}()
			if err != nil {
				return nil, nil, nil, err
			}
		}

		if value == nil {
			continue
		}
		v := *value

		callerLen := callerCoordinates.Len()
		valueLen := v.Coordinates().Len()

		switch {
		case v.Name() != name:
			bad = append(bad, v)

		case callerLen < valueLen:
			// A value cannot be more specific than the caller.
			bad = append(bad, v)

		case callerCoordinates.Equal(v.Coordinates()):
			// Exact match.
			if selected == nil {
				if len(tieQueue) == 0 {
					selected = &v
				} else {
					tieQueue = append(tieQueue, v)
				}
			} else {
				tieQueue = append(tieQueue, *selected, v)
				selected = nil
			}

		case callerLen == valueLen:
			// Same arity, but Equal above already said they differ:
			// disjoint keys.
			bad = append(bad, v)

		case !v.Coordinates().Subset(callerCoordinates):
			bad = append(bad, v)

		case selected != nil:
			// Already have an exact-match candidate; keep scanning only
			// to catch a duplicate exact match, never displace it with a
			// lower-specificity value.

		default:
			tieQueue = append(tieQueue, v)
		}
	}

	if topLevel && !guard.Empty(ctx) {
		panic("coordinate: reentrancy guard non-empty after collection pass")
	}

	return selected, bad, tieQueue, nil
}

// rank implements spec.md §4.5.3: drain the tie queue in descending
// specificity order, tracking the current candidate, the running
// arbitration list, and the highest specificity seen so far. The
// "break when we already have a strict leader and the arbitration list is
// empty" rule (spec.md §9) is preserved exactly: once a later, strictly
// lower-specificity value arrives and nothing is queued for arbitration,
// no further tie-queue entry can displace the existing winner.
func (r *Resolver) rank(ctx context.Context, callerCoordinates spi.Coordinates, name string, tieQueue []spi.Value) (*spi.Value, error) {
	sort.SliceStable(tieQueue, func(i, j int) bool {
		return tieQueue[i].EffectiveSpecificity() > tieQueue[j].EffectiveSpecificity()
	})

	var selected *spi.Value
	var arbitrationList []spi.Value
	topSpec := -1

drain:
	for i := range tieQueue {
		value := tieQueue[i]
		s := value.EffectiveSpecificity()

		switch {
		case topSpec < 0 || s < topSpec:
			switch {
			case selected == nil:
				selected = &value
				topSpec = s
			case len(arbitrationList) == 0:
				// We already have a strict, unique leader: nothing at a
				// strictly lower specificity can displace it.
				break drain
			default:
				arbitrationList = append(arbitrationList, value)
			}

		case s == topSpec:
			// A third (or later) candidate tying the same top rank arrives
			// after a prior tie already emptied selected into
			// arbitrationList; fold it in directly rather than consulting
			// an authority rule against a nil selected.
			if selected == nil {
				arbitrationList = append(arbitrationList, value)
				break
			}
			switch {
			case value.Authoritative() && selected.Authoritative():
				arbitrationList = append(arbitrationList, *selected, value)
				selected = nil
			case value.Authoritative():
				selected = &value
			case selected.Authoritative():
				// value is not authoritative; selected is. Drop value.
			default:
				arbitrationList = append(arbitrationList, *selected, value)
				selected = nil
			}
		}
	}

	if len(arbitrationList) == 0 {
		return selected, nil
	}
	return r.performArbitration(ctx, callerCoordinates, name, arbitrationList)
}

func (r *Resolver) performArbitration(ctx context.Context, callerCoordinates spi.Coordinates, name string, values []spi.Value) (*spi.Value, error) {
	for _, a := range r.arbiters {
		result, err := a.Arbitrate(ctx, callerCoordinates, name, values)
		if err != nil {
			return nil, err
		}
		if result != nil {
			return result, nil
		}
	}
	return nil, &AmbiguousConfigurationValuesError{
		CallerCoordinates: callerCoordinates,
		Name:              name,
		Values:            values,
	}
}

// handleMalformed implements the default, overridable malformed-value sink
// from spec.md §4.5.2/§7: discard, logging one structured diagnostic event
// per bad value. See BootstrapOptions.StrictMalformed (or
// Builder.WithStrictMalformed, its fluent equivalent) to escalate instead.
func (r *Resolver) handleMalformed(correlationID uuid.UUID, callerCoordinates spi.Coordinates, name string, bad []spi.Value) {
	for _, v := range bad {
		reason := classifyMalformed(callerCoordinates, name, v)
		err := &MalformedValueError{Value: v, Reason: reason}
		r.logger.malformed(correlationID, callerCoordinates, name, err)
	}
}

// escalateMalformed is the StrictMalformed variant: it logs the same
// events handleMalformed would and then aborts the resolve call, returning
// the first malformed value encountered as an error.
func (r *Resolver) escalateMalformed(correlationID uuid.UUID, callerCoordinates spi.Coordinates, name string, bad []spi.Value) error {
	r.handleMalformed(correlationID, callerCoordinates, name, bad)
	reason := classifyMalformed(callerCoordinates, name, bad[0])
	return &MalformedValueError{Value: bad[0], Reason: reason}
}

func classifyMalformed(callerCoordinates spi.Coordinates, name string, v spi.Value) string {
	switch {
	case v.Name() != name:
		return "value name does not match requested name"
	case v.Coordinates().Len() > callerCoordinates.Len():
		return "value is more specific than caller coordinates"
	case v.Coordinates().Len() == callerCoordinates.Len():
		return "same arity as caller coordinates but disjoint keys"
	default:
		return "value coordinates are not a subset of caller coordinates"
	}
}
