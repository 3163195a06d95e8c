package spi

import "context"

// Arbiter resolves an ambiguous candidate set left over after ranking, or
// defers to the next arbiter in the chain. Implementations MUST treat
// their arguments as read-only.
//
// Returning (nil, nil) means "I defer". Returning a non-nil error aborts
// arbitration (and the enclosing resolve call) immediately; the error
// propagates unchanged.
type Arbiter interface {
	Arbitrate(ctx context.Context, callerCoordinates Coordinates, name string, candidates []Value) (*Value, error)
}
