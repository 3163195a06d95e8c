package spi

import "context"

// Provider is a source of configuration values keyed by name and shaped by
// caller coordinates. Implementations MUST NOT mutate callerCoordinates.
//
// A Provider may itself invoke the resolver it is registered with (for
// example to read a derived coordinate before answering) using the same
// context it was called with; the reentrancy guard carried in that
// context prevents the provider from being re-entered on the same logical
// call stack. A Provider is free to return (nil, nil) meaning "I have no
// opinion"; returning an error aborts the resolution call in progress.
type Provider interface {
	ID() ProviderID
	Lookup(ctx context.Context, callerCoordinates Coordinates, name string) (*Value, error)
}
