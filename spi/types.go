package spi

// WellKnownType is a TypeDescriptor for one of the converter types the
// converters subpackage ships out of the box. Declaring these centrally
// (rather than letting each converter invent its own descriptor value)
// lets core's string-typed convenience overloads (Resolver.GetValue and
// friends) and the providers/converters subpackages agree on identity
// without core importing converters, which would be a cycle.
type WellKnownType string

const (
	TypeString          WellKnownType = "coordinate/string"
	TypeBool            WellKnownType = "coordinate/bool"
	TypeInt64           WellKnownType = "coordinate/int64"
	TypeFloat64         WellKnownType = "coordinate/float64"
	TypeDuration        WellKnownType = "coordinate/duration"
	TypeFile            WellKnownType = "coordinate/file"
	TypeStringSlice     WellKnownType = "coordinate/[]string"
	TypeMapStringString WellKnownType = "coordinate/map[string]string"
)
