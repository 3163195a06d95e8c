package coordinate

import (
	"context"
	"fmt"

	"github.com/latticeconf/coordinate/spi"
)

// ResolveAs is the typed counterpart to Resolver.Resolve: it adapts a
// Converter[T] into the registry's type-erased form and asserts the
// result back to T. Use it when you have a concrete Converter[T] in hand
// rather than a TypeDescriptor to look up in the registry.
func ResolveAs[T any](ctx context.Context, r *Resolver, callerCoordinates spi.Coordinates, name string, converter spi.Converter[T], defaultValue *string) (T, error) {
	var zero T
	result, err := r.Resolve(ctx, callerCoordinates, name, spi.AsAnyConverter(converter), defaultValue)
	if err != nil {
		return zero, err
	}
	if result == nil {
		return zero, nil
	}
	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("coordinate: converter for %q returned %T, not %T", name, result, zero)
	}
	return typed, nil
}

// GetValue is the process-coordinates, registered-string-converter,
// no-default convenience overload named by spec.md §6.
func (r *Resolver) GetValue(ctx context.Context, name string) (string, error) {
	return r.GetValueWithDefault(ctx, name, nil)
}

// GetValueWithDefault is GetValue with an explicit fallback default.
func (r *Resolver) GetValueWithDefault(ctx context.Context, name string, defaultValue *string) (string, error) {
	return r.GetValueAt(ctx, r.GetConfigurationCoordinates(), name, defaultValue)
}

// GetValueAt resolves name using callerCoordinates and the converter
// registered under spi.TypeString.
func (r *Resolver) GetValueAt(ctx context.Context, callerCoordinates spi.Coordinates, name string, defaultValue *string) (string, error) {
	return r.GetValueAtType(ctx, callerCoordinates, name, spi.TypeString, defaultValue)
}

// GetValueAtType resolves name via the converter registered under t,
// failing with NoSuchConverterError if none is registered. The converted
// result is asserted to string; register a string-producing Converter
// under a custom TypeDescriptor to use non-built-in string overloads, or
// use ResolveAs/GetValueConverter for other result types.
func (r *Resolver) GetValueAtType(ctx context.Context, callerCoordinates spi.Coordinates, name string, t spi.TypeDescriptor, defaultValue *string) (string, error) {
	converter, ok := r.converters.Lookup(t)
	if !ok {
		return "", &NoSuchConverterError{Type: t}
	}
	result, err := r.Resolve(ctx, callerCoordinates, name, converter, defaultValue)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", nil
	}
	s, ok := result.(string)
	if !ok {
		return "", fmt.Errorf("coordinate: converter for type %v returned %T, not string", t, result)
	}
	return s, nil
}

// GetValueConverter resolves name using an explicit Converter, bypassing
// the registry entirely, per spec.md §6's
// "getValue(callerCoordinates, name, explicitConverter, default)" overload.
func (r *Resolver) GetValueConverter(ctx context.Context, callerCoordinates spi.Coordinates, name string, converter spi.AnyConverter, defaultValue *string) (any, error) {
	return r.Resolve(ctx, callerCoordinates, name, converter, defaultValue)
}
