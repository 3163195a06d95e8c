package spi

import "fmt"

// TypeDescriptor is an opaque, equality-comparable token a Converter
// publishes to identify the Go type it produces. The resolver only ever
// uses it as a map key — it never inspects it reflectively. A package
// registering a converter typically declares a small named type or string
// constant as its descriptor (see TypeString, etc., in types.go).
type TypeDescriptor interface{}

// Converter converts a raw configuration string (nil meaning "no value")
// into T. raw is nil both when the caller explicitly stored no payload and
// when the default-value argument to a resolve call was nil; Converter
// implementations decide what "no value" means for T.
type Converter[T any] interface {
	Type() TypeDescriptor
	Convert(raw *string) (T, error)
}

// AnyConverter is the type-erased form of Converter[T], used internally by
// Registry so converters for different T can share one map. Use
// AsAnyConverter to adapt a typed Converter[T].
type AnyConverter interface {
	Type() TypeDescriptor
	ConvertAny(raw *string) (any, error)
}

type erasedConverter[T any] struct {
	inner Converter[T]
}

func (e erasedConverter[T]) Type() TypeDescriptor { return e.inner.Type() }

func (e erasedConverter[T]) ConvertAny(raw *string) (any, error) {
	return e.inner.Convert(raw)
}

// AsAnyConverter adapts a typed Converter[T] into the registry's
// type-erased form.
func AsAnyConverter[T any](c Converter[T]) AnyConverter {
	return erasedConverter[T]{inner: c}
}

// Registry is the immutable-after-build mapping from TypeDescriptor to
// Converter. At most one converter is kept per type; per spec.md §4.3 and
// the resolved Open Question in DESIGN.md, the FIRST registration for a
// given TypeDescriptor wins and later ones are ignored.
type Registry struct {
	byType map[TypeDescriptor]AnyConverter
	order  []TypeDescriptor
}

// NewRegistry builds a Registry from converters in the order supplied.
// Duplicate TypeDescriptors after the first are dropped silently — this
// is the documented, tested "first wins" resolution of the spec's Open
// Question on duplicate converter registration.
func NewRegistry(converters ...AnyConverter) *Registry {
	r := &Registry{byType: make(map[TypeDescriptor]AnyConverter, len(converters))}
	for _, c := range converters {
		if c == nil {
			continue
		}
		t := c.Type()
		if _, exists := r.byType[t]; exists {
			continue
		}
		r.byType[t] = c
		r.order = append(r.order, t)
	}
	return r
}

// Lookup returns the converter registered for t, or (nil, false).
func (r *Registry) Lookup(t TypeDescriptor) (AnyConverter, bool) {
	if r == nil {
		return nil, false
	}
	c, ok := r.byType[t]
	return c, ok
}

// Types returns the registered TypeDescriptors in registration order.
func (r *Registry) Types() []TypeDescriptor {
	if r == nil {
		return nil
	}
	out := make([]TypeDescriptor, len(r.order))
	copy(out, r.order)
	return out
}

// NoSuchConverterError is returned by type-descriptor based resolution
// when no converter is registered for the requested type.
type NoSuchConverterError struct {
	Type TypeDescriptor
}

func (e *NoSuchConverterError) Error() string {
	return fmt.Sprintf("coordinate: no converter registered for type %v", e.Type)
}
