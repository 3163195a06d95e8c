// Package converters holds the built-in Converter[T] implementations:
// string, bool, the numeric types, time.Duration, file paths (as
// strings), and the two collection shapes (string slice, string-to-string
// map) spec.md's worked examples rely on. A Builder registers none of
// them on its own; callers register the ones they need.
//
// Each converter is grounded on the corresponding
// org.microbean.configuration.spi.converter.StringToXConverter from the
// original implementation: a nil raw value converts to the Go zero value
// unless noted otherwise, and a non-nil raw value that fails to parse
// returns a wrapped error rather than panicking.
package converters

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/latticeconf/coordinate/spi"
)

// String is the identity converter: it returns raw as-is, or "" for a nil
// raw value.
type String struct{}

func (String) Type() spi.TypeDescriptor { return spi.TypeString }

func (String) Convert(raw *string) (string, error) {
	if raw == nil {
		return "", nil
	}
	return *raw, nil
}

// Bool parses raw with strconv.ParseBool; nil converts to false.
type Bool struct{}

func (Bool) Type() spi.TypeDescriptor { return spi.TypeBool }

func (Bool) Convert(raw *string) (bool, error) {
	if raw == nil {
		return false, nil
	}
	v, err := strconv.ParseBool(*raw)
	if err != nil {
		return false, fmt.Errorf("coordinate/converters: bool: %w", err)
	}
	return v, nil
}

// Int64 parses raw as a base-10 signed integer; nil converts to 0.
type Int64 struct{}

func (Int64) Type() spi.TypeDescriptor { return spi.TypeInt64 }

func (Int64) Convert(raw *string) (int64, error) {
	if raw == nil {
		return 0, nil
	}
	v, err := strconv.ParseInt(strings.TrimSpace(*raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("coordinate/converters: int64: %w", err)
	}
	return v, nil
}

// Float64 parses raw with strconv.ParseFloat; nil converts to 0.
type Float64 struct{}

func (Float64) Type() spi.TypeDescriptor { return spi.TypeFloat64 }

func (Float64) Convert(raw *string) (float64, error) {
	if raw == nil {
		return 0, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(*raw), 64)
	if err != nil {
		return 0, fmt.Errorf("coordinate/converters: float64: %w", err)
	}
	return v, nil
}
