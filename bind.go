package coordinate

import (
	"fmt"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"

	"github.com/latticeconf/coordinate/spi"
)

// BindCoordinates decodes a Coordinates map into a struct pointer, the
// inverse of the map-string-string converter used when bootstrapping
// ConfigurationCoordinatesName: a caller who resolved raw coordinates as a
// string-keyed map and wants a typed view (e.g. a Region/Environment
// struct) can decode it with one call instead of hand-rolling key lookups.
//
// Field names are matched case-insensitively to coordinate keys unless
// overridden with a `coord:"..."` struct tag. Weakly-typed input is
// enabled, matching config.Config's own decode behavior, since coordinate
// values are always strings and scalar struct fields are the common case.
func BindCoordinates(coordinates spi.Coordinates, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("coordinate: BindCoordinates target must be a non-nil pointer, got %T", target)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "coord",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToTimeHookFunc(time.RFC3339),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("coordinate: BindCoordinates decoder: %w", err)
	}

	raw := make(map[string]any, coordinates.Len())
	for k, v := range coordinates {
		raw[k] = v
	}

	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("coordinate: BindCoordinates decode: %w", err)
	}
	return nil
}
