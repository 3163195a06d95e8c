package converters

import (
	"fmt"
	"strings"

	"github.com/latticeconf/coordinate/spi"
)

// StringSlice splits raw on commas, trimming whitespace and dropping
// empty elements, grounded on StringToStringCollectionConverter. Nil
// converts to a nil slice.
type StringSlice struct{}

func (StringSlice) Type() spi.TypeDescriptor { return spi.TypeStringSlice }

func (StringSlice) Convert(raw *string) ([]string, error) {
	if raw == nil {
		return nil, nil
	}
	parts := strings.Split(*raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// MapStringString parses raw as brace-delimited, comma-separated
// key=value pairs, the "{a=b,c=d}" syntax spec.md's S5 scenario requires
// of the configurationCoordinates bootstrap value. A leading "{" and
// trailing "}" are stripped if present; their absence is tolerated so the
// converter also accepts a bare "a=b,c=d" body. Nil converts to an empty,
// non-nil map.
type MapStringString struct{}

func (MapStringString) Type() spi.TypeDescriptor { return spi.TypeMapStringString }

func (MapStringString) Convert(raw *string) (spi.Coordinates, error) {
	out := spi.Coordinates{}
	if raw == nil {
		return out, nil
	}
	trimmed := strings.TrimSpace(*raw)
	trimmed = strings.TrimPrefix(trimmed, "{")
	trimmed = strings.TrimSuffix(trimmed, "}")
	trimmed = strings.TrimSpace(trimmed)
	if trimmed == "" {
		return out, nil
	}
	for _, pair := range strings.Split(trimmed, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("coordinate/converters: map[string]string: malformed pair %q, want key=value", pair)
		}
		out[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return out, nil
}
