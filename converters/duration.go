package converters

import (
	"fmt"
	"time"

	"github.com/latticeconf/coordinate/spi"
)

// Duration parses raw with time.ParseDuration, grounded on
// StringToDurationConverter. Nil converts to 0.
type Duration struct{}

func (Duration) Type() spi.TypeDescriptor { return spi.TypeDuration }

func (Duration) Convert(raw *string) (time.Duration, error) {
	if raw == nil {
		return 0, nil
	}
	d, err := time.ParseDuration(*raw)
	if err != nil {
		return 0, fmt.Errorf("coordinate/converters: duration: %w", err)
	}
	return d, nil
}
