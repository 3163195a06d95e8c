package coordinate

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/latticeconf/coordinate/spi"
)

func TestLoggerMalformedWritesStructuredEvent(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, zerolog.WarnLevel)

	s := "bad"
	v := spi.NewValue("provider-1", spi.Coordinates{}, "db.url", &s, false)
	err := &MalformedValueError{Value: v, Reason: "disjoint keys"}

	l.malformed(uuid.New(), spi.Coordinates{"region": "west"}, "db.url", err)

	out := buf.String()
	assert.Contains(t, out, "malformed configuration value discarded")
	assert.Contains(t, out, "disjoint keys")
}

func TestNopLoggerDiscardsEverything(t *testing.T) {
	l := NopLogger()
	s := "bad"
	v := spi.NewValue("provider-1", spi.Coordinates{}, "db.url", &s, false)
	assert.NotPanics(t, func() {
		l.malformed(uuid.New(), spi.Coordinates{}, "db.url", &MalformedValueError{Value: v, Reason: "x"})
	})
}
