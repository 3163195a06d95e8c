package coordinate

import (
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/latticeconf/coordinate/spi"
)

// Logger wraps zerolog.Logger with the diagnostic events this package
// emits. The zero value discards everything, matching spec.md's default
// malformed-value behavior ("discard"); construct a non-discarding one
// with NewLogger to escalate malformed values to structured logs.
type Logger struct {
	zlog zerolog.Logger
}

// NewLogger builds a Logger writing to w at the given level. Pass
// io.Discard and any level to get a Logger equivalent to the zero value.
func NewLogger(w io.Writer, level zerolog.Level) Logger {
	return Logger{zlog: zerolog.New(w).Level(level).With().Timestamp().Logger()}
}

// NopLogger returns a Logger that discards everything, the explicit
// spelling of the zero value.
func NopLogger() Logger {
	return Logger{zlog: zerolog.New(io.Discard)}
}

// malformed logs one structured event for a value rejected during
// classification (spec.md §4.5.1 step 3). Each event carries a
// correlation ID so a sequence of malformed values from one resolve call
// can be grepped together.
func (l Logger) malformed(correlationID uuid.UUID, callerCoordinates spi.Coordinates, name string, err *MalformedValueError) {
	l.zlog.Warn().
		Str("correlation_id", correlationID.String()).
		Str("requested_name", name).
		Interface("caller_coordinates", callerCoordinates).
		Str("source_provider", string(err.Value.Source())).
		Str("value_name", err.Value.Name()).
		Interface("value_coordinates", err.Value.Coordinates()).
		Str("reason", err.Reason).
		Msg("malformed configuration value discarded")
}

// ambiguous logs the arbitration failure immediately before it is
// returned to the caller as an AmbiguousConfigurationValuesError, so a
// deployment running with StrictMalformed off (the default) still gets a
// durable record of unresolved ambiguity.
func (l Logger) ambiguous(correlationID uuid.UUID, err *AmbiguousConfigurationValuesError) {
	l.zlog.Error().
		Str("correlation_id", correlationID.String()).
		Str("name", err.Name).
		Interface("caller_coordinates", err.CallerCoordinates).
		Int("candidate_count", len(err.Values)).
		Msg("configuration value ambiguous after arbitration")
}
