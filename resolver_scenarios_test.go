package coordinate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticeconf/coordinate/arbiters"
	"github.com/latticeconf/coordinate/converters"
	"github.com/latticeconf/coordinate/providers"
	"github.com/latticeconf/coordinate/spi"
)

// These are end-to-end tests: the first six are the seed scenarios S1-S6,
// and the last shows an Expression arbiter settling a tie that ranking
// leaves.

func TestScenarioExactMatchViaEnvironment(t *testing.T) {
	t.Setenv("JAVA_VENDOR", "Eclipse Adoptium")

	env := providers.NewEnvironment("")
	r := newTestResolver(t, func(b *Builder) { b.WithProvider(env) })

	v, err := r.GetValue(context.Background(), "JAVA_VENDOR")
	require.NoError(t, err)
	assert.Equal(t, "Eclipse Adoptium", v)
}

func TestScenarioSubsetMatch(t *testing.T) {
	sm := providers.NewStaticMap().WithValue("db.url", spi.Coordinates{"environment": "test"}, "jdbc:test", false)
	r := newTestResolver(t, func(b *Builder) { b.WithProvider(sm) })

	v, err := r.GetValueAt(context.Background(), spi.Coordinates{"environment": "test"}, "db.url", nil)
	require.NoError(t, err)
	assert.Equal(t, "jdbc:test", v)
}

func TestScenarioBestSubsetAmongMultiple(t *testing.T) {
	sm := providers.NewStaticMap().
		WithValue("db.url", spi.Coordinates{"environment": "test"}, "jdbc:test", false).
		WithValue("db.url", spi.Coordinates{"phase": "experimental"}, "jdbc:experimental", false).
		WithValue("db.url", spi.Coordinates{"phase": "experimental", "environment": "test"}, "jdbc:experimental:test", false)
	r := newTestResolver(t, func(b *Builder) { b.WithProvider(sm) })

	v, err := r.GetValueAt(context.Background(), spi.Coordinates{"environment": "test", "phase": "experimental"}, "db.url", nil)
	require.NoError(t, err)
	assert.Equal(t, "jdbc:experimental:test", v)
}

func TestScenarioAmbiguityError(t *testing.T) {
	westOnly := providers.NewStaticMap().WithID("west").WithValue("db.url", spi.Coordinates{"region": "west"}, "jdbc:west", false)
	experimentalOnly := providers.NewStaticMap().WithID("experimental").WithValue("db.url", spi.Coordinates{"phase": "experimental"}, "jdbc:experimental", false)

	r := newTestResolver(t, func(b *Builder) {
		b.WithProvider(westOnly)
		b.WithProvider(experimentalOnly)
	})

	_, err := r.GetValueAt(context.Background(), spi.Coordinates{"region": "west", "phase": "experimental"}, "db.url", nil)
	require.Error(t, err)
	var ambiguous *AmbiguousConfigurationValuesError
	require.ErrorAs(t, err, &ambiguous)
	assert.Len(t, ambiguous.Values, 2)
}

func TestScenarioBootstrapCoordinatesAcquisition(t *testing.T) {
	t.Setenv("APP_COORDINATES", "{a=b,c=d}")

	coordProvider := providers.NewCoordinatesEnv("APP_COORDINATES", ConfigurationCoordinatesName)
	b := NewBuilder()
	WithConverter[string](b, converters.String{})
	WithConverter[spi.Coordinates](b, converters.MapStringString{})
	b.WithProvider(coordProvider)

	r, err := b.Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, spi.Coordinates{"a": "b", "c": "d"}, r.GetConfigurationCoordinates())
}

func TestScenarioAuthoritativeArbitrationPath(t *testing.T) {
	nonAuth := providers.NewStaticMap().WithID("non-authoritative").WithValue("feature.flag", spi.Coordinates{"region": "west"}, "off", false)
	auth := providers.NewStaticMap().WithID("authoritative").WithValue("feature.flag", spi.Coordinates{"region": "west"}, "on", true)

	r := newTestResolver(t, func(b *Builder) {
		b.WithProvider(nonAuth)
		b.WithProvider(auth)
		// No arbiters registered: the authoritative rule alone must decide.
	})

	v, err := r.GetValueAt(context.Background(), spi.Coordinates{"region": "west"}, "feature.flag", nil)
	require.NoError(t, err)
	assert.Equal(t, "on", v)
}

func TestScenarioExpressionArbiterBreaksTrueTie(t *testing.T) {
	providerA := providers.NewStaticMap().WithID("provider-a").WithValue("feature.flag", spi.Coordinates{"region": "west"}, "a", false)
	providerB := providers.NewStaticMap().WithID("provider-b").WithValue("feature.flag", spi.Coordinates{"region": "west"}, "b", false)

	expr, err := arbiters.NewExpression(`source == "provider-b"`)
	require.NoError(t, err)

	r := newTestResolver(t, func(b *Builder) {
		b.WithProvider(providerA)
		b.WithProvider(providerB)
		b.WithArbiter(expr)
	})

	v, err := r.GetValueAt(context.Background(), spi.Coordinates{"region": "west"}, "feature.flag", nil)
	require.NoError(t, err)
	assert.Equal(t, "b", v)
}
