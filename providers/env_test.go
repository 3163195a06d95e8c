package providers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticeconf/coordinate/spi"
)

func TestEnvironmentLookup(t *testing.T) {
	t.Setenv("MYAPP_DB_HOST", "db.internal")

	p := NewEnvironment("MYAPP_")
	v, err := p.Lookup(context.Background(), spi.Coordinates{"region": "west"}, "db.host")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, "db.internal", *v.Value())
	assert.Empty(t, v.Coordinates())
	assert.False(t, v.Authoritative())
}

func TestEnvironmentLookupMiss(t *testing.T) {
	p := NewEnvironment("MYAPP_")
	v, err := p.Lookup(context.Background(), spi.Coordinates{}, "nonexistent.key")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestCoordinatesEnvLookup(t *testing.T) {
	t.Setenv("APP_COORDINATES", "region=west,environment=test")

	p := NewCoordinatesEnv("APP_COORDINATES", "configurationCoordinates")
	v, err := p.Lookup(context.Background(), spi.Coordinates{}, "configurationCoordinates")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, "region=west,environment=test", *v.Value())
	assert.True(t, v.Authoritative())

	v, err = p.Lookup(context.Background(), spi.Coordinates{}, "other.name")
	require.NoError(t, err)
	assert.Nil(t, v)
}
