package coordinate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticeconf/coordinate/spi"
)

func TestBindCoordinates(t *testing.T) {
	type Target struct {
		Region      string        `coord:"region"`
		Environment string        `coord:"environment"`
		Timeout     time.Duration `coord:"timeout"`
	}

	var target Target
	err := BindCoordinates(spi.Coordinates{"region": "west", "environment": "test", "timeout": "30s"}, &target)
	require.NoError(t, err)
	assert.Equal(t, "west", target.Region)
	assert.Equal(t, "test", target.Environment)
	assert.Equal(t, 30*time.Second, target.Timeout)
}

func TestBindCoordinatesRejectsNonPointer(t *testing.T) {
	type Target struct{}
	err := BindCoordinates(spi.Coordinates{}, Target{})
	assert.Error(t, err)
}
