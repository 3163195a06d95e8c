package guard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/latticeconf/coordinate/spi"
)

func TestSeedIsIdempotent(t *testing.T) {
	ctx := Seed(context.Background())
	Activate(ctx, "p1")
	ctx2 := Seed(ctx)
	assert.True(t, Active(ctx2, "p1"), "re-seeding must not reset existing state")
}

func TestActivateDeactivate(t *testing.T) {
	ctx := Seed(context.Background())
	var id spi.ProviderID = "p1"

	assert.False(t, Active(ctx, id))
	Activate(ctx, id)
	assert.True(t, Active(ctx, id))
	Deactivate(ctx, id)
	assert.False(t, Active(ctx, id))
}

func TestEmpty(t *testing.T) {
	ctx := Seed(context.Background())
	assert.True(t, Empty(ctx))
	Activate(ctx, "p1")
	assert.False(t, Empty(ctx))
	Deactivate(ctx, "p1")
	assert.True(t, Empty(ctx))
}

func TestUnseededContextIsSafe(t *testing.T) {
	ctx := context.Background()
	assert.False(t, Active(ctx, "p1"))
	assert.True(t, Empty(ctx))
}

func TestIndependentProviders(t *testing.T) {
	ctx := Seed(context.Background())
	Activate(ctx, "p1")
	assert.False(t, Active(ctx, "p2"))
}
