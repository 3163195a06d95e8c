package providers

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticeconf/coordinate/spi"
)

const testManifest = `
[[values]]
name = "timeout"
value = "60s"
authoritative = false

[[values]]
name = "timeout"
value = "5s"
authoritative = true
[values.coordinates]
region = "west"
environment = "test"
`

func TestTOMLFileLookup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.toml")
	require.NoError(t, os.WriteFile(path, []byte(testManifest), 0o644))

	p, err := NewTOMLFile(path)
	require.NoError(t, err)

	v, err := p.Lookup(context.Background(), spi.Coordinates{"region": "west", "environment": "test"}, "timeout")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, "5s", *v.Value())
	assert.True(t, v.Authoritative())

	v, err = p.Lookup(context.Background(), spi.Coordinates{"region": "east"}, "timeout")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, "60s", *v.Value())
}

func TestTOMLFileMissingFile(t *testing.T) {
	_, err := NewTOMLFile(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
