package spi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubConverter struct {
	typ TypeDescriptor
}

func (s stubConverter) Type() TypeDescriptor { return s.typ }

func (s stubConverter) Convert(raw *string) (string, error) {
	if raw == nil {
		return "", nil
	}
	return *raw, nil
}

func TestRegistryFirstRegistrationWins(t *testing.T) {
	first := AsAnyConverter[string](stubConverter{typ: "t"})
	second := AsAnyConverter[string](stubConverter{typ: "t"})

	reg := NewRegistry(first, second)
	got, ok := reg.Lookup("t")
	require.True(t, ok)

	v, err := got.ConvertAny(nil)
	require.NoError(t, err)
	assert.Equal(t, "", v)
	assert.Len(t, reg.Types(), 1)
}

func TestRegistryLookupMiss(t *testing.T) {
	reg := NewRegistry()
	_, ok := reg.Lookup("missing")
	assert.False(t, ok)
}

func TestRegistryNilReceiver(t *testing.T) {
	var reg *Registry
	_, ok := reg.Lookup("t")
	assert.False(t, ok)
	assert.Nil(t, reg.Types())
}

func TestNoSuchConverterError(t *testing.T) {
	err := &NoSuchConverterError{Type: "t"}
	assert.Contains(t, err.Error(), "t")
}

func TestAsAnyConverterRoundtrip(t *testing.T) {
	c := stubConverter{typ: "t"}
	any := AsAnyConverter[string](c)
	v, err := any.ConvertAny(nil)
	require.NoError(t, err)
	assert.Equal(t, "", v)

	s := "hello"
	v, err = any.ConvertAny(&s)
	require.NoError(t, err)
	assert.Equal(t, "hello", v)
}
