package spi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordinatesEqual(t *testing.T) {
	assert.True(t, Coordinates(nil).Equal(Coordinates{}))
	assert.True(t, Coordinates{"a": "1"}.Equal(Coordinates{"a": "1"}))
	assert.False(t, Coordinates{"a": "1"}.Equal(Coordinates{"a": "2"}))
	assert.False(t, Coordinates{"a": "1"}.Equal(Coordinates{"a": "1", "b": "2"}))
}

func TestCoordinatesSubset(t *testing.T) {
	assert.True(t, Coordinates{}.Subset(Coordinates{"a": "1"}))
	assert.True(t, Coordinates{"a": "1"}.Subset(Coordinates{"a": "1", "b": "2"}))
	assert.False(t, Coordinates{"a": "1", "c": "3"}.Subset(Coordinates{"a": "1", "b": "2"}))
	assert.False(t, Coordinates{"a": "2"}.Subset(Coordinates{"a": "1"}))
}

func TestCoordinatesClone(t *testing.T) {
	c := Coordinates{"a": "1"}
	clone := c.Clone()
	clone["a"] = "2"
	assert.Equal(t, "1", c["a"])

	assert.Nil(t, Coordinates(nil).Clone())
}

func TestNewValueDerivesSpecificity(t *testing.T) {
	s := "x"
	v := NewValue("p1", Coordinates{"a": "1", "b": "2"}, "name", &s, true)
	assert.Equal(t, 2, v.Specificity())
	assert.Equal(t, 2, v.EffectiveSpecificity())
	assert.True(t, v.Authoritative())
	assert.Equal(t, ProviderID("p1"), v.Source())
	assert.Equal(t, "name", v.Name())
	assert.Same(t, &s, v.Value())
}

func TestNewValueNilCoordinates(t *testing.T) {
	v := NewValue("p1", nil, "name", nil, false)
	assert.Equal(t, 0, v.Specificity())
	assert.Nil(t, v.Value())
}
