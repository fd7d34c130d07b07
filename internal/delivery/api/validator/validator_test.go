package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Alias    string  `json:"alias" validate:"required"`
	Latitude float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Internal string  `json:"-" validate:"omitempty,max=2"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sample{Alias: "jozi", Latitude: -26.2}))

	err := v.Validate(&sample{Latitude: -120})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "alias failed on required")
	assert.Contains(t, err.Error(), "latitude failed on gte=-90")
}

func TestValidator_NonStructInput(t *testing.T) {
	v := New()

	assert.Error(t, v.Validate("not a struct"))
}
