package location

import (
	"testing"

	"catermatch/internal/domain/entity"
	"catermatch/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeInference(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		got, err := DecodeInference(map[string]any{
			"city":       "Knysna",
			"province":   "Western Cape",
			"latitude":   -34.0363,
			"longitude":  23.0471,
			"confidence": "high",
		})

		require.NoError(t, err)
		assert.Equal(t, "Knysna", got.City)
		assert.Equal(t, entity.ConfidenceHigh, got.Confidence)
		assert.InDelta(t, -34.0363, got.Latitude, 1e-9)
	})

	tests := []struct {
		name string
		raw  map[string]any
	}{
		{name: "nil", raw: nil},
		{name: "missing city", raw: map[string]any{"province": "x", "latitude": 1.0, "longitude": 1.0, "confidence": "low"}},
		{name: "bad confidence", raw: map[string]any{"city": "x", "province": "x", "latitude": 1.0, "longitude": 1.0, "confidence": "certain"}},
		{name: "latitude out of range", raw: map[string]any{"city": "x", "province": "x", "latitude": 123.0, "longitude": 1.0, "confidence": "low"}},
		{name: "string coordinates", raw: map[string]any{"city": "x", "province": "x", "latitude": "-26", "longitude": "28", "confidence": "low"}},
		{name: "extra field", raw: map[string]any{"city": "x", "province": "x", "latitude": 1.0, "longitude": 1.0, "confidence": "low", "note": "y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeInference(tt.raw)

			require.Error(t, err)
			assert.Nil(t, got)
			assert.True(t, errors.Is(err, ErrInvalidInference))
		})
	}
}

func TestInferenceSchema_StrictOutputKeywords(t *testing.T) {
	allowed := map[string]bool{"type": true, "enum": true, "description": true}

	props := InferenceSchema()["properties"].(map[string]any)
	require.Len(t, props, 5)

	for name, p := range props {
		for keyword := range p.(map[string]any) {
			assert.Truef(t, allowed[keyword], "property %s uses %q", name, keyword)
		}
	}
}

func TestDecodeInference_BoundsNotSentToProvider(t *testing.T) {
	_, err := DecodeInference(map[string]any{
		"city":       "",
		"province":   "Western Cape",
		"latitude":   -34.0363,
		"longitude":  23.0471,
		"confidence": "high",
	})
	assert.True(t, errors.Is(err, ErrInvalidInference))

	_, err = DecodeInference(map[string]any{
		"city":       "Knysna",
		"province":   "Western Cape",
		"latitude":   -134.0,
		"longitude":  23.0471,
		"confidence": "high",
	})
	assert.True(t, errors.Is(err, ErrInvalidInference))
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt("Sandton Convention Centre")

	assert.Contains(t, prompt, `"Sandton Convention Centre"`)
	assert.Contains(t, prompt, `"jozi" -> Johannesburg, Gauteng`)
}
