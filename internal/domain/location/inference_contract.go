package location

import (
	"fmt"
	"math"
	"strings"

	"catermatch/internal/domain/entity"
	"catermatch/internal/errors"

	"github.com/xeipuuv/gojsonschema"
)

// ErrInvalidInference is returned when an inference result breaks the contract.
var ErrInvalidInference = errors.New("inference result does not match schema")

// InferredLocation is the decoded output of the inference call.
type InferredLocation struct {
	City       string
	Province   string
	Latitude   float64
	Longitude  float64
	Confidence entity.Confidence
}

// InferenceSchema is the response schema sent to the model. It stays within the
// keywords strict structured output accepts; DecodeInference applies the bounds.
func InferenceSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required":             []any{"city", "province", "latitude", "longitude", "confidence"},
		"properties": map[string]any{
			"city":      map[string]any{"type": "string"},
			"province":  map[string]any{"type": "string"},
			"latitude":  map[string]any{"type": "number"},
			"longitude": map[string]any{"type": "number"},
			"confidence": map[string]any{
				"type": "string",
				"enum": []any{"high", "medium", "low"},
			},
		},
	}
}

// validationSchema tightens InferenceSchema with the checks the provider is not given.
func validationSchema() map[string]any {
	schema := InferenceSchema()
	props := schema["properties"].(map[string]any)

	props["city"] = map[string]any{"type": "string", "minLength": 1}
	props["latitude"] = map[string]any{"type": "number", "minimum": -90, "maximum": 90}
	props["longitude"] = map[string]any{"type": "number", "minimum": -180, "maximum": 180}

	return schema
}

// BuildPrompt renders the inference prompt for one input.
func BuildPrompt(input string) string {
	var b strings.Builder

	b.WriteString("You resolve South African place names for a catering marketplace.\n")
	b.WriteString("Return the city that contains the given location. If the text names a venue, ")
	b.WriteString("suburb or street, return the city it belongs to.\n")
	b.WriteString("Report confidence \"high\" only when the place is unambiguous.\n")
	b.WriteString("Known aliases:\n")

	for _, ex := range Examples() {
		fmt.Fprintf(&b, "- %q -> %s, %s\n", ex.Alias, ex.City, ex.Province)
	}

	fmt.Fprintf(&b, "Location: %q\n", input)

	return b.String()
}

// DecodeInference validates a raw inference object and converts it.
func DecodeInference(raw map[string]any) (*InferredLocation, error) {
	if raw == nil {
		return nil, errors.Wrap(ErrInvalidInference, "empty result")
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(validationSchema()),
		gojsonschema.NewGoLoader(raw),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to validate inference result")
	}

	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}

		return nil, errors.Wrap(ErrInvalidInference, strings.Join(msgs, "; "))
	}

	out := &InferredLocation{
		City:       strings.TrimSpace(raw["city"].(string)),
		Province:   strings.TrimSpace(raw["province"].(string)),
		Latitude:   toFloat(raw["latitude"]),
		Longitude:  toFloat(raw["longitude"]),
		Confidence: entity.Confidence(raw["confidence"].(string)),
	}

	if out.City == "" || math.IsNaN(out.Latitude) || math.IsNaN(out.Longitude) {
		return nil, errors.Wrap(ErrInvalidInference, "blank city or coordinates")
	}

	return out, nil
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return math.NaN()
	}
}
