package location

import (
	"strings"
)

// segmentSeparators split detailed input such as "venue near suburb, city".
var segmentSeparators = []string{",", " near ", " in ", "-"}

// Normalize lower-cases and trims the input and collapses inner whitespace.
func Normalize(input string) string {
	return strings.Join(strings.Fields(strings.ToLower(input)), " ")
}

// Segments splits a normalized input on the known separators and returns the
// non-empty trimmed parts in input order.
func Segments(normalized string) []string {
	parts := []string{normalized}

	for _, sep := range segmentSeparators {
		var next []string
		for _, p := range parts {
			next = append(next, strings.Split(p, sep)...)
		}

		parts = next
	}

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}
