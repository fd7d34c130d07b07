package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "cape town", Normalize("  Cape   Town "))
	assert.Equal(t, "", Normalize("   "))
	assert.Equal(t, "jozi", Normalize("JOZI"))
}

func TestSegments(t *testing.T) {
	assert.Equal(t, []string{"sandton city", "johannesburg"}, Segments("sandton city, johannesburg"))
	assert.Equal(t, []string{"hall", "menlyn", "pretoria"}, Segments("hall near menlyn, pretoria"))
	assert.Equal(t, []string{"jozi"}, Segments("jozi"))
	assert.Empty(t, Segments(""))
}
