package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupAlias(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCity string
		wantOK   bool
	}{
		{name: "alias", input: "jozi", wantCity: "Johannesburg", wantOK: true},
		{name: "canonical name", input: "cape town", wantCity: "Cape Town", wantOK: true},
		{name: "renamed city", input: "port elizabeth", wantCity: "Gqeberha", wantOK: true},
		{name: "unknown", input: "atlantis", wantOK: false},
		{name: "not normalized", input: "Jozi", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := LookupAlias(tt.input)
			assert.Equal(t, tt.wantOK, ok)

			if tt.wantOK {
				require.NotNil(t, p)
				assert.Equal(t, tt.wantCity, p.City)
			}
		})
	}
}

func TestLookupAliasInText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCity string
		wantOK   bool
	}{
		{name: "venue and city", input: "the venue at sandton city, johannesburg", wantCity: "Johannesburg", wantOK: true},
		{name: "near suburb", input: "wine farm near stellenbosch", wantCity: "Stellenbosch", wantOK: true},
		{name: "in city", input: "garden wedding in dbn", wantCity: "Durban", wantOK: true},
		{name: "hyphenated", input: "umhlanga - beachfront", wantCity: "Durban", wantOK: true},
		{name: "nothing known", input: "my backyard, somewhere", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := LookupAliasInText(Normalize(tt.input))
			assert.Equal(t, tt.wantOK, ok)

			if tt.wantOK {
				require.NotNil(t, p)
				assert.Equal(t, tt.wantCity, p.City)
			}
		})
	}
}

func TestAliasTableIsConsistent(t *testing.T) {
	for _, p := range places {
		assert.NotEmpty(t, p.Province, p.City)
		assert.True(t, p.Latitude < -22 && p.Latitude > -35, "%s latitude outside South Africa", p.City)
		assert.True(t, p.Longitude > 16 && p.Longitude < 33, "%s longitude outside South Africa", p.City)

		for _, alias := range p.Aliases {
			assert.Equal(t, Normalize(alias), alias, "alias must be stored normalized")
		}
	}

	for _, ex := range Examples() {
		p, ok := LookupAlias(ex.Alias)
		require.True(t, ok, ex.Alias)
		assert.Equal(t, ex.City, p.City)
	}
}
