package matching

import (
	"testing"

	"catermatch/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTierRule(t *testing.T) {
	req := &entity.EventRequest{}

	tests := []struct {
		name    string
		caterer entity.Tier
		target  entity.Tier
		want    float64
	}{
		{name: "same tier", caterer: entity.TierPro, target: entity.TierPro, want: 0.10},
		{name: "higher tier", caterer: entity.TierBusiness, target: entity.TierBasic, want: 0.10},
		{name: "lower tier", caterer: entity.TierBasic, target: entity.TierPro, want: 0},
		{name: "unknown caterer tier", caterer: entity.Tier("gold"), target: entity.TierBasic, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TierRule(req, &entity.Caterer{Tier: tt.caterer}, &Context{TargetTier: tt.target})
			assert.InDelta(t, tt.want, got.Delta, 1e-9)
			assert.Equal(t, tt.want > 0, got.Reason != "")
		})
	}
}

func TestCuisineRule(t *testing.T) {
	c := &entity.Caterer{CuisineTypes: []string{"Indian", "Cape Malay", "braai"}}

	tests := []struct {
		name      string
		requested []string
		want      float64
	}{
		{name: "no preference", requested: nil, want: 0.15},
		{name: "blank preference", requested: []string{"  "}, want: 0.15},
		{name: "full overlap case insensitive", requested: []string{"indian", " CAPE MALAY "}, want: 0.30},
		{name: "half overlap", requested: []string{"indian", "sushi"}, want: 0.15},
		{name: "duplicates collapse", requested: []string{"indian", "Indian"}, want: 0.30},
		{name: "no overlap", requested: []string{"sushi"}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CuisineRule(&entity.EventRequest{CuisinePreferences: tt.requested}, c, &Context{})
			assert.InDelta(t, tt.want, got.Delta, 1e-9)
		})
	}
}

func TestDietaryRule(t *testing.T) {
	c := &entity.Caterer{DietaryCapabilities: []string{"halal", "vegetarian"}}

	tests := []struct {
		name      string
		requested []string
		want      float64
	}{
		{name: "none requested", requested: nil, want: 0.25},
		{name: "full coverage", requested: []string{"Halal"}, want: 0.25},
		{name: "partial coverage", requested: []string{"halal", "kosher"}, want: 0.075},
		{name: "no coverage", requested: []string{"kosher"}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DietaryRule(&entity.EventRequest{DietaryRequirements: tt.requested}, c, &Context{})
			assert.InDelta(t, tt.want, got.Delta, 1e-9)
		})
	}
}

func TestCapacityRule(t *testing.T) {
	tests := []struct {
		name   string
		guests int
		min    int
		max    int
		want   float64
	}{
		{name: "inside range", guests: 100, min: 50, max: 200, want: 0.20},
		{name: "at minimum", guests: 50, min: 50, max: 200, want: 0.20},
		{name: "at maximum", guests: 200, min: 50, max: 200, want: 0.20},
		{name: "near miss", guests: 35, min: 50, max: 200, want: 0.10},
		{name: "too small", guests: 34, min: 50, max: 200, want: 0},
		{name: "too large", guests: 201, min: 50, max: 200, want: 0},
		{name: "no upper bound", guests: 5000, min: 50, max: 0, want: 0.20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CapacityRule(
				&entity.EventRequest{GuestCount: tt.guests},
				&entity.Caterer{MinGuests: tt.min, MaxGuests: tt.max},
				&Context{},
			)
			assert.InDelta(t, tt.want, got.Delta, 1e-9)
		})
	}
}

func TestServiceStyleRule(t *testing.T) {
	c := &entity.Caterer{ServiceStyles: []string{"Buffet", "plated"}}

	assert.InDelta(t, 0.075, ServiceStyleRule(&entity.EventRequest{}, c, &Context{}).Delta, 1e-9)
	assert.InDelta(t, 0.15, ServiceStyleRule(&entity.EventRequest{ServiceStyle: "buffet"}, c, &Context{}).Delta, 1e-9)
	assert.InDelta(t, 0.0, ServiceStyleRule(&entity.EventRequest{ServiceStyle: "food truck"}, c, &Context{}).Delta, 1e-9)
}

func TestLocationRule(t *testing.T) {
	capeTown := &entity.ResolvedLocation{City: "Cape Town", Latitude: -33.9249, Longitude: 18.4241}

	tests := []struct {
		name      string
		loc       *entity.ResolvedLocation
		caterer   *entity.Caterer
		want      float64
		wantKm    float64
		kmDelta   float64
		hasReason bool
	}{
		{
			name:      "same spot",
			loc:       capeTown,
			caterer:   &entity.Caterer{Location: &entity.Coordinates{Latitude: -33.9249, Longitude: 18.4241}},
			want:      0.10,
			wantKm:    0,
			kmDelta:   0.01,
			hasReason: true,
		},
		{
			name:      "bellville is within 30 km",
			loc:       capeTown,
			caterer:   &entity.Caterer{Location: &entity.Coordinates{Latitude: -33.9000, Longitude: 18.6292}},
			want:      0.07,
			wantKm:    19,
			kmDelta:   1.5,
			hasReason: true,
		},
		{
			name:      "stellenbosch is within 50 km",
			loc:       capeTown,
			caterer:   &entity.Caterer{Location: &entity.Coordinates{Latitude: -33.9321, Longitude: 18.8602}},
			want:      0.04,
			wantKm:    40,
			kmDelta:   1.5,
			hasReason: true,
		},
		{
			name:    "durban is too far",
			loc:     capeTown,
			caterer: &entity.Caterer{Location: &entity.Coordinates{Latitude: -29.8587, Longitude: 31.0218}},
			want:    0,
			wantKm:  1270,
			kmDelta: 30,
		},
		{
			name:      "no coordinates, same city",
			loc:       capeTown,
			caterer:   &entity.Caterer{City: "cape town"},
			want:      0.10,
			wantKm:    10,
			hasReason: true,
		},
		{
			name:      "no coordinates, substring city",
			loc:       capeTown,
			caterer:   &entity.Caterer{City: "Cape Town Southern Suburbs"},
			want:      0.10,
			wantKm:    10,
			hasReason: true,
		},
		{
			name:    "no coordinates, other city",
			loc:     capeTown,
			caterer: &entity.Caterer{City: "Durban"},
			want:    0,
			wantKm:  50,
		},
		{
			name:    "no coordinates, blank city",
			loc:     capeTown,
			caterer: &entity.Caterer{},
			want:    0,
			wantKm:  50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LocationRule(&entity.EventRequest{City: "Cape Town"}, tt.caterer, &Context{Location: tt.loc})

			assert.InDelta(t, tt.want, got.Delta, 1e-9)
			assert.InDelta(t, tt.wantKm, got.DistanceKm, tt.kmDelta+1e-9)
			assert.Equal(t, tt.hasReason, got.Reason != "")
		})
	}
}

func TestLocationRule_ZeroPointUsesCityFallback(t *testing.T) {
	worcester := &entity.Caterer{
		City:     "Worcester",
		Location: &entity.Coordinates{Latitude: -33.646, Longitude: 19.448},
	}

	tests := []struct {
		name    string
		loc     *entity.ResolvedLocation
		caterer *entity.Caterer
		want    float64
		wantKm  float64
	}{
		{
			name:    "same city scores full",
			loc:     &entity.ResolvedLocation{City: "Worcester", Confidence: entity.ConfidenceHigh, Source: entity.LocationSourceLearned},
			caterer: worcester,
			want:    0.10,
			wantKm:  10,
		},
		{
			name:    "other city scores nothing",
			loc:     &entity.ResolvedLocation{City: "Upington", Confidence: entity.ConfidenceHigh, Source: entity.LocationSourceAI},
			caterer: worcester,
			want:    0,
			wantKm:  50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.False(t, tt.loc.HasCoordinates())

			got := LocationRule(&entity.EventRequest{}, tt.caterer, &Context{Location: tt.loc})

			assert.InDelta(t, tt.want, got.Delta, 1e-9)
			assert.InDelta(t, tt.wantKm, got.DistanceKm, 1e-9)
		})
	}
}

func TestLocationRule_FallsBackToRequestCity(t *testing.T) {
	got := LocationRule(
		&entity.EventRequest{City: "Pretoria"},
		&entity.Caterer{City: "Pretoria East"},
		&Context{},
	)

	assert.InDelta(t, 0.10, got.Delta, 1e-9)
}
