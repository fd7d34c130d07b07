package matching

import (
	"fmt"
	"testing"

	"catermatch/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capeTownLocation() *entity.ResolvedLocation {
	return &entity.ResolvedLocation{
		City:       "Cape Town",
		Province:   "Western Cape",
		Latitude:   -33.9249,
		Longitude:  18.4241,
		Confidence: entity.ConfidenceHigh,
		Source:     entity.LocationSourceAlias,
	}
}

func newCaterer(name string, tier entity.Tier) *entity.Caterer {
	return &entity.Caterer{
		ID:           uuid.New(),
		BusinessName: name,
		IsActive:     true,
		Tier:         tier,
		MinGuests:    50,
		MaxGuests:    200,
		City:         "Cape Town",
		Location:     &entity.Coordinates{Latitude: -33.93, Longitude: 18.43},
	}
}

func TestEngine_PreferenceLessRequestScoresFlatAwards(t *testing.T) {
	perPerson := 300.0
	req := &entity.EventRequest{
		ID:              uuid.New(),
		GuestCount:      100,
		City:            "Cape Town",
		BudgetPerPerson: &perPerson,
	}

	total := req.TotalBudget()
	require.InDelta(t, 30000, total, 1e-9)

	tier := TierFor(total)
	require.Equal(t, entity.TierPro, tier)

	engine := NewEngine(Config{})
	matches := engine.Rank(req, capeTownLocation(), tier, []*entity.Caterer{newCaterer("Kaap Kos", entity.TierPro)})

	require.Len(t, matches, 1)
	m := matches[0]
	assert.GreaterOrEqual(t, m.OverallScore, 0.87)
	assert.InDelta(t, 0.15, m.SemanticScore, 1e-9)
	assert.InDelta(t, 0.10, m.DistanceScore, 1e-9)
	assert.InDelta(t, 0.63, m.CompatibilityScore, 1e-9)
	assert.Equal(t, 1, m.Rank)
	assert.Equal(t, req.ID, m.RequestID)
	assert.Equal(t, entity.MatchStatusPending, m.Status)
	assert.Contains(t, m.Reasons, string(FactorTier))
	assert.Contains(t, m.Reasons, string(FactorLocation))
}

func TestEngine_EmptyPool(t *testing.T) {
	matches := NewEngine(Config{}).Rank(&entity.EventRequest{GuestCount: 10}, nil, entity.TierBasic, nil)

	assert.NotNil(t, matches)
	assert.Empty(t, matches)
}

func TestEngine_CapsAtTenAndRanksContiguously(t *testing.T) {
	req := &entity.EventRequest{ID: uuid.New(), GuestCount: 100, City: "Cape Town"}

	pool := make([]*entity.Caterer, 0, 15)
	for i := range 15 {
		c := newCaterer(fmt.Sprintf("caterer-%d", i), entity.TierBasic)
		// Spread caterers out so that scores differ.
		c.Location = &entity.Coordinates{Latitude: -33.9249 - float64(i)*0.05, Longitude: 18.4241}
		pool = append(pool, c)
	}

	matches := NewEngine(Config{}).Rank(req, capeTownLocation(), entity.TierBasic, pool)

	require.Len(t, matches, 10)
	for i, m := range matches {
		assert.Equal(t, i+1, m.Rank)
		assert.Greater(t, m.OverallScore, 0.1)

		if i > 0 {
			assert.LessOrEqual(t, m.OverallScore, matches[i-1].OverallScore)
		}
	}
}

func TestEngine_TiesKeepPoolOrder(t *testing.T) {
	req := &entity.EventRequest{ID: uuid.New(), GuestCount: 100}

	pool := []*entity.Caterer{
		newCaterer("first", entity.TierBasic),
		newCaterer("second", entity.TierBasic),
		newCaterer("third", entity.TierBasic),
	}

	matches := NewEngine(Config{}).Rank(req, capeTownLocation(), entity.TierBasic, pool)

	require.Len(t, matches, 3)
	for i, m := range matches {
		assert.Equal(t, pool[i].ID, m.CatererID)
	}
}

func TestEngine_FiltersLowScores(t *testing.T) {
	req := &entity.EventRequest{
		ID:                  uuid.New(),
		GuestCount:          10,
		CuisinePreferences:  []string{"sushi"},
		DietaryRequirements: []string{"kosher"},
		ServiceStyle:        "plated",
	}

	weak := newCaterer("weak", entity.TierBasic)
	weak.Location = nil
	weak.City = "Durban"

	matches := NewEngine(Config{}).Rank(req, capeTownLocation(), entity.TierBusiness, []*entity.Caterer{weak})

	assert.Empty(t, matches)
}

func TestEngine_ScoreBounds(t *testing.T) {
	styles := []string{"", "buffet", "plated"}
	cuisines := [][]string{nil, {"indian"}, {"indian", "italian"}}
	guests := []int{1, 40, 100, 500}

	caterers := []*entity.Caterer{
		{ID: uuid.New(), Tier: entity.TierBusiness, CuisineTypes: []string{"indian", "italian"},
			DietaryCapabilities: []string{"halal"}, ServiceStyles: []string{"buffet"}, MinGuests: 1, MaxGuests: 0,
			Location: &entity.Coordinates{Latitude: -33.92, Longitude: 18.42}},
		{ID: uuid.New(), Tier: entity.TierBasic, MinGuests: 50, MaxGuests: 60, City: "Cape Town"},
		{ID: uuid.New(), Tier: entity.TierPro, City: "Elsewhere"},
	}

	engine := NewEngine(Config{MaxMatches: 100, MinScore: 0.0001})

	for _, style := range styles {
		for _, cuisine := range cuisines {
			for _, g := range guests {
				req := &entity.EventRequest{
					GuestCount:          g,
					ServiceStyle:        style,
					CuisinePreferences:  cuisine,
					DietaryRequirements: []string{"halal"},
				}

				for _, c := range caterers {
					m := engine.Score(req, c, &Context{TargetTier: entity.TierPro, Location: capeTownLocation()})

					assert.GreaterOrEqual(t, m.OverallScore, 0.0)
					assert.LessOrEqual(t, m.OverallScore, 1.0)
					assert.InDelta(t, m.OverallScore, round(m.OverallScore, 2), 1e-12)
				}
			}
		}
	}
}

func TestEngine_CustomRules(t *testing.T) {
	always := func(_ *entity.EventRequest, _ *entity.Caterer, _ *Context) Contribution {
		return Contribution{Factor: "custom", Delta: 0.5, Reason: "always"}
	}

	engine := NewEngineWithRules(Config{MaxMatches: 1}, []Rule{always})
	matches := engine.Rank(&entity.EventRequest{}, nil, entity.TierBasic, []*entity.Caterer{{ID: uuid.New()}, {ID: uuid.New()}})

	require.Len(t, matches, 1)
	assert.InDelta(t, 0.5, matches[0].OverallScore, 1e-9)
	assert.InDelta(t, 0.5, matches[0].CompatibilityScore, 1e-9)
	assert.Equal(t, "always", matches[0].Reasons["custom"])
}

func TestEngine_PerfectMatchIsCapped(t *testing.T) {
	req := &entity.EventRequest{
		GuestCount:          100,
		CuisinePreferences:  []string{"indian"},
		DietaryRequirements: []string{"halal"},
		ServiceStyle:        "buffet",
	}

	c := newCaterer("perfect", entity.TierBusiness)
	c.CuisineTypes = []string{"Indian"}
	c.DietaryCapabilities = []string{"Halal"}
	c.ServiceStyles = []string{"Buffet"}

	m := NewEngine(Config{}).Score(req, c, &Context{TargetTier: entity.TierPro, Location: capeTownLocation()})

	assert.InDelta(t, 1.0, m.OverallScore, 1e-9)
	assert.InDelta(t, 0.30, m.SemanticScore, 1e-9)
	assert.Len(t, m.Reasons, 6)
}
