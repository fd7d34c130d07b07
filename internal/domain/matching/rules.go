package matching

import (
	"fmt"
	"strings"

	"catermatch/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// Factor names a scoring dimension. It is also the key of a match's reasons map.
type Factor string

const (
	FactorTier         Factor = "tier"
	FactorCuisine      Factor = "cuisine"
	FactorDietary      Factor = "dietary"
	FactorCapacity     Factor = "capacity"
	FactorServiceStyle Factor = "service_style"
	FactorLocation     Factor = "location"
)

// Weights.
const (
	tierWeight          = 0.10
	cuisineWeight       = 0.30
	dietaryWeight       = 0.25
	dietaryPartial      = 0.15
	capacityWeight      = 0.20
	capacityNearMiss    = 0.10
	capacityNearMissMin = 0.7
	styleWeight         = 0.15
	locationWeight      = 0.10
)

// Distance bands in km and the scores they earn.
const (
	nearKm      = 15.0
	midKm       = 30.0
	farKm       = 50.0
	midScore    = 0.07
	farScore    = 0.04
	sameCityKm  = 10.0
	otherCityKm = 50.0
	metresPerKm = 1000.0
)

// Context carries what a rule needs beyond the request and caterer.
type Context struct {
	TargetTier entity.Tier
	Location   *entity.ResolvedLocation
}

// Contribution is the outcome of one rule for one caterer.
type Contribution struct {
	Factor     Factor
	Delta      float64
	Reason     string  // Empty when the rule has nothing to say.
	DistanceKm float64 // Only set by the location rule.
}

// Rule scores one factor.
type Rule func(req *entity.EventRequest, c *entity.Caterer, sc *Context) Contribution

// DefaultRules is the ordered rule list of the engine.
func DefaultRules() []Rule {
	return []Rule{
		TierRule,
		CuisineRule,
		DietaryRule,
		CapacityRule,
		ServiceStyleRule,
		LocationRule,
	}
}

// TierRule rewards caterers whose subscription tier is at least the budget tier.
func TierRule(_ *entity.EventRequest, c *entity.Caterer, sc *Context) Contribution {
	target := sc.TargetTier.Rank()
	if target > 0 && c.Tier.Rank() >= target {
		return Contribution{
			Factor: FactorTier,
			Delta:  tierWeight,
			Reason: fmt.Sprintf("%s tier covers a %s budget", c.Tier, sc.TargetTier),
		}
	}

	return Contribution{Factor: FactorTier}
}

// CuisineRule scores the share of requested cuisines the caterer offers.
func CuisineRule(req *entity.EventRequest, c *entity.Caterer, _ *Context) Contribution {
	requested := normalizeSet(req.CuisinePreferences)
	if len(requested) == 0 {
		return Contribution{Factor: FactorCuisine, Delta: cuisineWeight / 2, Reason: "no cuisine preference"}
	}

	matched := intersect(requested, normalizeSet(c.CuisineTypes))
	if len(matched) == 0 {
		return Contribution{Factor: FactorCuisine}
	}

	return Contribution{
		Factor: FactorCuisine,
		Delta:  float64(len(matched)) / float64(len(requested)) * cuisineWeight,
		Reason: "offers " + strings.Join(matched, ", "),
	}
}

// DietaryRule scores coverage of the requested dietary requirements.
func DietaryRule(req *entity.EventRequest, c *entity.Caterer, _ *Context) Contribution {
	requested := normalizeSet(req.DietaryRequirements)
	if len(requested) == 0 {
		return Contribution{Factor: FactorDietary, Delta: dietaryWeight, Reason: "no dietary requirements"}
	}

	matched := intersect(requested, normalizeSet(c.DietaryCapabilities))

	switch {
	case len(matched) == len(requested):
		return Contribution{Factor: FactorDietary, Delta: dietaryWeight, Reason: "caters for all dietary needs"}
	case len(matched) > 0:
		return Contribution{
			Factor: FactorDietary,
			Delta:  dietaryPartial * float64(len(matched)) / float64(len(requested)),
			Reason: fmt.Sprintf("caters for %d of %d dietary needs", len(matched), len(requested)),
		}
	default:
		return Contribution{Factor: FactorDietary}
	}
}

// CapacityRule scores how well the guest count fits the caterer's range.
// A MaxGuests of zero is treated as no upper bound.
func CapacityRule(req *entity.EventRequest, c *entity.Caterer, _ *Context) Contribution {
	guests := req.GuestCount
	fitsMax := c.MaxGuests <= 0 || guests <= c.MaxGuests

	switch {
	case guests >= c.MinGuests && fitsMax:
		return Contribution{Factor: FactorCapacity, Delta: capacityWeight, Reason: fmt.Sprintf("handles %d guests", guests)}
	case guests < c.MinGuests && float64(guests) >= capacityNearMissMin*float64(c.MinGuests):
		return Contribution{
			Factor: FactorCapacity,
			Delta:  capacityNearMiss,
			Reason: fmt.Sprintf("slightly below the %d guest minimum", c.MinGuests),
		}
	default:
		return Contribution{Factor: FactorCapacity}
	}
}

// ServiceStyleRule scores an exact match of the requested service style.
func ServiceStyleRule(req *entity.EventRequest, c *entity.Caterer, _ *Context) Contribution {
	style := normalizeToken(req.ServiceStyle)
	if style == "" {
		return Contribution{Factor: FactorServiceStyle, Delta: styleWeight / 2, Reason: "no service style preference"}
	}

	for _, s := range c.ServiceStyles {
		if normalizeToken(s) == style {
			return Contribution{Factor: FactorServiceStyle, Delta: styleWeight, Reason: "offers " + style + " service"}
		}
	}

	return Contribution{Factor: FactorServiceStyle}
}

// LocationRule scores proximity. With coordinates on both sides it uses great-circle
// distance; otherwise it falls back to comparing city names.
func LocationRule(req *entity.EventRequest, c *entity.Caterer, sc *Context) Contribution {
	if sc.Location != nil && sc.Location.HasCoordinates() && c.Location != nil {
		km := DistanceKm(sc.Location.Coordinates(), c.Location)

		delta := 0.0
		switch {
		case km <= nearKm:
			delta = locationWeight
		case km <= midKm:
			delta = midScore
		case km <= farKm:
			delta = farScore
		}

		contrib := Contribution{Factor: FactorLocation, Delta: delta, DistanceKm: km}
		if delta > 0 {
			contrib.Reason = fmt.Sprintf("%.1f km away", km)
		}

		return contrib
	}

	if cityMatches(requestCity(req, sc), c.City) {
		return Contribution{
			Factor:     FactorLocation,
			Delta:      locationWeight,
			Reason:     "based in " + strings.TrimSpace(c.City),
			DistanceKm: sameCityKm,
		}
	}

	return Contribution{Factor: FactorLocation, DistanceKm: otherCityKm}
}

// DistanceKm returns the haversine distance between two points in kilometres.
func DistanceKm(a, b *entity.Coordinates) float64 {
	return geo.DistanceHaversine(
		orb.Point{a.Longitude, a.Latitude},
		orb.Point{b.Longitude, b.Latitude},
	) / metresPerKm
}

func requestCity(req *entity.EventRequest, sc *Context) string {
	if sc.Location != nil && sc.Location.City != "" {
		return sc.Location.City
	}

	return req.City
}

// cityMatches is a case-insensitive substring match in either direction.
func cityMatches(a, b string) bool {
	a, b = normalizeToken(a), normalizeToken(b)
	if a == "" || b == "" {
		return false
	}

	return strings.Contains(a, b) || strings.Contains(b, a)
}

func normalizeToken(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// normalizeSet lower-cases, trims and de-duplicates, keeping input order.
func normalizeSet(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))

	for _, v := range values {
		n := normalizeToken(v)
		if n == "" {
			continue
		}

		if _, ok := seen[n]; ok {
			continue
		}

		seen[n] = struct{}{}
		out = append(out, n)
	}

	return out
}

func intersect(requested, offered []string) []string {
	have := make(map[string]struct{}, len(offered))
	for _, o := range offered {
		have[o] = struct{}{}
	}

	var out []string
	for _, r := range requested {
		if _, ok := have[r]; ok {
			out = append(out, r)
		}
	}

	return out
}
