package matching

import (
	"math"
	"sort"

	"catermatch/internal/domain/entity"
)

// Defaults of the engine.
const (
	DefaultMaxMatches = 10
	DefaultMinScore   = 0.1
)

// Config tunes filtering and truncation of the ranked list.
type Config struct {
	MaxMatches int     // Upper bound of returned matches.
	MinScore   float64 // Matches must score strictly above this.
}

// Engine folds the ordered rules over every caterer and ranks the result.
type Engine struct {
	rules []Rule
	cfg   Config
}

// NewEngine builds an engine with the default rules. Zero config values take the defaults.
func NewEngine(cfg Config) *Engine {
	return NewEngineWithRules(cfg, DefaultRules())
}

// NewEngineWithRules builds an engine with a custom rule list.
func NewEngineWithRules(cfg Config, rules []Rule) *Engine {
	if cfg.MaxMatches <= 0 {
		cfg.MaxMatches = DefaultMaxMatches
	}

	if cfg.MinScore <= 0 {
		cfg.MinScore = DefaultMinScore
	}

	return &Engine{rules: rules, cfg: cfg}
}

// Score evaluates one caterer. The overall score is capped to [0, 1] because the
// weights add up to slightly more than one. The returned match has no rank yet.
func (e *Engine) Score(req *entity.EventRequest, c *entity.Caterer, sc *Context) *entity.Match {
	m := &entity.Match{
		RequestID: req.ID,
		CatererID: c.ID,
		Reasons:   make(map[string]string),
		Status:    entity.MatchStatusPending,
	}

	var total, compat float64

	for _, rule := range e.rules {
		contrib := rule(req, c, sc)
		total += contrib.Delta

		switch contrib.Factor {
		case FactorCuisine:
			m.SemanticScore = contrib.Delta
		case FactorLocation:
			m.DistanceScore = contrib.Delta
			m.DistanceKm = round(contrib.DistanceKm, 1)
		default:
			compat += contrib.Delta
		}

		if contrib.Reason != "" {
			m.Reasons[string(contrib.Factor)] = contrib.Reason
		}
	}

	m.SemanticScore = round(m.SemanticScore, 2)
	m.DistanceScore = round(m.DistanceScore, 2)
	m.CompatibilityScore = round(compat, 2)
	m.OverallScore = round(math.Min(1, math.Max(0, total)), 2)

	return m
}

// Rank scores the pool, drops matches at or below the minimum score, orders by score
// (ties keep pool order), keeps the top entries and numbers them from 1.
func (e *Engine) Rank(
	req *entity.EventRequest,
	loc *entity.ResolvedLocation,
	tier entity.Tier,
	caterers []*entity.Caterer,
) []*entity.Match {
	sc := &Context{TargetTier: tier, Location: loc}

	matches := make([]*entity.Match, 0, len(caterers))
	for _, c := range caterers {
		if c == nil {
			continue
		}

		m := e.Score(req, c, sc)
		if m.OverallScore > e.cfg.MinScore {
			matches = append(matches, m)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].OverallScore > matches[j].OverallScore
	})

	if len(matches) > e.cfg.MaxMatches {
		matches = matches[:e.cfg.MaxMatches]
	}

	for i, m := range matches {
		m.Rank = i + 1
	}

	return matches
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))

	return math.Round(v*p) / p
}
