// Package entity contains the core business objects of the project.
package entity

// Tier is a caterer subscription level. It doubles as the budget bucket of an event request.
type Tier string

const (
	// TierBasic is the entry subscription level.
	TierBasic Tier = "basic"
	// TierPro is the middle subscription level.
	TierPro Tier = "pro"
	// TierBusiness is the top subscription level.
	TierBusiness Tier = "business"
)

// String returns the string representation of the Tier.
func (t Tier) String() string {
	return string(t)
}

// IsValid checks if the Tier is a valid value.
func (t Tier) IsValid() bool {
	switch t {
	case TierBasic, TierPro, TierBusiness:
		return true
	default:
		return false
	}
}

// Rank orders tiers for compatibility checks: basic=1, pro=2, business=3.
// Unknown tiers rank 0 and are therefore never compatible.
func (t Tier) Rank() int {
	switch t {
	case TierBasic:
		return 1
	case TierPro:
		return 2
	case TierBusiness:
		return 3
	default:
		return 0
	}
}
