package match

//go:generate go tool stringer -type=Tier -linecomment -output=tier_string.go

// Tier is the matching strategy that paired a roster entry with a candidate.
// Tiers are tried in declaration order, from the most to the least reliable.
type Tier int

const (
	TierUnmatched  Tier = iota // unmatched
	TierIdentifier             // identifier
	TierExact                  // exact
	TierPartial                // partial
	TierMinimal                // minimal
)

// Tiers lists the matching tiers in priority order.
var Tiers = []Tier{TierIdentifier, TierExact, TierPartial, TierMinimal}

// Uncertain reports whether a match at this tier needs a human check.
func (t Tier) Uncertain() bool {
	return t == TierMinimal
}

// MarshalText implements encoding.TextMarshaler.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
