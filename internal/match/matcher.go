package match

// DefaultMinTokenLen is the shortest word kept by the minimal tier.
const DefaultMinTokenLen = 3

// Result is the outcome of matching one roster entry.
type Result struct {
	// Tier is the tier that succeeded, or TierUnmatched.
	Tier Tier
	// Candidate is the consumed candidate. Zero when unmatched.
	Candidate Candidate
}

// Matched reports whether a candidate was found.
func (r Result) Matched() bool { return r.Tier != TierUnmatched }

// Matcher finds the candidate that refers to the same person as a roster
// entry. The zero Matcher uses the default settings.
type Matcher struct {
	// MinTokenLen is the shortest word considered by the minimal tier.
	MinTokenLen int
	// RejectConflictingIDs stops name tiers from pairing two rows that both
	// carry identifiers and disagree on them.
	RejectConflictingIDs bool
}

// NewMatcher returns a Matcher with default settings.
func NewMatcher() Matcher {
	return Matcher{MinTokenLen: DefaultMinTokenLen}
}

func (m Matcher) minTokenLen() int {
	if m.MinTokenLen <= 0 {
		return DefaultMinTokenLen
	}

	return m.MinTokenLen
}

// Match tries every tier in priority order and consumes the first candidate
// accepted by the first successful tier. Within a tier, pool order decides.
func (m Matcher) Match(key Key, pool *Pool) Result {
	for _, tier := range Tiers {
		if res := m.MatchTier(key, pool, tier); res.Matched() {
			return res
		}
	}

	return Result{}
}

// MatchTier runs a single tier against the pool.
// On success the candidate is removed from the pool.
func (m Matcher) MatchTier(key Key, pool *Pool, tier Tier) Result {
	accept := m.predicate(key, tier)
	if accept == nil {
		return Result{}
	}

	i := pool.index(func(c *Candidate) bool {
		if tier != TierIdentifier && m.conflicting(key, c.Key) {
			return false
		}

		return accept(c.Key)
	})
	if i < 0 {
		return Result{}
	}

	return Result{Tier: tier, Candidate: pool.take(i)}
}

// predicate returns the acceptance test of a tier for key,
// or nil when the tier cannot apply to it.
func (m Matcher) predicate(key Key, tier Tier) func(Key) bool {
	switch tier {
	case TierIdentifier:
		if !key.HasID() {
			return nil
		}

		return func(c Key) bool { return c.ID == key.ID }

	case TierExact:
		if key.Names.Empty() {
			return nil
		}

		return func(c Key) bool { return key.Names.Equal(c.Names) }

	case TierPartial:
		if key.Names.Empty() {
			return nil
		}

		return func(c Key) bool { return key.Names.Nested(c.Names) }

	case TierMinimal:
		minLen := m.minTokenLen()

		own := key.Names.Significant(minLen)
		if own.Empty() {
			return nil
		}

		return func(c Key) bool { return own.Intersects(c.Names.Significant(minLen)) }

	default:
		return nil
	}
}

func (m Matcher) conflicting(a, b Key) bool {
	return m.RejectConflictingIDs && a.HasID() && b.HasID() && a.ID != b.ID
}
