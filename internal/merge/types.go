package merge

import (
	"fmt"
	"strings"

	"score-importer/internal/common"
	"score-importer/internal/diagnostic"
	"score-importer/internal/match"
)

// Entry is one roster row to complete.
type Entry struct {
	// Row is the 0-based index of the row in the roster sheet.
	Row int
	// Key identifies the student.
	Key match.Key
	// RawName is the roster's own spelling of the name.
	RawName string
	// Existing is the score already present in the roster, if any.
	Existing match.Score

	// Score receives the matched candidate's score. Unset when unmatched.
	Score match.Score
	// Annotation receives the matched candidate's raw name. Empty when unmatched.
	Annotation string
	// Tier is the tier that produced the match.
	Tier match.Tier
	// Candidate is the consumed candidate, nil when unmatched.
	Candidate *match.Candidate
	// Suggestions are the closest leftover candidates of an unmatched entry.
	Suggestions match.SuggestionList
}

// NewEntry builds a roster entry from an identifier and a name, possibly
// split across cells (e.g. last name and first name).
func NewEntry(row int, id int64, parts ...string) Entry {
	return Entry{
		Row:     row,
		Key:     match.Key{ID: id, Names: match.NormalizeParts(parts...)},
		RawName: strings.Join(parts, " "),
	}
}

// Matched reports whether a candidate was assigned.
func (e *Entry) Matched() bool { return e.Tier != match.TierUnmatched }

func (e *Entry) assign(res match.Result) {
	c := res.Candidate
	e.Tier = res.Tier
	e.Candidate = &c
	e.Score = c.Score
	e.Annotation = c.RawName
}

// Result is the completed roster.
type Result struct {
	// Entries holds every roster entry in its original order.
	Entries []Entry
	// Unused are the candidates no entry claimed, in sheet order.
	Unused []match.Candidate
	// Strategy is the strategy that produced the result.
	Strategy Strategy
	// Diagnostics contains all warnings and errors from the merge.
	Diagnostics diagnostic.Diagnostics
}

// CountByTier returns the number of entries per tier, unmatched included.
func (r *Result) CountByTier() map[match.Tier]int {
	counts := make(map[match.Tier]int, len(match.Tiers)+1)
	for i := range r.Entries {
		counts[r.Entries[i].Tier]++
	}

	return counts
}

// Unmatched returns the entries left without a candidate.
func (r *Result) Unmatched() []Entry {
	var out []Entry

	for _, e := range r.Entries {
		if !e.Matched() {
			out = append(out, e)
		}
	}

	return out
}

// Strategy decides the order in which roster entries and tiers are visited.
type Strategy int

const (
	// StrategyEntryOrder lets each roster entry try every tier before the next
	// entry is considered. First come, first served.
	StrategyEntryOrder Strategy = iota
	// StrategyTierOrder runs each tier over all remaining roster entries before
	// moving to the next tier, so a weak match cannot take a candidate that a
	// later entry would have matched more strongly.
	StrategyTierOrder
)

// String returns the configuration name of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyEntryOrder:
		return "entry"
	case StrategyTierOrder:
		return "tier"
	default:
		return common.UnknownStr
	}
}

// ParseStrategy parses a configuration name. The empty string is StrategyEntryOrder.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "", "entry":
		return StrategyEntryOrder, nil
	case "tier":
		return StrategyTierOrder, nil
	default:
		return StrategyEntryOrder, fmt.Errorf("unknown merge strategy %q (want entry or tier)", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Config holds configuration for a merge.
type Config struct {
	// Matcher decides whether two keys refer to the same person.
	Matcher match.Matcher
	// Strategy is the visiting order.
	Strategy Strategy
	// MaxSuggestions is the number of leftover candidates suggested for an unmatched entry.
	MaxSuggestions int
	// MinSimilarity drops suggestions less similar than this (0-1).
	MinSimilarity float64
	// RosterSheet and ScoreSheet name the tables in diagnostics.
	RosterSheet string
	ScoreSheet  string
}

// DefaultConfig returns the default merge configuration.
func DefaultConfig() Config {
	return Config{
		Matcher:        match.NewMatcher(),
		Strategy:       StrategyEntryOrder,
		MaxSuggestions: 3,
		RosterSheet:    "roster",
		ScoreSheet:     "scores",
	}
}
