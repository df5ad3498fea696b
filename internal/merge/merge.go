package merge

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"

	"score-importer/internal/diagnostic"
	"score-importer/internal/match"
)

// Merge pairs roster entries with candidates. The inputs are not modified;
// the returned entries keep the roster order.
func Merge(roster []Entry, candidates []match.Candidate, cfg Config) *Result {
	result := &Result{
		Entries:  slices.Clone(roster),
		Strategy: cfg.Strategy,
	}

	checkCandidates(candidates, cfg, &result.Diagnostics)

	pool := match.NewPool(candidates)

	switch cfg.Strategy {
	case StrategyTierOrder:
		mergeByTier(result.Entries, pool, cfg.Matcher)
	default:
		mergeByEntry(result.Entries, pool, cfg.Matcher)
	}

	result.Unused = pool.Remaining()
	report(result, pool, cfg)

	log.Debug().
		Str("strategy", cfg.Strategy.String()).
		Int("entries", len(result.Entries)).
		Int("unmatched", len(result.Unmatched())).
		Int("unused", len(result.Unused)).
		Msg("merge complete")

	return result
}

// mergeByEntry gives each entry all tiers before moving on.
func mergeByEntry(entries []Entry, pool *match.Pool, m match.Matcher) {
	for i := range entries {
		e := &entries[i]

		res := m.Match(e.Key, pool)
		if !res.Matched() {
			log.Debug().Int("row", e.Row+1).Str("name", e.RawName).Msg("no candidate")
			continue
		}

		e.assign(res)
		logMatch(e)
	}
}

// mergeByTier runs each tier across all entries still unmatched.
func mergeByTier(entries []Entry, pool *match.Pool, m match.Matcher) {
	for _, tier := range match.Tiers {
		for i := range entries {
			e := &entries[i]
			if e.Matched() {
				continue
			}

			res := m.MatchTier(e.Key, pool, tier)
			if !res.Matched() {
				continue
			}

			e.assign(res)
			logMatch(e)
		}
	}
}

func logMatch(e *Entry) {
	log.Debug().
		Int("row", e.Row+1).
		Str("name", e.RawName).
		Str("tier", e.Tier.String()).
		Str("candidate", e.Annotation).
		Int("candidate_row", e.Candidate.Row+1).
		Msg("roster entry matched")
}

// checkCandidates reports identifiers and names that appear more than once
// in the score sheet. The first occurrence still wins during matching.
func checkCandidates(candidates []match.Candidate, cfg Config, diags *diagnostic.Diagnostics) {
	seenIDs := make(map[int64]int)
	seenNames := make(map[string]int)

	for _, c := range candidates {
		if c.Key.HasID() {
			if first, ok := seenIDs[c.Key.ID]; ok {
				diags.AddWarning(diagnostic.CodeDuplicateCandidateID,
					fmt.Sprintf("identifier %d already used on row %d", c.Key.ID, first+1),
					cfg.ScoreSheet, c.Row+1)
			} else {
				seenIDs[c.Key.ID] = c.Row
			}
		}

		if c.Key.Names.Empty() {
			continue
		}

		name := c.Key.Names.String()
		if first, ok := seenNames[name]; ok {
			diags.AddWarning(diagnostic.CodeDuplicateCandidateName,
				fmt.Sprintf("name %q already used on row %d", c.RawName, first+1),
				cfg.ScoreSheet, c.Row+1)
		} else {
			seenNames[name] = c.Row
		}
	}
}

// report fills suggestions and diagnostics once matching is over.
func report(result *Result, pool *match.Pool, cfg Config) {
	diags := &result.Diagnostics

	for i := range result.Entries {
		e := &result.Entries[i]

		switch {
		case e.Tier.Uncertain():
			diags.AddWarning(diagnostic.CodeVerifyMinimalMatch,
				fmt.Sprintf("%q matched %q on a single shared word (similarity %.0f%%)",
					e.RawName, e.Annotation, 100*match.NameSimilarity(e.RawName, e.Annotation)),
				cfg.RosterSheet, e.Row+1)

		case !e.Matched():
			if e.Key.Names.Empty() && !e.Key.HasID() {
				diags.AddInfo(diagnostic.CodeEmptyName, "row has no usable name", cfg.RosterSheet, e.Row+1)
			}

			e.Suggestions = match.Suggest(e.Key, pool).AboveThreshold(cfg.MinSimilarity).Top(cfg.MaxSuggestions)

			msg := fmt.Sprintf("no score found for %q", e.RawName)
			if best := e.Suggestions.Best(); best != nil {
				msg += fmt.Sprintf(", closest is %q", best.Candidate.RawName)
			}

			diags.Add(diagnostic.Diagnostic{
				Severity:    diagnostic.SeverityWarning,
				Code:        diagnostic.CodeUnmatchedEntry,
				Message:     msg,
				Sheet:       cfg.RosterSheet,
				Row:         e.Row + 1,
				Suggestions: e.Suggestions.Names(),
			})
		}
	}

	for _, c := range result.Unused {
		msg := fmt.Sprintf("score %s of %q was not merged", c.Score, c.RawName)
		if strings.TrimSpace(c.RawName) == "" {
			msg = fmt.Sprintf("score %s of identifier %d was not merged", c.Score, c.Key.ID)
		}

		diags.AddWarning(diagnostic.CodeUnusedCandidate, msg, cfg.ScoreSheet, c.Row+1)
	}
}
