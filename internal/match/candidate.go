package match

import (
	"sort"
)

// Suggestion is a remaining candidate ranked by name similarity, offered to
// a human when a roster entry could not be matched.
type Suggestion struct {
	Candidate Candidate

	// Similarity is the normalized Levenshtein similarity (0-1)
	// of the sorted name tokens.
	Similarity float64
}

// SuggestionList is a list of suggestions with ranking functionality.
type SuggestionList []Suggestion

// Suggest ranks the candidates left in the pool by similarity to key.
// Returns suggestions sorted by similarity (descending). The pool is not modified.
func Suggest(key Key, pool *Pool) SuggestionList {
	if key.Names.Empty() {
		return nil
	}

	target := key.Names.String()

	var list SuggestionList

	for _, c := range pool.items {
		if c.Key.Names.Empty() {
			continue
		}

		list = append(list, Suggestion{
			Candidate:  c,
			Similarity: LevenshteinNormalized(target, c.Key.Names.String()),
		})
	}

	sort.Sort(list)

	return list
}

// Len implements sort.Interface.
func (l SuggestionList) Len() int { return len(l) }

// Swap implements sort.Interface.
func (l SuggestionList) Swap(i, j int) { l[i], l[j] = l[j], l[i] }

// Less implements sort.Interface.
// Sorts by similarity descending, then by sheet row for determinism.
func (l SuggestionList) Less(i, j int) bool {
	if l[i].Similarity != l[j].Similarity {
		return l[i].Similarity > l[j].Similarity
	}

	return l[i].Candidate.Row < l[j].Candidate.Row
}

// Top returns the top n suggestions.
func (l SuggestionList) Top(n int) SuggestionList {
	if n >= len(l) {
		return l
	}

	if n <= 0 {
		return nil
	}

	return l[:n]
}

// Best returns the best suggestion, or nil if there is none.
func (l SuggestionList) Best() *Suggestion {
	if len(l) == 0 {
		return nil
	}

	return &l[0]
}

// AboveThreshold returns suggestions with similarity at or above the threshold.
func (l SuggestionList) AboveThreshold(threshold float64) SuggestionList {
	var result SuggestionList

	for _, s := range l {
		if s.Similarity >= threshold {
			result = append(result, s)
		}
	}

	return result
}

// Names returns the raw names of the suggested candidates.
func (l SuggestionList) Names() []string {
	names := make([]string, 0, len(l))
	for _, s := range l {
		names = append(names, s.Candidate.RawName)
	}

	return names
}
