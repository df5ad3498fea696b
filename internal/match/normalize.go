package match

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NameSet is the canonical form of a person's full name: the set of its
// case-folded, accent-stripped words.
type NameSet map[string]struct{}

// Normalize converts a raw name into a NameSet.
// The normalization pipeline:
// 1. Case-fold to lower.
// 2. Strip diacritics (NFD, drop combining marks).
// 3. Split on runs of whitespace, dashes and underscores.
// 4. Collapse duplicate tokens.
func Normalize(raw string) NameSet {
	set := make(NameSet)
	if raw == "" {
		return set
	}

	folded := cases.Fold().String(raw)
	folded = stripDiacritics(folded)

	for _, tok := range strings.FieldsFunc(folded, isSeparator) {
		set[tok] = struct{}{}
	}

	return set
}

// NormalizeParts normalizes a name split across several cells,
// e.g. last name and first name.
func NormalizeParts(parts ...string) NameSet {
	return Normalize(strings.Join(parts, " "))
}

// NewNameSet builds a NameSet from tokens that are already normalized.
func NewNameSet(tokens ...string) NameSet {
	set := make(NameSet, len(tokens))
	for _, tok := range tokens {
		if tok != "" {
			set[tok] = struct{}{}
		}
	}

	return set
}

func stripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}

	return result
}

// isSeparator returns true for runes that split name words.
func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || unicode.Is(unicode.Pd, r) || r == '_'
}

// Len returns the number of distinct tokens.
func (s NameSet) Len() int { return len(s) }

// Empty reports whether the set holds no token.
func (s NameSet) Empty() bool { return len(s) == 0 }

// Has reports whether tok belongs to the set.
func (s NameSet) Has(tok string) bool {
	_, ok := s[tok]
	return ok
}

// Tokens returns the tokens in lexical order.
func (s NameSet) Tokens() []string {
	tokens := make([]string, 0, len(s))
	for tok := range s {
		tokens = append(tokens, tok)
	}

	sort.Strings(tokens)

	return tokens
}

// String renders the set as its sorted tokens joined by spaces.
// Normalize(s.String()) yields a set equal to s.
func (s NameSet) String() string {
	return strings.Join(s.Tokens(), " ")
}

// Equal reports set equality.
func (s NameSet) Equal(other NameSet) bool {
	return len(s) == len(other) && s.SubsetOf(other)
}

// SubsetOf reports whether every token of s is in other.
func (s NameSet) SubsetOf(other NameSet) bool {
	if len(s) > len(other) {
		return false
	}

	for tok := range s {
		if !other.Has(tok) {
			return false
		}
	}

	return true
}

// Nested reports whether one set contains the other. Empty sets never nest.
func (s NameSet) Nested(other NameSet) bool {
	if s.Empty() || other.Empty() {
		return false
	}

	return s.SubsetOf(other) || other.SubsetOf(s)
}

// Intersects reports whether the sets share at least one token.
func (s NameSet) Intersects(other NameSet) bool {
	small, large := s, other
	if len(small) > len(large) {
		small, large = large, small
	}

	for tok := range small {
		if large.Has(tok) {
			return true
		}
	}

	return false
}

// Significant returns the tokens of at least minLen characters.
// Short particles like "de" or "la" are dropped.
func (s NameSet) Significant(minLen int) NameSet {
	out := make(NameSet, len(s))
	for tok := range s {
		if utf8.RuneCountInString(tok) >= minLen {
			out[tok] = struct{}{}
		}
	}

	return out
}
