// Package match provides name normalization, the tiered matcher and
// similarity suggestions used to pair roster entries with score-sheet rows.
//
// Key functions:
//   - Normalize: turns a raw name into a NameSet (case, accents, order, hyphens)
//   - Matcher.Match: tries identifier, exact, partial, then minimal matching
//   - Pool: the ordered, consume-once set of available candidates
//   - Suggest: ranks leftover candidates by Levenshtein similarity
package match
