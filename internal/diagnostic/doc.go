// Package diagnostic provides structured warnings, errors, and
// explanations produced while merging a score sheet into a roster.
//
// Key capabilities:
//   - Unmatched roster entries with the closest leftover candidates
//   - Minimal-tier matches flagged for human verification
//   - Score-sheet rows that nobody claimed
//   - Duplicate names or identifiers in the score sheet
package diagnostic
