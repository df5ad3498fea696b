// Package merge pairs every roster entry with at most one score-sheet
// candidate and reports what happened.
//
// Merge pipeline:
//  1. Check the score sheet for duplicate identifiers and names
//  2. Build the candidate pool, in sheet order
//  3. Match roster entries (entry-ordered or tier-ordered, see Strategy)
//  4. Copy score and raw name of each consumed candidate into its entry
//  5. Emit diagnostics (unmatched entries with suggestions, minimal matches
//     to verify, unused candidates)
package merge
