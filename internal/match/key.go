package match

import (
	"strconv"
)

// DefaultIDThreshold is the value a number must exceed to be read as a
// student identifier rather than a score.
const DefaultIDThreshold = 1_000_000

// Key identifies a person on one side of the merge.
type Key struct {
	// ID is the student number, or 0 when the row has none.
	ID int64
	// Names is the normalized full name.
	Names NameSet
}

// NewKey builds a Key from an optional identifier and a raw full name.
func NewKey(id int64, rawName string) Key {
	return Key{ID: id, Names: Normalize(rawName)}
}

// HasID reports whether the key carries a student identifier.
func (k Key) HasID() bool { return k.ID != 0 }

// IsStudentID reports whether n is large enough to be a student identifier.
func IsStudentID(n int64, threshold int64) bool {
	return n > threshold
}

// Score is the value copied from the score column: a number, or a text
// marker such as "ABI". The zero Score is unset.
type Score struct {
	Number float64
	Text   string
	Set    bool
}

// NumberScore returns a numeric score.
func NumberScore(v float64) Score {
	return Score{Number: v, Set: true}
}

// TextScore returns a text score. An empty text yields an unset score.
func TextScore(s string) Score {
	if s == "" {
		return Score{}
	}

	return Score{Text: s, Set: true}
}

// IsNumber reports whether the score holds a number.
func (s Score) IsNumber() bool { return s.Set && s.Text == "" }

// String renders the score the way it is written back to a sheet.
func (s Score) String() string {
	switch {
	case !s.Set:
		return ""
	case s.Text != "":
		return s.Text
	default:
		return strconv.FormatFloat(s.Number, 'f', -1, 64)
	}
}

// Candidate is one row of the score sheet.
type Candidate struct {
	// Row is the 0-based index of the row in its sheet.
	Row int
	// Key identifies the person.
	Key Key
	// RawName is the name as typed in the sheet, kept for verification.
	RawName string
	// Score is the value to merge.
	Score Score
}

// NewCandidate builds a Candidate, normalizing its raw name.
func NewCandidate(row int, id int64, rawName string, score Score) Candidate {
	return Candidate{
		Row:     row,
		Key:     NewKey(id, rawName),
		RawName: rawName,
		Score:   score,
	}
}
