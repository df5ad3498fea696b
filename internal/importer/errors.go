package importer

import "errors"

var (
	// ErrNothingToMerge is returned when the input holds a single table, or
	// an empty score sheet.
	ErrNothingToMerge = errors.New("nothing to merge: a roster and a score sheet are needed")
	// ErrTooManySheets is returned when the input holds more than two tables.
	ErrTooManySheets = errors.New("too many sheets: expected a roster and a score sheet only")
	// ErrNotRoster is returned when the roster header row cannot be found.
	ErrNotRoster = errors.New("first sheet does not look like a roster")
	// ErrNoScoreColumn is returned when no column of the score sheet holds numbers.
	ErrNoScoreColumn = errors.New("no score column found")
	// ErrNoNameColumns is returned when the score sheet has neither names nor identifiers.
	ErrNoNameColumns = errors.New("no name or identifier column found")
	// ErrUnresolved is returned in strict mode when rows remain unresolved.
	ErrUnresolved = errors.New("unresolved rows")
)
