package table

import (
	"score-importer/internal/match"
)

// Columns tells which columns of a score sheet hold what.
type Columns struct {
	// ID is the identifier column, -1 when absent.
	ID int
	// Names are the columns whose cells are all text, left to right.
	Names []int
	// Score is the last column holding numbers, -1 when absent.
	Score int
}

// FirstDataRow returns the index of the first non-blank row, skipping it when
// every filled cell is text (a header row). Returns -1 for a blank sheet.
func FirstDataRow(s *Sheet) int {
	for r := range s.Rows {
		if s.IsBlankRow(r) {
			continue
		}

		if isHeaderRow(s.Rows[r]) {
			return r + 1
		}

		return r
	}

	return -1
}

func isHeaderRow(row []Cell) bool {
	for _, cell := range row {
		if !cell.IsEmpty() && !cell.IsText() {
			return false
		}
	}

	return true
}

// DetectColumns classifies the columns of s from row `from` onwards:
//   - integers all above idThreshold: identifier column (first one wins);
//   - text only: name column;
//   - anything else holding a number: score column (last one wins).
//
// A score column may also contain text markers such as "ABI".
func DetectColumns(s *Sheet, from int, idThreshold int64) Columns {
	cols := Columns{ID: -1, Score: -1}
	if from < 0 {
		return cols
	}

	for c := 0; c < s.Width(); c++ {
		var filled, ids, texts, numbers int

		for r := from; r < len(s.Rows); r++ {
			cell := s.Cell(r, c)

			switch {
			case cell.IsEmpty():
				continue
			case cell.Kind == CellInt && match.IsStudentID(cell.Int, idThreshold):
				ids++
				numbers++
			case cell.IsNumber():
				numbers++
			case cell.IsText():
				texts++
			}

			filled++
		}

		switch {
		case filled == 0:
			continue
		case ids == filled:
			if cols.ID < 0 {
				cols.ID = c
			}
		case texts == filled:
			cols.Names = append(cols.Names, c)
		case numbers > 0:
			cols.Score = c
		}
	}

	return cols
}

// FindHeader returns the index of the first row, among the first maxRows,
// whose leading cells equal header once case and accents are ignored.
// Returns -1 when no row matches.
func FindHeader(s *Sheet, header []string, maxRows int) int {
	if len(header) == 0 {
		return -1
	}

	want := make([]string, len(header))
	for i, h := range header {
		want[i] = match.Normalize(h).String()
	}

	limit := len(s.Rows)
	if maxRows > 0 {
		limit = min(limit, maxRows)
	}

	for r := 0; r < limit; r++ {
		if rowStartsWith(s, r, want) {
			return r
		}
	}

	return -1
}

func rowStartsWith(s *Sheet, r int, want []string) bool {
	for c, w := range want {
		if match.Normalize(s.Cell(r, c).String()).String() != w {
			return false
		}
	}

	return true
}
