package table

// Sheet is a named, possibly ragged, grid of cells.
type Sheet struct {
	Name string
	Rows [][]Cell
}

// NewSheet parses raw string records into a sheet.
func NewSheet(name string, records [][]string) *Sheet {
	rows := make([][]Cell, len(records))
	for i, rec := range records {
		row := make([]Cell, len(rec))
		for j, raw := range rec {
			row[j] = ParseCell(raw)
		}

		rows[i] = row
	}

	return &Sheet{Name: name, Rows: rows}
}

// Width returns the length of the longest row.
func (s *Sheet) Width() int {
	width := 0
	for _, row := range s.Rows {
		width = max(width, len(row))
	}

	return width
}

// Cell returns the cell at row r, column c. Out of range cells are empty.
func (s *Sheet) Cell(r, c int) Cell {
	if r < 0 || r >= len(s.Rows) || c < 0 || c >= len(s.Rows[r]) {
		return Cell{}
	}

	return s.Rows[r][c]
}

// Set stores a cell, growing the sheet as needed.
func (s *Sheet) Set(r, c int, cell Cell) {
	for len(s.Rows) <= r {
		s.Rows = append(s.Rows, nil)
	}

	for len(s.Rows[r]) <= c {
		s.Rows[r] = append(s.Rows[r], Cell{})
	}

	s.Rows[r][c] = cell
}

// RowWidth returns the index after the last non-empty cell of row r.
func (s *Sheet) RowWidth(r int) int {
	if r < 0 || r >= len(s.Rows) {
		return 0
	}

	row := s.Rows[r]
	for i := len(row) - 1; i >= 0; i-- {
		if !row[i].IsEmpty() {
			return i + 1
		}
	}

	return 0
}

// IsBlankRow reports whether every cell of row r is empty.
func (s *Sheet) IsBlankRow(r int) bool {
	return s.RowWidth(r) == 0
}

// Records renders the sheet as strings, padding rows to the sheet width.
func (s *Sheet) Records() [][]string {
	width := s.Width()

	records := make([][]string, len(s.Rows))
	for i, row := range s.Rows {
		rec := make([]string, width)
		for j, cell := range row {
			rec[j] = cell.String()
		}

		records[i] = rec
	}

	return records
}
