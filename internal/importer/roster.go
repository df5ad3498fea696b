package importer

import (
	"fmt"
	"strings"

	"score-importer/internal/config"
	"score-importer/internal/diagnostic"
	"score-importer/internal/match"
	"score-importer/internal/merge"
	"score-importer/internal/table"
)

// roster is the first sheet, with the layout given by the configuration.
type roster struct {
	sheet       *table.Sheet
	header      int
	id          int
	lastName    int
	firstName   int
	score       int
	annotation  int
	idThreshold int64
}

func newRoster(s *table.Sheet, cfg *config.Config) (*roster, error) {
	header := table.FindHeader(s, cfg.Roster.Header, cfg.Roster.HeaderSearchRows)
	if header < 0 {
		return nil, fmt.Errorf("%w: header %q not found in sheet %q",
			ErrNotRoster, strings.Join(cfg.Roster.Header, ", "), s.Name)
	}

	cols := cfg.Roster.Columns
	r := &roster{
		sheet:       s,
		header:      header,
		id:          *cols.ID,
		lastName:    *cols.LastName,
		firstName:   *cols.FirstName,
		score:       *cols.Score,
		idThreshold: cfg.IDThreshold,
	}

	r.annotation = max(len(cfg.Roster.Header), r.id+1, r.lastName+1, r.firstName+1, r.score+1)
	for row := header; row < len(s.Rows); row++ {
		r.annotation = max(r.annotation, s.RowWidth(row))
	}

	return r, nil
}

// entries returns one entry per non-blank row below the header.
func (r *roster) entries() []merge.Entry {
	var entries []merge.Entry

	for row := r.header + 1; row < len(r.sheet.Rows); row++ {
		if r.sheet.IsBlankRow(row) {
			continue
		}

		e := merge.NewEntry(row, studentID(r.sheet.Cell(row, r.id), r.idThreshold), r.nameParts(row)...)
		e.Existing = scoreOf(r.sheet.Cell(row, r.score))
		entries = append(entries, e)
	}

	return entries
}

// nameParts returns the non-blank last and first name cells of row.
func (r *roster) nameParts(row int) []string {
	var parts []string

	for _, c := range []int{r.lastName, r.firstName} {
		if v := strings.TrimSpace(r.sheet.Cell(row, c).String()); v != "" {
			parts = append(parts, v)
		}
	}

	// Last and first name may share a column.
	if r.lastName == r.firstName && len(parts) == 2 {
		parts = parts[:1]
	}

	return parts
}

// apply writes the merge result into the roster sheet and returns the
// problems found in the copied scores.
func (r *roster) apply(result *merge.Result, cfg *config.Config) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	r.sheet.Set(r.header, r.annotation, table.TextCell(cfg.AnnotationHeader))

	for i := range result.Entries {
		e := &result.Entries[i]

		score := e.Score
		if score.Set && strings.HasPrefix(score.Text, "#") {
			diags.AddWarning(diagnostic.CodeScoreError,
				fmt.Sprintf("score of %q is the spreadsheet error %s", e.Annotation, score.Text),
				r.sheet.Name, e.Row+1)

			score = match.Score{}
		}

		switch {
		case score.Set:
			r.sheet.Set(e.Row, r.score, cellOf(score))
		case e.Existing.Set:
			// Keep the score already there.
		default:
			r.sheet.Set(e.Row, r.score, table.TextCell(cfg.UnmatchedMarker))
		}

		if !e.Matched() {
			continue
		}

		annotation := e.Annotation
		if e.Tier.Uncertain() {
			annotation += *cfg.UncertainSuffix
		}

		r.sheet.Set(e.Row, r.annotation, table.TextCell(annotation))
	}

	return diags
}
