package importer

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"score-importer/internal/config"
	"score-importer/internal/diagnostic"
	"score-importer/internal/match"
	"score-importer/internal/merge"
	"score-importer/internal/table"
)

// strictCodes are the warnings that fail an import in strict mode.
var strictCodes = []string{
	diagnostic.CodeUnmatchedEntry,
	diagnostic.CodeUnusedCandidate,
	diagnostic.CodeDuplicateCandidateName,
}

// Options configures a run.
type Options struct {
	// Inputs is one XLSX file, or the roster CSV followed by the score CSV.
	Inputs []string
	// Output overrides the output path derived from the first input.
	Output string
	// Config holds the settings. Nil means config.Default().
	Config *config.Config
	// DryRun merges without writing anything.
	DryRun bool
}

// Outcome describes a completed run.
type Outcome struct {
	// Input is the first input file.
	Input string
	// Output is the path the roster is (or would be) written to.
	Output string
	// Written reports whether Output was written.
	Written bool
	// RosterSheet and ScoreSheet are the names of the merged tables.
	RosterSheet string
	ScoreSheet  string
	// HeaderRow is the 0-based index of the roster header row.
	HeaderRow int
	// Columns is the detected layout of the score sheet.
	Columns table.Columns
	// Result is the merge result.
	Result *merge.Result
}

// Run imports the scores. On ErrUnresolved the returned Outcome is still
// filled so the caller can report what went wrong.
func Run(opts Options) (*Outcome, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	mc, err := cfg.MergeConfig()
	if err != nil {
		return nil, err
	}

	wb, err := table.Open(opts.Inputs...)
	if err != nil {
		return nil, err
	}

	log.Info().Str("input", wb.Path).Str("format", wb.Format.String()).Int("sheets", len(wb.Sheets)).Msg("opened input")

	switch {
	case len(wb.Sheets) < 2:
		return nil, ErrNothingToMerge
	case len(wb.Sheets) > 2:
		return nil, fmt.Errorf("%w: found %d", ErrTooManySheets, len(wb.Sheets))
	}

	rosterSheet, scoreSheet := wb.Sheets[0], wb.Sheets[1]

	out := &Outcome{
		Input:       wb.Path,
		Output:      opts.Output,
		RosterSheet: rosterSheet.Name,
		ScoreSheet:  scoreSheet.Name,
	}
	if out.Output == "" {
		out.Output = table.OutputPath(wb.Path, cfg.OutputSuffix)
	}

	roster, err := newRoster(rosterSheet, cfg)
	if err != nil {
		return nil, err
	}

	out.HeaderRow = roster.header

	candidates, cols, err := readCandidates(scoreSheet, cfg.IDThreshold)
	if err != nil {
		return nil, err
	}

	out.Columns = cols

	log.Debug().
		Int("id_column", cols.ID).
		Ints("name_columns", cols.Names).
		Int("score_column", cols.Score).
		Msg("detected score sheet layout")

	mc.RosterSheet = rosterSheet.Name
	mc.ScoreSheet = scoreSheet.Name

	entries := roster.entries()
	out.Result = merge.Merge(entries, candidates, mc)

	out.Result.Diagnostics.Merge(roster.apply(out.Result, cfg))

	if cfg.Strict {
		out.Result.Diagnostics.Escalate(strictCodes...)

		if out.Result.Diagnostics.HasErrors() {
			return out, fmt.Errorf("%w: %w", ErrUnresolved, out.Result.Diagnostics.Error())
		}
	}

	counts := out.Result.CountByTier()
	log.Info().
		Int("entries", len(entries)).
		Int("candidates", len(candidates)).
		Int("unmatched", counts[match.TierUnmatched]).
		Int("to_verify", counts[match.TierMinimal]).
		Int("unused", len(out.Result.Unused)).
		Msg("merged scores")

	if opts.DryRun {
		log.Info().Str("output", out.Output).Msg("dry run, nothing written")
		return out, nil
	}

	result := &table.Workbook{Format: wb.Format, Comma: wb.Comma, Sheets: []*table.Sheet{rosterSheet}}
	if err := table.Save(result, out.Output); err != nil {
		return out, err
	}

	out.Written = true

	log.Info().Str("output", out.Output).Msg("saved roster")

	return out, nil
}

// readCandidates turns every non-blank row of the score sheet into a candidate.
func readCandidates(s *table.Sheet, idThreshold int64) ([]match.Candidate, table.Columns, error) {
	first := table.FirstDataRow(s)
	if first < 0 {
		return nil, table.Columns{}, fmt.Errorf("%w: sheet %q is empty", ErrNothingToMerge, s.Name)
	}

	cols := table.DetectColumns(s, first, idThreshold)
	if cols.Score < 0 {
		return nil, cols, fmt.Errorf("%w in sheet %q", ErrNoScoreColumn, s.Name)
	}

	if cols.ID < 0 && len(cols.Names) == 0 {
		return nil, cols, fmt.Errorf("%w in sheet %q", ErrNoNameColumns, s.Name)
	}

	var candidates []match.Candidate

	for r := first; r < len(s.Rows); r++ {
		if s.IsBlankRow(r) {
			continue
		}

		var id int64
		if cols.ID >= 0 {
			id = studentID(s.Cell(r, cols.ID), idThreshold)
		}

		parts := make([]string, 0, len(cols.Names))
		for _, c := range cols.Names {
			if v := strings.TrimSpace(s.Cell(r, c).String()); v != "" {
				parts = append(parts, v)
			}
		}

		candidates = append(candidates,
			match.NewCandidate(r, id, strings.Join(parts, " "), scoreOf(s.Cell(r, cols.Score))))
	}

	return candidates, cols, nil
}

func studentID(cell table.Cell, threshold int64) int64 {
	if cell.Kind == table.CellInt && match.IsStudentID(cell.Int, threshold) {
		return cell.Int
	}

	return 0
}

func scoreOf(cell table.Cell) match.Score {
	switch {
	case cell.IsNumber():
		return match.NumberScore(cell.Number())
	case cell.IsText():
		return match.TextScore(strings.TrimSpace(cell.Text))
	default:
		return match.Score{}
	}
}

func cellOf(score match.Score) table.Cell {
	switch {
	case !score.Set:
		return table.Cell{}
	case score.IsNumber():
		return table.FloatCell(score.Number)
	default:
		return table.TextCell(score.Text)
	}
}
