package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"score-importer/internal/diagnostic"
	"score-importer/internal/match"
	"score-importer/internal/merge"
)

// Meta describes the files a result came from.
type Meta struct {
	Input       string
	Output      string
	Written     bool
	RosterSheet string
	ScoreSheet  string
}

// Report is the reviewable form of a merge result.
type Report struct {
	Input       string                  `json:"input" yaml:"input"`
	Output      string                  `json:"output,omitempty" yaml:"output,omitempty"`
	Written     bool                    `json:"written" yaml:"written"`
	RosterSheet string                  `json:"roster_sheet,omitempty" yaml:"roster_sheet,omitempty"`
	ScoreSheet  string                  `json:"score_sheet,omitempty" yaml:"score_sheet,omitempty"`
	Strategy    merge.Strategy          `json:"strategy" yaml:"strategy"`
	Summary     Summary                 `json:"summary" yaml:"summary"`
	Entries     []Entry                 `json:"entries" yaml:"entries"`
	Unused      []Candidate             `json:"unused,omitempty" yaml:"unused,omitempty"`
	Diagnostics []diagnostic.Diagnostic `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

// Summary counts entries per outcome.
type Summary struct {
	Entries    int `json:"entries" yaml:"entries"`
	Identifier int `json:"identifier" yaml:"identifier"`
	Exact      int `json:"exact" yaml:"exact"`
	Partial    int `json:"partial" yaml:"partial"`
	Minimal    int `json:"minimal" yaml:"minimal"`
	Unmatched  int `json:"unmatched" yaml:"unmatched"`
	Unused     int `json:"unused" yaml:"unused"`
	Errors     int `json:"errors" yaml:"errors"`
	Warnings   int `json:"warnings" yaml:"warnings"`
}

// Entry is one roster row. Rows are 1-based.
type Entry struct {
	Row         int        `json:"row" yaml:"row"`
	ID          int64      `json:"id,omitempty" yaml:"id,omitempty"`
	Name        string     `json:"name" yaml:"name"`
	Tier        match.Tier `json:"tier" yaml:"tier"`
	Matched     string     `json:"matched,omitempty" yaml:"matched,omitempty"`
	MatchedRow  int        `json:"matched_row,omitempty" yaml:"matched_row,omitempty"`
	Score       string     `json:"score,omitempty" yaml:"score,omitempty"`
	Suggestions []string   `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
}

// Candidate is a score row nobody claimed. Rows are 1-based.
type Candidate struct {
	Row   int    `json:"row" yaml:"row"`
	ID    int64  `json:"id,omitempty" yaml:"id,omitempty"`
	Name  string `json:"name" yaml:"name"`
	Score string `json:"score,omitempty" yaml:"score,omitempty"`
}

// Build converts a merge result into a report.
func Build(result *merge.Result, meta Meta) *Report {
	r := &Report{
		Input:       meta.Input,
		Output:      meta.Output,
		Written:     meta.Written,
		RosterSheet: meta.RosterSheet,
		ScoreSheet:  meta.ScoreSheet,
		Strategy:    result.Strategy,
		Entries:     make([]Entry, 0, len(result.Entries)),
		Diagnostics: result.Diagnostics.All(),
	}

	counts := result.CountByTier()
	r.Summary = Summary{
		Entries:    len(result.Entries),
		Identifier: counts[match.TierIdentifier],
		Exact:      counts[match.TierExact],
		Partial:    counts[match.TierPartial],
		Minimal:    counts[match.TierMinimal],
		Unmatched:  counts[match.TierUnmatched],
		Unused:     len(result.Unused),
		Errors:     len(result.Diagnostics.Errors),
		Warnings:   len(result.Diagnostics.Warnings),
	}

	for _, e := range result.Entries {
		entry := Entry{
			Row:     e.Row + 1,
			ID:      e.Key.ID,
			Name:    e.RawName,
			Tier:    e.Tier,
			Matched: e.Annotation,
			Score:   e.Score.String(),
		}
		if e.Candidate != nil {
			entry.MatchedRow = e.Candidate.Row + 1
		}

		if len(e.Suggestions) > 0 {
			entry.Suggestions = e.Suggestions.Names()
		}

		r.Entries = append(r.Entries, entry)
	}

	for _, c := range result.Unused {
		r.Unused = append(r.Unused, Candidate{
			Row:   c.Row + 1,
			ID:    c.Key.ID,
			Name:  c.RawName,
			Score: c.Score.String(),
		})
	}

	return r
}

// WriteYAML encodes r as YAML.
func WriteYAML(w io.Writer, r *Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	return enc.Close()
}

// WriteJSON encodes r as indented JSON.
func WriteJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	return nil
}

// WriteFile writes r to path, as JSON for a .json extension and YAML otherwise.
func WriteFile(path string, r *Report) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report %s: %w", path, err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to write report %s: %w", path, cerr)
		}
	}()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return WriteJSON(f, r)
	}

	return WriteYAML(f, r)
}
