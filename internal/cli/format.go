package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"score-importer/internal/importer"
	"score-importer/internal/match"
	"score-importer/internal/report"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	headerColor  = color.New(color.FgBlue, color.Bold)
	labelColor   = color.New(color.FgWhite, color.Bold)
	dimColor     = color.New(color.FgHiBlack)
)

func printSection(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w)
	_, _ = headerColor.Fprintf(w, "▸ %s\n", title)
}

func printLabelValue(w io.Writer, label string, value any) {
	_, _ = labelColor.Fprintf(w, "  %-11s", label+":")
	_, _ = fmt.Fprintf(w, " %v\n", value)
}

func printSuccess(w io.Writer, msg string) {
	_, _ = successColor.Fprintf(w, "✓ %s\n", msg)
}

func printWarning(w io.Writer, msg string) {
	_, _ = warningColor.Fprintf(w, "⚠ %s\n", msg)
}

func printError(w io.Writer, msg string) {
	_, _ = errorColor.Fprintf(w, "✗ %s\n", msg)
}

// printOutcome renders the merge for a human reader.
func printOutcome(w io.Writer, out *importer.Outcome, rep *report.Report) {
	s := rep.Summary

	printSection(w, fmt.Sprintf("%s ← %s", out.RosterSheet, out.ScoreSheet))
	printLabelValue(w, match.TierIdentifier.String(), s.Identifier)
	printLabelValue(w, match.TierExact.String(), s.Exact)
	printLabelValue(w, match.TierPartial.String(), s.Partial)
	printLabelValue(w, match.TierMinimal.String(), s.Minimal)
	printLabelValue(w, match.TierUnmatched.String(), s.Unmatched)
	printLabelValue(w, "unused", s.Unused)

	if s.Minimal > 0 {
		printSection(w, "To verify")

		for _, e := range rep.Entries {
			if e.Tier.Uncertain() {
				_, _ = fmt.Fprintf(w, "  row %-4d %s ", e.Row, e.Name)
				_, _ = dimColor.Fprintf(w, "← %s (row %d)\n", e.Matched, e.MatchedRow)
			}
		}
	}

	if s.Unmatched > 0 {
		printSection(w, "Unmatched")

		for _, e := range rep.Entries {
			if e.Tier != match.TierUnmatched {
				continue
			}

			_, _ = fmt.Fprintf(w, "  row %-4d %s", e.Row, displayName(e.Name, e.ID))
			if len(e.Suggestions) > 0 {
				_, _ = dimColor.Fprintf(w, " (closest: %s)", strings.Join(e.Suggestions, ", "))
			}

			_, _ = fmt.Fprintln(w)
		}
	}

	if s.Unused > 0 {
		printSection(w, "Unused scores")

		for _, c := range rep.Unused {
			_, _ = fmt.Fprintf(w, "  row %-4d %s ", c.Row, displayName(c.Name, c.ID))
			_, _ = dimColor.Fprintf(w, "%s\n", c.Score)
		}
	}

	_, _ = fmt.Fprintln(w)

	switch {
	case s.Errors > 0:
		printError(w, fmt.Sprintf("%d unresolved row(s), nothing written", s.Errors))
	case out.Written:
		printSuccess(w, "Wrote "+out.Output)
	default:
		printWarning(w, "Dry run, would write "+out.Output)
	}
}

func displayName(name string, id int64) string {
	if strings.TrimSpace(name) != "" {
		return name
	}

	if id != 0 {
		return fmt.Sprintf("#%d", id)
	}

	return "(no name)"
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
