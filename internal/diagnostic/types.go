package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"score-importer/internal/common"
)

// Diagnostic codes emitted by the merge.
const (
	CodeUnmatchedEntry         = "unmatched_entry"
	CodeVerifyMinimalMatch     = "verify_minimal_match"
	CodeEmptyName              = "empty_name"
	CodeUnusedCandidate        = "unused_candidate"
	CodeDuplicateCandidateID   = "duplicate_candidate_id"
	CodeDuplicateCandidateName = "duplicate_candidate_name"
	CodeScoreError             = "score_error"
)

// Diagnostics holds all diagnostic information from a merge.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity `json:"severity" yaml:"severity"`
	// Code is a unique identifier for this type of diagnostic.
	Code string `json:"code" yaml:"code"`
	// Message is the human-readable description.
	Message string `json:"message" yaml:"message"`
	// Sheet names the table the row belongs to (if any).
	Sheet string `json:"sheet,omitempty" yaml:"sheet,omitempty"`
	// Row is the 1-based row number in Sheet, or 0.
	Row int `json:"row,omitempty" yaml:"row,omitempty"`
	// Suggestions are potential fixes or alternatives.
	Suggestions []string `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Add appends a diagnostic to the list matching its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case SeverityError:
		d.Errors = append(d.Errors, diag)
	case SeverityWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, sheet string, row int) {
	d.Add(Diagnostic{Severity: SeverityWarning, Code: code, Message: message, Sheet: sheet, Row: row})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, sheet string, row int) {
	d.Add(Diagnostic{Severity: SeverityInfo, Code: code, Message: message, Sheet: sheet, Row: row})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// Escalate turns the warnings carrying one of codes into errors.
func (d *Diagnostics) Escalate(codes ...string) {
	kept := d.Warnings[:0]

	for _, w := range d.Warnings {
		if common.Contains(codes, w.Code) {
			w.Severity = SeverityError
			d.Errors = append(d.Errors, w)

			continue
		}

		kept = append(kept, w)
	}

	d.Warnings = kept
}

// All returns every diagnostic, errors first.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)
	all = append(all, d.Infos...)

	return all
}

// ByCode returns the diagnostics of any severity with the given code.
func (d *Diagnostics) ByCode(code string) []Diagnostic {
	var out []Diagnostic

	for _, diag := range d.All() {
		if diag.Code == code {
			out = append(out, diag)
		}
	}

	return out
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Sheet != "" {
		prefix = append(prefix, "["+d.Sheet+"]")
	}

	if d.Row > 0 {
		prefix = append(prefix, fmt.Sprintf("row %d", d.Row))
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
