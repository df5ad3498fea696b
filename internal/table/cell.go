package table

import (
	"regexp"
	"strconv"
	"strings"
)

// CellKind is the type of value held by a Cell.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellInt
	CellFloat
)

// Cell is a typed spreadsheet value.
type Cell struct {
	Kind  CellKind
	Text  string
	Int   int64
	Float float64
}

var numberPattern = regexp.MustCompile(`^[+-]?(\d+([.,]\d*)?|[.,]\d+)([eE][+-]?\d+)?$`)

// TextCell returns a text cell, or an empty cell for blank text.
func TextCell(s string) Cell {
	if strings.TrimSpace(s) == "" {
		return Cell{}
	}

	return Cell{Kind: CellText, Text: s}
}

// IntCell returns an integer cell.
func IntCell(n int64) Cell {
	return Cell{Kind: CellInt, Int: n}
}

// FloatCell returns a floating point cell.
func FloatCell(f float64) Cell {
	return Cell{Kind: CellFloat, Float: f}
}

// ParseCell infers the type of a raw cell value. Integers and decimals with
// either a dot or a comma separator are numbers; anything else is text.
func ParseCell(raw string) Cell {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Cell{}
	}

	if !numberPattern.MatchString(s) {
		return Cell{Kind: CellText, Text: s}
	}

	if n, err := strconv.ParseInt(strings.TrimPrefix(s, "+"), 10, 64); err == nil {
		return IntCell(n)
	}

	if f, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64); err == nil {
		return FloatCell(f)
	}

	return Cell{Kind: CellText, Text: s}
}

// IsEmpty reports whether the cell holds nothing.
func (c Cell) IsEmpty() bool { return c.Kind == CellEmpty }

// IsText reports whether the cell holds text.
func (c Cell) IsText() bool { return c.Kind == CellText }

// IsNumber reports whether the cell holds an integer or a float.
func (c Cell) IsNumber() bool { return c.Kind == CellInt || c.Kind == CellFloat }

// Number returns the numeric value, or 0 for non numeric cells.
func (c Cell) Number() float64 {
	switch c.Kind {
	case CellInt:
		return float64(c.Int)
	case CellFloat:
		return c.Float
	default:
		return 0
	}
}

// String renders the cell value.
func (c Cell) String() string {
	switch c.Kind {
	case CellText:
		return c.Text
	case CellInt:
		return strconv.FormatInt(c.Int, 10)
	case CellFloat:
		return strconv.FormatFloat(c.Float, 'f', -1, 64)
	default:
		return ""
	}
}

// Value returns the cell as the Go value a spreadsheet writer expects.
func (c Cell) Value() any {
	switch c.Kind {
	case CellText:
		return c.Text
	case CellInt:
		return c.Int
	case CellFloat:
		return c.Float
	default:
		return nil
	}
}
