package table

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned for files that are neither CSV nor XLSX.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Format is the on-disk format of a workbook.
type Format int

const (
	FormatCSV Format = iota
	FormatXLSX
)

// String returns the usual file extension of the format, without the dot.
func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatXLSX:
		return "xlsx"
	default:
		return "unknown"
	}
}

// FormatOf returns the format matching the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	default:
		return 0, fmt.Errorf("%w: %s (use .xlsx or .csv)", ErrUnsupportedFormat, path)
	}
}

// Workbook is an ordered set of sheets read from one or more files.
type Workbook struct {
	// Path is the first file the workbook was read from.
	Path string
	// Format is the format of the source files.
	Format Format
	// Comma is the CSV field separator, 0 for non-CSV workbooks.
	Comma rune
	// Sheets holds the tables, in file or tab order.
	Sheets []*Sheet
}

// Open reads one XLSX workbook, or one sheet per CSV file.
func Open(paths ...string) (*Workbook, error) {
	if len(paths) == 0 {
		return nil, errors.New("no input file")
	}

	format, err := FormatOf(paths[0])
	if err != nil {
		return nil, err
	}

	for _, p := range paths[1:] {
		other, err := FormatOf(p)
		if err != nil {
			return nil, err
		}

		if other != format || format == FormatXLSX {
			return nil, fmt.Errorf("%w: give one .xlsx file or several .csv files", ErrUnsupportedFormat)
		}
	}

	wb := &Workbook{Path: paths[0], Format: format}

	switch format {
	case FormatXLSX:
		wb.Sheets, err = readXLSX(paths[0])
		if err != nil {
			return nil, err
		}

	default:
		for _, p := range paths {
			sheet, comma, err := readCSV(p)
			if err != nil {
				return nil, err
			}

			if wb.Comma == 0 {
				wb.Comma = comma
			}

			wb.Sheets = append(wb.Sheets, sheet)
		}
	}

	return wb, nil
}

// Save writes the sheets of wb to path, in the format given by its extension.
// CSV output holds the first sheet only.
func Save(wb *Workbook, path string) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}

	if len(wb.Sheets) == 0 {
		return errors.New("workbook has no sheet to save")
	}

	switch format {
	case FormatXLSX:
		return writeXLSX(wb.Sheets, path)
	default:
		comma := wb.Comma
		if comma == 0 {
			comma = ','
		}

		return writeCSV(wb.Sheets[0], comma, path)
	}
}

// OutputPath inserts suffix between the stem and the extension of path.
func OutputPath(path, suffix string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + suffix + ext
}

// sheetName derives a sheet name from a file path.
func sheetName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
