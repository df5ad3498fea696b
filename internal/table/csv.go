package table

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// readCSV reads a CSV file into a sheet named after the file.
// The separator (comma or semicolon) is guessed from the first line.
func readCSV(path string) (*Sheet, rune, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read %s: %w", path, err)
	}

	data = bytes.TrimPrefix(data, utf8BOM)
	comma := sniffComma(data)

	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = comma
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return NewSheet(sheetName(path), records), comma, nil
}

// sniffComma picks ';' when the first line holding a separator has more
// semicolons than commas. Spreadsheets set to a French locale export that way.
func sniffComma(data []byte) rune {
	for line := range bytes.Lines(data) {
		semicolons := bytes.Count(line, []byte{';'})
		commas := bytes.Count(line, []byte{','})

		if semicolons+commas == 0 {
			continue
		}

		if semicolons > commas {
			return ';'
		}

		break
	}

	return ','
}

func writeCSV(sheet *Sheet, comma rune, path string) error {
	var buf bytes.Buffer

	w := csv.NewWriter(&buf)
	w.Comma = comma

	if err := w.WriteAll(sheet.Records()); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
