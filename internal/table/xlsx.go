package table

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// readXLSX reads every sheet of a workbook, in tab order.
func readXLSX(path string) (sheets []*Sheet, err error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q of %s: %w", name, path, err)
		}

		sheets = append(sheets, NewSheet(name, rows))
	}

	return sheets, nil
}

// writeXLSX writes sheets to a new workbook.
func writeXLSX(sheets []*Sheet, path string) (err error) {
	f := excelize.NewFile()

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet.Name); err != nil {
				return fmt.Errorf("failed to name sheet %q: %w", sheet.Name, err)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			return fmt.Errorf("failed to add sheet %q: %w", sheet.Name, err)
		}

		if err := writeSheet(f, sheet); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

func writeSheet(f *excelize.File, sheet *Sheet) error {
	for r, row := range sheet.Rows {
		for c, cell := range row {
			if cell.IsEmpty() {
				continue
			}

			axis, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}

			if err := f.SetCellValue(sheet.Name, axis, cell.Value()); err != nil {
				return fmt.Errorf("failed to set %s!%s: %w", sheet.Name, axis, err)
			}
		}
	}

	return nil
}
