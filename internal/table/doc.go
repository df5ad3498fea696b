// Package table reads and writes the spreadsheets handled by the importer
// and locates the columns that hold identifiers, names and scores.
//
// Supported formats:
//   - XLSX workbooks (one file, one table per sheet)
//   - CSV files (one table per file, comma or semicolon separated)
package table
