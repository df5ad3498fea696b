// Package importer copies the scores of a score sheet into a roster sheet.
//
// The input is either one XLSX workbook holding the roster as its first
// sheet and the scores as its second, or two CSV files given in that order.
// The roster sheet alone is written back next to the input, with the matched
// scores filled in and the name each score was taken from in an extra column.
package importer
