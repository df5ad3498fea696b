// Package report exports a merge result as YAML or JSON so that the pairs
// made by the name matcher can be reviewed outside the spreadsheet.
package report
