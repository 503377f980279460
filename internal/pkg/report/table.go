package report

// Table is the format-independent shape handed to the CSV, XLSX and PDF writers.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}
