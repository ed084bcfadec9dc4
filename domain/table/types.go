package table

// Row represents a single data row as column header -> raw cell text
type Row map[string]string

// Table represents the complete raw tabular dataset: ordered column
// headers plus data rows in file order. The resolution pipeline treats
// it as read-only; it is owned by the loading adapter.
type Table struct {
	Headers []string // Column headers, in file order
	Rows    []Row    // Data rows, in file order
}

// HasColumn reports whether a column with the given header exists
func (t *Table) HasColumn(name string) bool {
	for _, header := range t.Headers {
		if header == name {
			return true
		}
	}
	return false
}

// Column returns the raw cells of one column in row order. Rows that
// lack the column contribute an empty cell.
func (t *Table) Column(name string) []string {
	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[name]
	}
	return values
}

// RowCount returns the number of data rows
func (t *Table) RowCount() int {
	return len(t.Rows)
}
