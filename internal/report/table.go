// =============================================================================
// POS Report Processor - Report Table
// =============================================================================
//
// In-memory tabular container for the merged report. A Table is an ordered
// column list plus an ordered list of rows keyed by header. Column order is
// first-seen across merged files; row order is input order. Everything the
// pipeline derives (summary, breakdown) is another Table.
//
// =============================================================================

package report

import "strings"

// Table is an ordered collection of rows sharing a column set.
type Table struct {
	// Columns in presentation order.
	Columns []string

	// Rows as header -> value maps. A row may lack entries for columns
	// merged in from other files; readers treat missing as "".
	Rows []map[string]string
}

// New creates an empty table with the given columns.
func New(columns []string) *Table {
	return &Table{Columns: append([]string(nil), columns...)}
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Append adds one row to the end of the table.
func (t *Table) Append(row map[string]string) {
	t.Rows = append(t.Rows, row)
}

// MergeColumns unions new columns into the table, preserving first-seen
// order. Files exported by different firmware revisions occasionally add
// trailing columns.
func (t *Table) MergeColumns(columns []string) {
	for _, col := range columns {
		if !t.HasColumn(col) {
			t.Columns = append(t.Columns, col)
		}
	}
}

// HasColumn reports whether the table has the named column.
func (t *Table) HasColumn(name string) bool {
	for _, col := range t.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// Value returns the cell value for a row and column, "" when absent.
func (t *Table) Value(row int, column string) string {
	return t.Rows[row][column]
}

// Column returns all values of one column in row order.
func (t *Table) Column(name string) []string {
	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[name]
	}
	return values
}

// DropColumns removes the named columns from the header and all rows.
// Unknown names are ignored.
func (t *Table) DropColumns(names ...string) {
	drop := make(map[string]bool, len(names))
	for _, name := range names {
		drop[name] = true
	}

	kept := t.Columns[:0]
	for _, col := range t.Columns {
		if !drop[col] {
			kept = append(kept, col)
		}
	}
	t.Columns = kept

	for _, row := range t.Rows {
		for name := range drop {
			delete(row, name)
		}
	}
}

// InsertColumnAfter places a new column immediately after an existing one.
// When the anchor is missing the column is appended at the end.
func (t *Table) InsertColumnAfter(after, name string) {
	if t.HasColumn(name) {
		return
	}
	for i, col := range t.Columns {
		if col == after {
			t.Columns = append(t.Columns[:i+1], append([]string{name}, t.Columns[i+1:]...)...)
			return
		}
	}
	t.Columns = append(t.Columns, name)
}

// ApplyToColumn rewrites every value of one column through fn.
func (t *Table) ApplyToColumn(name string, fn func(string) string) {
	if !t.HasColumn(name) {
		return
	}
	for _, row := range t.Rows {
		row[name] = fn(row[name])
	}
}

// AppendFrom concatenates another set of rows with its own header list
// into this table, unioning columns.
func (t *Table) AppendFrom(columns []string, rows []map[string]string) {
	t.MergeColumns(columns)
	t.Rows = append(t.Rows, rows...)
}

// Clone returns a deep copy of the table. Derived views mutate rows, and
// the detail sheet must keep the originals.
func (t *Table) Clone() *Table {
	out := New(t.Columns)
	out.Rows = make([]map[string]string, len(t.Rows))
	for i, row := range t.Rows {
		copied := make(map[string]string, len(row))
		for k, v := range row {
			copied[k] = v
		}
		out.Rows[i] = copied
	}
	return out
}

// IsBlank reports whether a cell is empty after trimming.
func IsBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}
