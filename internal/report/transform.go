// =============================================================================
// POS Report Processor - Table Transforms
// =============================================================================
//
// Row-level transforms applied to the merged table before the derived
// views are built: forward-filling the columns the terminal leaves blank
// on continuation lines, and deriving a parsed DateTime column from the
// textual date.
//
// =============================================================================

package report

import "time"

// ForwardFill propagates the last non-blank value of each listed column
// down the table. The terminal only prints receipt-level fields (date,
// cashier, transaction number) on the first line of a receipt; follow-up
// dish lines leave them blank.
func (t *Table) ForwardFill(columns []string) {
	for _, col := range columns {
		if !t.HasColumn(col) {
			continue
		}
		last := ""
		for _, row := range t.Rows {
			if IsBlank(row[col]) {
				row[col] = last
			} else {
				last = row[col]
			}
		}
	}
}

// DeriveDateTime parses the date column with the given layouts and writes
// the result into a new column inserted right after it, formatted as
// "2006-01-02 15:04:05". Cells that parse with none of the layouts stay
// empty. Returns the number of rows that parsed.
func (t *Table) DeriveDateTime(dateCol, newCol string, layouts []string) int {
	if !t.HasColumn(dateCol) {
		return 0
	}

	t.InsertColumnAfter(dateCol, newCol)

	parsed := 0
	for _, row := range t.Rows {
		ts, ok := parseDate(row[dateCol], layouts)
		if !ok {
			row[newCol] = ""
			continue
		}
		row[newCol] = ts.Format("2006-01-02 15:04:05")
		parsed++
	}
	return parsed
}

// parseDate tries each layout in order.
func parseDate(value string, layouts []string) (time.Time, bool) {
	if IsBlank(value) {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
