// =============================================================================
// POS Report Processor - Aggregation
// =============================================================================
//
// Builds the two derived views of the merged report:
//   - the transaction summary: one row per distinct receipt number,
//     first row wins, dish-level columns dropped
//   - the dish breakdown: one row per cleaned dish name with quantity
//     (and optionally amount) summed across all receipts
//
// Both views keep keys in first-seen order so identical inputs always
// produce identical sheets.
//
// =============================================================================

package report

import (
	"strconv"
	"strings"
)

// FirstPerKey returns a table with the first row for each distinct value
// of keyCol, in first-seen key order, with dropCols removed. Rows with a
// blank key are skipped; they are continuation lines that were not
// forward-filled because the file started mid-receipt.
func FirstPerKey(t *Table, keyCol string, dropCols []string) *Table {
	out := New(t.Columns)
	out.Rows = make([]map[string]string, 0)

	seen := make(map[string]bool)
	for _, row := range t.Rows {
		key := row[keyCol]
		if IsBlank(key) || seen[key] {
			continue
		}
		seen[key] = true

		copied := make(map[string]string, len(row))
		for k, v := range row {
			copied[k] = v
		}
		out.Append(copied)
	}

	out.DropColumns(dropCols...)
	return out
}

// SumByKey groups rows by keyCol and sums each of sumCols per group. The
// result has the key column plus one column per summed field, keys in
// first-seen order. Values that do not parse as numbers count as zero;
// duplicate keys accumulate rather than overwrite. A blank key is a group
// like any other: names that clean down to nothing still carry
// quantities, and the breakdown total must always match the detail total.
func SumByKey(t *Table, keyCol string, sumCols []string) *Table {
	out := New(append([]string{keyCol}, sumCols...))

	totals := make(map[string][]float64)
	var order []string

	for _, row := range t.Rows {
		key := row[keyCol]
		sums, ok := totals[key]
		if !ok {
			sums = make([]float64, len(sumCols))
			totals[key] = sums
			order = append(order, key)
		}
		for i, col := range sumCols {
			sums[i] += ParseNumber(row[col])
		}
	}

	for _, key := range order {
		row := map[string]string{keyCol: key}
		for i, col := range sumCols {
			row[col] = FormatNumber(totals[key][i])
		}
		out.Append(row)
	}

	return out
}

// SumColumn totals one column across the whole table.
func SumColumn(t *Table, name string) float64 {
	total := 0.0
	for _, row := range t.Rows {
		total += ParseNumber(row[name])
	}
	return total
}

// ParseNumber parses a report cell as a float. Exports print thousands
// separators, so commas are stripped first. Blank or malformed cells
// parse as zero.
func ParseNumber(value string) float64 {
	value = strings.ReplaceAll(strings.TrimSpace(value), ",", "")
	if value == "" {
		return 0
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return f
}

// FormatNumber renders a float without trailing zeros.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
