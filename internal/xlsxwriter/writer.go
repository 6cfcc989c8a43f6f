// =============================================================================
// POS Report Processor - Workbook Writer
// =============================================================================
//
// Writes the three report tables as named sheets of a single XLSX
// workbook. Headers go in row 1, data rows follow in table order. Cells
// that parse cleanly as numbers are written as numbers so spreadsheet
// formulas work on the quantity and amount columns; everything else is
// written as text.
//
// =============================================================================

package xlsxwriter

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"gitlab.com/tozd/go/errors"

	"github.com/ginjaninja78/pos-report-processor/internal/report"
)

// Sheet pairs a sheet name with the table to write into it.
type Sheet struct {
	Name  string
	Table *report.Table
}

// Write creates a workbook at path containing the given sheets, in order.
// The first sheet is the active one. An unwritable path is the one fatal
// error of the pipeline and is returned wrapped.
func Write(path string, sheets []Sheet) (err error) {
	if len(sheets) == 0 {
		return errors.New("no sheets to write")
	}

	f := excelize.NewFile()
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = errors.Errorf("closing workbook: %w", closeErr)
		}
	}()

	for i, sheet := range sheets {
		if i == 0 {
			// Rename the default sheet instead of adding one.
			if err := f.SetSheetName("Sheet1", sheet.Name); err != nil {
				return errors.Errorf("naming sheet %q: %w", sheet.Name, err)
			}
		} else {
			if _, err := f.NewSheet(sheet.Name); err != nil {
				return errors.Errorf("creating sheet %q: %w", sheet.Name, err)
			}
		}

		if err := writeTable(f, sheet.Name, sheet.Table); err != nil {
			return errors.Errorf("writing sheet %q: %w", sheet.Name, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return errors.Errorf("saving workbook to %s: %w", path, err)
	}
	return nil
}

// writeTable writes headers and rows of one table into a sheet.
func writeTable(f *excelize.File, sheetName string, t *report.Table) error {
	header := make([]interface{}, len(t.Columns))
	for i, col := range t.Columns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}

	for r, row := range t.Rows {
		cells := make([]interface{}, len(t.Columns))
		for c, col := range t.Columns {
			cells[c] = cellValue(row[col])
		}
		start, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, start, &cells); err != nil {
			return err
		}
	}
	return nil
}

// cellValue converts a string cell to a number when it is unambiguously
// numeric. Values with leading zeros (receipt numbers like "00125") stay
// text so the identifier survives a round trip through the spreadsheet.
func cellValue(value string) interface{} {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}
	if len(trimmed) > 1 && trimmed[0] == '0' && !strings.HasPrefix(trimmed, "0.") {
		return value
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return f
	}
	return value
}
