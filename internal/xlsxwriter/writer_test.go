package xlsxwriter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/pos-report-processor/internal/report"
)

func sampleSheets() []Sheet {
	detail := report.New([]string{"OR No", "Dishes", "Dish Quantities"})
	detail.Append(map[string]string{"OR No": "00125", "Dishes": "RICE", "Dish Quantities": "2"})
	detail.Append(map[string]string{"OR No": "00126", "Dishes": "CHICKEN WITH RICE", "Dish Quantities": "1"})

	breakdown := report.New([]string{"Dishes", "Dish Quantities"})
	breakdown.Append(map[string]string{"Dishes": "RICE", "Dish Quantities": "2"})

	return []Sheet{
		{Name: "DailyReport", Table: detail},
		{Name: "Dishes", Table: breakdown},
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, Write(path, sampleSheets()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"DailyReport", "Dishes"}, f.GetSheetList())

	rows, err := f.GetRows("DailyReport")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"OR No", "Dishes", "Dish Quantities"}, rows[0])

	// Leading-zero receipt numbers survive as text.
	cell, err := f.GetCellValue("DailyReport", "A2")
	require.NoError(t, err)
	assert.Equal(t, "00125", cell)

	// Quantities are real numbers.
	qty, err := f.GetCellValue("DailyReport", "C2")
	require.NoError(t, err)
	assert.Equal(t, "2", qty)
	typ, err := f.GetCellType("DailyReport", "C2")
	require.NoError(t, err)
	assert.NotEqual(t, excelize.CellTypeSharedString, typ)
}

func TestWrite_UnwritablePath(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "no", "such", "dir", "out.xlsx"), sampleSheets())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "saving workbook")
}

func TestWrite_NoSheets(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "out.xlsx"), nil)
	require.Error(t, err)
}

func TestCellValue(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  interface{}
	}{
		{name: "integer", input: "42", want: 42.0},
		{name: "decimal", input: "3.50", want: 3.5},
		{name: "leading_zero_id", input: "00125", want: "00125"},
		{name: "zero_point", input: "0.5", want: 0.5},
		{name: "plain_zero", input: "0", want: 0.0},
		{name: "text", input: "RICE", want: "RICE"},
		{name: "empty", input: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cellValue(tt.input))
		})
	}
}
