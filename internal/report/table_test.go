package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_AppendFrom_UnionsColumns(t *testing.T) {
	tbl := New(nil)
	tbl.AppendFrom([]string{"A", "B"}, []map[string]string{
		{"A": "1", "B": "2"},
	})
	tbl.AppendFrom([]string{"A", "C"}, []map[string]string{
		{"A": "3", "C": "4"},
	})

	assert.Equal(t, []string{"A", "B", "C"}, tbl.Columns)
	require.Equal(t, 2, tbl.Len())
	assert.Equal(t, "2", tbl.Value(0, "B"))
	assert.Equal(t, "", tbl.Value(1, "B")) // missing reads as empty
	assert.Equal(t, "4", tbl.Value(1, "C"))
}

func TestTable_DropColumns(t *testing.T) {
	tbl := New([]string{"A", "B", "C"})
	tbl.Append(map[string]string{"A": "1", "B": "2", "C": "3"})

	tbl.DropColumns("B", "NotThere")

	assert.Equal(t, []string{"A", "C"}, tbl.Columns)
	_, exists := tbl.Rows[0]["B"]
	assert.False(t, exists)
}

func TestTable_InsertColumnAfter(t *testing.T) {
	tbl := New([]string{"A", "B"})

	tbl.InsertColumnAfter("A", "X")
	assert.Equal(t, []string{"A", "X", "B"}, tbl.Columns)

	// Missing anchor appends at the end.
	tbl.InsertColumnAfter("Nope", "Y")
	assert.Equal(t, []string{"A", "X", "B", "Y"}, tbl.Columns)

	// Existing column is not duplicated.
	tbl.InsertColumnAfter("A", "B")
	assert.Equal(t, []string{"A", "X", "B", "Y"}, tbl.Columns)
}

func TestTable_ApplyToColumn(t *testing.T) {
	tbl := New([]string{"A"})
	tbl.Append(map[string]string{"A": "x"})
	tbl.Append(map[string]string{"A": "y"})

	tbl.ApplyToColumn("A", func(s string) string { return s + "!" })
	assert.Equal(t, []string{"x!", "y!"}, tbl.Column("A"))

	// Unknown column is a no-op.
	tbl.ApplyToColumn("B", func(s string) string { return "boom" })
	assert.Equal(t, []string{"A"}, tbl.Columns)
}

func TestTable_Clone_IsIndependent(t *testing.T) {
	tbl := New([]string{"A"})
	tbl.Append(map[string]string{"A": "1"})

	cp := tbl.Clone()
	cp.Rows[0]["A"] = "changed"
	cp.DropColumns("A")

	assert.Equal(t, "1", tbl.Value(0, "A"))
	assert.Equal(t, []string{"A"}, tbl.Columns)
}

func TestTable_ForwardFill(t *testing.T) {
	tbl := New([]string{"Date", "OR No", "Dishes"})
	tbl.Append(map[string]string{"Date": "2024-05-01", "OR No": "001", "Dishes": "Rice"})
	tbl.Append(map[string]string{"Date": "", "OR No": "", "Dishes": "Chicken"})
	tbl.Append(map[string]string{"Date": "2024-05-02", "OR No": "002", "Dishes": "Fish"})
	tbl.Append(map[string]string{"Date": " ", "OR No": "", "Dishes": "Soup"})

	tbl.ForwardFill([]string{"Date", "OR No", "Missing"})

	assert.Equal(t, []string{"2024-05-01", "2024-05-01", "2024-05-02", "2024-05-02"}, tbl.Column("Date"))
	assert.Equal(t, []string{"001", "001", "002", "002"}, tbl.Column("OR No"))
	// Untouched column keeps its values.
	assert.Equal(t, "Soup", tbl.Value(3, "Dishes"))
}

func TestTable_DeriveDateTime(t *testing.T) {
	layouts := []string{"2006-01-02 15:04:05", "2006-01-02"}

	tbl := New([]string{"Date", "OR No"})
	tbl.Append(map[string]string{"Date": "2024-05-01 13:45:00", "OR No": "001"})
	tbl.Append(map[string]string{"Date": "2024-05-02", "OR No": "002"})
	tbl.Append(map[string]string{"Date": "not a date", "OR No": "003"})

	parsed := tbl.DeriveDateTime("Date", "DateTime", layouts)

	assert.Equal(t, 2, parsed)
	assert.Equal(t, []string{"Date", "DateTime", "OR No"}, tbl.Columns)
	assert.Equal(t, "2024-05-01 13:45:00", tbl.Value(0, "DateTime"))
	assert.Equal(t, "2024-05-02 00:00:00", tbl.Value(1, "DateTime"))
	assert.Equal(t, "", tbl.Value(2, "DateTime"))
}
