package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverInputFiles_SortedAndFiltered(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.xls", "a.xls", "c.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.xls"), 0755)) // dirs skipped

	files, err := DiscoverInputFiles(dir, []string{"*.xls"})
	require.NoError(t, err)

	require.Len(t, files, 2)
	assert.Equal(t, "a.xls", filepath.Base(files[0]))
	assert.Equal(t, "b.xls", filepath.Base(files[1]))
}

func TestDiscoverInputFiles_MultiplePatterns(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.xls", "b.tsv"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}

	files, err := DiscoverInputFiles(dir, []string{"*.xls", "*.tsv"})
	require.NoError(t, err)
	assert.Len(t, files, 2)
}

func TestDiscoverInputFiles_MissingDir(t *testing.T) {
	_, err := DiscoverInputFiles(filepath.Join(t.TempDir(), "nope"), []string{"*.xls"})
	require.Error(t, err)
}

func TestDiscoverInputFiles_NotADirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	_, err := DiscoverInputFiles(path, []string{"*.xls"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestGenerateOutputFileName(t *testing.T) {
	now := time.Date(2024, 5, 1, 13, 45, 30, 0, time.UTC)

	assert.Equal(t, "Daily_Report.xlsx", GenerateOutputFileName("Daily_Report.xlsx", now))
	assert.Equal(t, "report_20240501_134530.xlsx",
		GenerateOutputFileName("report_{timestamp}.xlsx", now))

	name := GenerateOutputFileName("{uuid}.xlsx", now)
	assert.Len(t, name, 36+len(".xlsx"))
	assert.NotEqual(t, name, GenerateOutputFileName("{uuid}.xlsx", now))
}

func TestFileExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	assert.False(t, FileExists(path))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	assert.True(t, FileExists(path))
}
