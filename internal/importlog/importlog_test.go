package importlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntry(file string, rows int) Entry {
	return Entry{
		Timestamp: time.Date(2016, 5, 3, 10, 30, 0, 0, time.UTC),
		File:      file,
		Bank:      "bawagpsk",
		Account:   "main",
		Rows:      rows,
		First:     "2016-04-27",
		Last:      "2016-05-02",
	}
}

func TestAppendRead_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Append(dir, []Entry{testEntry("export-april.csv", 12)}))
	require.NoError(t, Append(dir, []Entry{testEntry("export-may.csv", 7)}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "export-april.csv", entries[0].File)
	assert.Equal(t, 12, entries[0].Rows)
	assert.Equal(t, "2016-04-27", entries[0].First)
	assert.Equal(t, "export-may.csv", entries[1].File)
	assert.True(t, entries[0].Timestamp.Equal(testEntry("", 0).Timestamp))
}

func TestRead_MissingFile(t *testing.T) {
	entries, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestAppend_WritesHeaderOnce(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Append(dir, []Entry{testEntry("a.csv", 1)}))
	require.NoError(t, Append(dir, []Entry{testEntry("b.csv", 2)}))

	data, err := os.ReadFile(filepath.Join(dir, "logs", "import-log.csv"))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "timestamp,file"))
}

func TestUnmarshalEntry_FieldCount(t *testing.T) {
	_, err := UnmarshalEntry([]string{"too", "few"})
	assert.Error(t, err)
}

func TestUnmarshalEntry_BadTimestamp(t *testing.T) {
	_, err := UnmarshalEntry([]string{"not-a-time", "f", "b", "a", "1", "", ""})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing timestamp")
}
