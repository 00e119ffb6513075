package gen

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCatalog_ValidRecords_PreservesOrderAndCosts(t *testing.T) {
	// GIVEN a catalog with irregular whitespace and a blank line
	input := "429.mcf 3 7\n\n  462.libquantum\t0   4 \n470.lbm 8 0\n"

	// WHEN parsed
	c, err := ParseCatalog(strings.NewReader(input), "all")

	// THEN all three entries load in file order
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{ID: "429.mcf", CostA: 3, CostB: 7},
		{ID: "462.libquantum", CostA: 0, CostB: 4},
		{ID: "470.lbm", CostA: 8, CostB: 0},
	}, c.Entries())
	assert.Equal(t, 3, c.Len())
}

func TestParseCatalog_MalformedRecords_AllReported(t *testing.T) {
	tests := []struct {
		name   string
		record string
		reason string
	}{
		{"missing cost", "bench1 3", "want 3 fields"},
		{"extra field", "bench1 3 7 9", "want 3 fields"},
		{"non-integer costA", "bench1 x 7", "costA"},
		{"non-integer costB", "bench1 3 7.5", "costB"},
		{"negative cost", "bench1 -1 7", "non-negative"},
		{"delimiter in id", "bench-1 1 1", "must not contain"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// GIVEN a catalog whose second line is malformed
			input := "ok 1 1\n" + tt.record + "\n"

			// WHEN parsed
			_, err := ParseCatalog(strings.NewReader(input), "all")

			// THEN the load fails with a record error naming line 2
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedRecord))
			var mre *MalformedRecordError
			require.True(t, errors.As(err, &mre))
			assert.Equal(t, 2, mre.Line)
			assert.Equal(t, "all", mre.Source)
			assert.Contains(t, mre.Reason, tt.reason)
		})
	}
}

func TestParseCatalog_SeveralBadLines_EveryLineListed(t *testing.T) {
	// GIVEN three malformed lines among valid ones
	input := "a 1 1\nb 1\nc 2 2\nd x y\na 3 3\n"

	// WHEN parsed
	_, err := ParseCatalog(strings.NewReader(input), "all")

	// THEN each malformed line is reported, including the duplicate id
	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	require.Len(t, merr.Errors, 3)
	lines := make([]int, 0, 3)
	for _, e := range merr.Errors {
		var mre *MalformedRecordError
		require.True(t, errors.As(e, &mre))
		lines = append(lines, mre.Line)
	}
	assert.Equal(t, []int{2, 4, 5}, lines)
	assert.Contains(t, merr.Errors[2].Error(), "duplicate id")
}

func TestCatalog_Entries_ReturnsCopy(t *testing.T) {
	c := abcCatalog(t)
	entries := c.Entries()
	entries[0].CostA = 99

	if got, _ := c.Lookup("A"); got.CostA != 1 {
		t.Errorf("catalog mutated through Entries(): A.CostA = %d, want 1", got.CostA)
	}
}

func TestCatalog_Lookup(t *testing.T) {
	c := abcCatalog(t)

	e, ok := c.Lookup("B")
	assert.True(t, ok)
	assert.Equal(t, Entry{ID: "B", CostA: 2, CostB: 5}, e)

	_, ok = c.Lookup("Z")
	assert.False(t, ok)
}

func TestNewCatalog_RejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
	}{
		{"empty id", []Entry{{ID: ""}}},
		{"negative costB", []Entry{{ID: "a", CostB: -2}}},
		{"duplicate", []Entry{{ID: "a"}, {ID: "a"}}},
		{"whitespace id", []Entry{{ID: "a b"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.entries)
			if !errors.Is(err, ErrMalformedRecord) {
				t.Errorf("NewCatalog(%v) error = %v, want ErrMalformedRecord", tt.entries, err)
			}
		})
	}
}

func TestParseIDList_SeveralIDsPerLine_ZeroCosts(t *testing.T) {
	// GIVEN an id list mixing one and several ids per line
	input := "perlbench gcc\nmcf\n\n  astar  "

	// WHEN parsed
	c, err := ParseIDList(strings.NewReader(input), "c")

	// THEN every id loads with zero costs
	require.NoError(t, err)
	assert.Equal(t, []Entry{{ID: "perlbench"}, {ID: "gcc"}, {ID: "mcf"}, {ID: "astar"}}, c.Entries())
}

func TestParseIDList_DuplicateID_Malformed(t *testing.T) {
	_, err := ParseIDList(strings.NewReader("gcc mcf\ngcc\n"), "c")

	var mre *MalformedRecordError
	require.True(t, errors.As(err, &mre))
	assert.Equal(t, 2, mre.Line)
	assert.Equal(t, "gcc", mre.Record)
}

func TestLoadCatalog_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "all")
	require.NoError(t, os.WriteFile(path, []byte("x 1 2\ny 3 4\n"), 0o644))

	c, err := LoadCatalog(path)

	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
}

func TestLoadCatalog_MissingFile_NotAMalformedRecord(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "absent"))

	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrMalformedRecord))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
