//    TopicRiver
//    Copyright: S Feldkamp 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writetempcsv(t *testing.T, contents string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "corpus.csv")
	require.NoError(t, os.WriteFile(fn, []byte(contents), 0644))
	return fn
}

func TestLoadCorpus(t *testing.T) {
	const GOOD = `id,description,date
d001,A sermon preached at Paules Crosse,1578
d002,"Histoire des navigations, avec figures",1642-01-01
d003,Verhandeling over de natuur,1759
`
	fn := writetempcsv(t, GOOD)

	dd, err := LoadCorpus(fn)
	require.NoError(t, err)
	require.Len(t, dd, 3)

	assert.Equal(t, "d001", dd[0].ID)
	assert.Equal(t, 1578, dd[0].Year)
	assert.Equal(t, "A sermon preached at Paules Crosse", dd[0].Text)
	assert.Equal(t, 1642, dd[1].Year)
	assert.Equal(t, 1759, dd[2].Year)
}

func TestLoadCorpusWithoutHeader(t *testing.T) {
	// a first row whose date cell carries a year is data, not column names
	const HEADERLESS = `d001,A sermon preached at Paules Crosse,1578
d002,Histoire des navigations,1642
`
	dd, err := LoadCorpus(writetempcsv(t, HEADERLESS))
	require.NoError(t, err)
	assert.Len(t, dd, 2)
}

func TestLoadCorpusRejectsBadRows(t *testing.T) {
	tests := map[string]string{
		"year out of range": "d001,Some description,1499\n",
		"future year":       "d001,Some description,1801\n",
		"no year at all":    "d001,Some description,undated\nd002,Another one,also undated\n",
		"too few columns":   "id,description,date\nd001,missing the date\n",
		"blank id":          "id,description,date\n ,Some description,1650\n",
		"empty file":        "",
		"header only":       "id,description,date\n",
	}

	for name, contents := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadCorpus(writetempcsv(t, contents))
			assert.Error(t, err)
		})
	}
}

func TestLoadCorpusMissingFile(t *testing.T) {
	_, err := LoadCorpus(filepath.Join(t.TempDir(), "no-such-file.csv"))
	assert.Error(t, err)
}

func TestExtractYear(t *testing.T) {
	good := map[string]int{
		"1578":          1578,
		"1642-01-01":    1642,
		"ca. 1700":      1700,
		"MDCLXVI, 1666": 1666,
		"1500":          1500,
		"1800":          1800,
	}
	for in, want := range good {
		y, err := ExtractYear(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, y, in)
	}

	bad := []string{"", "no year here", "157", "1499", "1801", "0999"}
	for _, in := range bad {
		_, err := ExtractYear(in)
		assert.Error(t, err, in)
	}
}

func TestDecade(t *testing.T) {
	tests := map[int]int{
		1743: 1740,
		1700: 1700,
		1709: 1700,
		1799: 1790,
		1500: 1500,
		1800: 1800,
	}
	for year, want := range tests {
		d := Document{ID: "x", Year: year}
		assert.Equal(t, want, d.Decade())
	}
}
