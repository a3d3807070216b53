package archive

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stellarview/exomap/pkg/errors"
	"github.com/stellarview/exomap/pkg/pipeline"
)

const sampleExtract = `# This file was produced by the NASA Exoplanet Archive
# Wed Dec 24 03:14:15 2025
#
pl_name,hostname,default_flag,pl_orbper
Kepler-442 b,Kepler-442,1,112.3053
Kepler-442 b,Kepler-442,0,112.31
Proxima Cen b,Proxima Cen,1,11.18427
`

func TestParse(t *testing.T) {
	table, err := parse(strings.NewReader(sampleExtract), "test.csv")
	require.NoError(t, err)

	assert.Equal(t, []string{"pl_name", "hostname", "default_flag", "pl_orbper"}, table.Columns)
	require.Len(t, table.Rows, 3)

	assert.Equal(t, "Kepler-442 b", table.Rows[0]["pl_name"])
	assert.Equal(t, "1", table.Rows[0]["default_flag"])
	assert.Equal(t, "11.18427", table.Rows[2]["pl_orbper"])
}

func TestParseRaggedRows(t *testing.T) {
	// Short rows leave trailing columns unset rather than failing the read.
	table, err := parse(strings.NewReader("a,b,c\n1,2\n"), "test.csv")
	require.NoError(t, err)

	require.Len(t, table.Rows, 1)
	assert.Equal(t, "2", table.Rows[0]["b"])
	_, ok := table.Rows[0]["c"]
	assert.False(t, ok)
}

func TestParseEmpty(t *testing.T) {
	_, err := parse(strings.NewReader("# only comments\n"), "test.csv")
	require.Error(t, err)

	var parseErr *errors.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"NASA-Exoplanet-Archive_PS_2025-12-26.csv",
		"NASA-Exoplanet-Archive_PS_2025-11-02.csv",
		"unrelated.csv",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	path, err := Discover(dir)
	require.NoError(t, err)
	assert.Equal(t, "NASA-Exoplanet-Archive_PS_2025-11-02.csv", filepath.Base(path))
}

func TestDiscoverNotFound(t *testing.T) {
	_, err := Discover(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intermediate.csv")
	columns := []string{"pl_name", "pl_orbper"}
	rows := []pipeline.Row{
		{"pl_name": "Kepler-442 b", "pl_orbper": "112.3053", "ignored": "x"},
		{"pl_name": "Proxima Cen b", "pl_orbper": "11.18427"},
	}

	require.NoError(t, Write(path, columns, rows))

	table, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, columns, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "Proxima Cen b", table.Rows[1]["pl_name"])
	// Columns outside the requested set are not persisted.
	_, ok := table.Rows[0]["ignored"]
	assert.False(t, ok)
}
