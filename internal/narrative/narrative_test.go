package narrative

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stellarview/exomap/pkg/errors"
)

const sampleTable = `planets:
  "TRAPPIST-1 e":
    isNotable: true
    notableReason: "Potentially habitable"
    description: "One of seven Earth-sized worlds in the TRAPPIST-1 system."
    sources:
      - "https://exoplanetarchive.ipac.caltech.edu/overview/TRAPPIST-1"
  "51 Peg b":
    isNotable: true
    notableReason: "First exoplanet around a Sun-like star"
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notable-planets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleTable), 0o644))

	narratives, err := Load(path)
	require.NoError(t, err)
	require.Len(t, narratives, 2)

	entry, ok := narratives["TRAPPIST-1 e"]
	require.True(t, ok)
	assert.True(t, entry.IsNotable)
	assert.Equal(t, "Potentially habitable", entry.NotableReason)
	require.Len(t, entry.Sources, 1)

	// Optional keys stay zero-valued.
	assert.Empty(t, narratives["51 Peg b"].Description)
	assert.Nil(t, narratives["51 Peg b"].Sources)
}

func TestLoadMissingFile(t *testing.T) {
	narratives, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Nil(t, narratives)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("planets: [not: a: map"), 0o644))

	_, err := Load(path)
	require.Error(t, err)

	var parseErr *errors.ParseError
	assert.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "yaml", parseErr.Format)
}
