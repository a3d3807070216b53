// Package narrative loads the curated notable-planet table merged by the
// enricher. Entries are keyed by the raw archive planet name.
package narrative

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/stellarview/exomap/pkg/catalog"
	"github.com/stellarview/exomap/pkg/errors"
)

// File is the on-disk shape of the narrative table.
type File struct {
	Planets map[string]catalog.Narrative `yaml:"planets"`
}

// Load reads the narrative table from a YAML file.
// Returns nil, nil if the file doesn't exist: a missing narrative table
// means no planet is notable, not a broken pipeline.
func Load(path string) (map[string]catalog.Narrative, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is pipeline configuration
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}

	return file.Planets, nil
}
