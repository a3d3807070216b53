// Package output writes the pipeline's final artifacts: the dataset JSON
// and the statistics report.
package output

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/stellarview/exomap/pkg/errors"
)

// File permissions for pipeline outputs.
const (
	dirPermissions  = 0o755
	filePermissions = 0o644
)

// EnsureDir creates dir and any missing parents.
func EnsureDir(dir string) error {
	return errors.WrapIO("create", dir, os.MkdirAll(dir, dirPermissions))
}

// WriteJSON marshals v with two-space indentation and writes it to path,
// creating parent directories as needed.
func WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.WrapParse("json", path, err)
	}
	return WriteText(path, append(data, '\n'))
}

// WriteText writes data to path, creating parent directories as needed.
func WriteText(path string, data []byte) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	return errors.WrapIO("write", path, os.WriteFile(path, data, filePermissions))
}
