// Package archive reads raw NASA Exoplanet Archive CSV extracts. It is a
// narrow collaborator of the pipeline: it discovers the extract file,
// skips the archive's comment preamble, and hands rows to the selector.
package archive

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/stellarview/exomap/pkg/errors"
	"github.com/stellarview/exomap/pkg/pipeline"
)

// Pattern matches the file names the archive's bulk download produces.
const Pattern = "NASA-Exoplanet-Archive_PS_*.csv"

// commentMarker introduces the metadata preamble the archive prepends to
// its CSV exports.
const commentMarker = '#'

// Table is a parsed extract: the header columns in file order plus one Row
// per data line.
type Table struct {
	Columns []string
	Rows    []pipeline.Row
}

// Discover locates the archive extract in dir. Multiple matches resolve to
// the lexically first, so re-runs are deterministic. No match is fatal for
// the pipeline and surfaces as a NotFoundError.
func Discover(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, Pattern))
	if err != nil {
		return "", errors.WrapIO("glob", dir, err)
	}
	if len(matches) == 0 {
		return "", errors.NewNotFoundError("NASA archive CSV", dir)
	}
	sort.Strings(matches)
	return matches[0], nil
}

// Read parses the extract at path. Comment lines are skipped, the first
// remaining line is the header, and every later line becomes a Row keyed
// by column name.
func Read(path string) (*Table, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from Discover, not user input
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close() //nolint:errcheck

	return parse(f, path)
}

func parse(r io.Reader, path string) (*Table, error) {
	reader := csv.NewReader(r)
	reader.Comment = commentMarker
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, errors.WrapParse("csv", path, err)
	}

	table := &Table{Columns: header}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.WrapParse("csv", path, err)
		}

		row := make(pipeline.Row, len(header))
		for i, column := range header {
			if i < len(record) {
				row[column] = record[i]
			}
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

// Write persists rows as a CSV with the given column order, used to keep
// the filtered intermediate around for inspection.
func Write(path string, columns []string, rows []pipeline.Row) error {
	f, err := os.Create(path) //nolint:gosec // path is pipeline-owned output
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	defer f.Close() //nolint:errcheck

	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		return errors.WrapIO("write", path, err)
	}
	record := make([]string, len(columns))
	for _, row := range rows {
		for i, column := range columns {
			record[i] = row[column]
		}
		if err := w.Write(record); err != nil {
			return errors.WrapIO("write", path, err)
		}
	}
	w.Flush()
	return errors.WrapIO("write", path, w.Error())
}
