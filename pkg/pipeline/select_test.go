package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func rawRow(name, defaultFlag, controvFlag string) Row {
	return Row{
		colName:        name,
		colDefaultFlag: defaultFlag,
		colControvFlag: controvFlag,
	}
}

func TestSelect(t *testing.T) {
	t.Run("keeps only default non-controversial rows", func(t *testing.T) {
		rows := []Row{
			rawRow("Kepler-22 b", "1", "0"),
			rawRow("Kepler-22 b", "0", "0"), // alternative parameter set
			rawRow("HD 209458 b", "1", "1"), // disputed detection
			rawRow("51 Peg b", "1", "0"),
			rawRow("51 Peg b", "0", "1"),
		}

		selected, stats := Select(rows)

		assert.Len(t, selected, 2)
		assert.Equal(t, "Kepler-22 b", selected[0][colName])
		assert.Equal(t, "51 Peg b", selected[1][colName])

		assert.Equal(t, 5, stats.Total)
		assert.Equal(t, 3, stats.Default)
		assert.Equal(t, 2, stats.Selected)
		assert.Equal(t, 2, stats.UniquePlanets)
		assert.Equal(t, 0, stats.Duplicates())
	})

	t.Run("preserves input order", func(t *testing.T) {
		rows := []Row{
			rawRow("c", "1", "0"),
			rawRow("a", "1", "0"),
			rawRow("b", "1", "0"),
		}

		selected, _ := Select(rows)

		names := make([]string, len(selected))
		for i, row := range selected {
			names[i] = row[colName]
		}
		assert.Equal(t, []string{"c", "a", "b"}, names)
	})

	t.Run("duplicate canonical rows surface as a warning count", func(t *testing.T) {
		rows := []Row{
			rawRow("Kepler-10 b", "1", "0"),
			rawRow("Kepler-10 b", "1", "0"),
		}

		selected, stats := Select(rows)

		// Both rows still pass; the mismatch is a warning, not a drop.
		assert.Len(t, selected, 2)
		assert.Equal(t, 1, stats.Duplicates())
	})

	t.Run("tracks method distribution and year range", func(t *testing.T) {
		rows := []Row{
			{colName: "a", colDefaultFlag: "1", colControvFlag: "0", colMethod: "Transit", colYear: "2009"},
			{colName: "b", colDefaultFlag: "1", colControvFlag: "0", colMethod: "Transit", colYear: "2015"},
			{colName: "c", colDefaultFlag: "1", colControvFlag: "0", colMethod: "", colYear: ""},
		}

		_, stats := Select(rows)

		assert.Equal(t, 2, stats.Methods["Transit"])
		assert.Equal(t, 1, stats.Methods["Unknown"])
		assert.Equal(t, 2009, stats.YearMin)
		assert.Equal(t, 2015, stats.YearMax)
	})

	t.Run("empty input", func(t *testing.T) {
		selected, stats := Select(nil)
		assert.Empty(t, selected)
		assert.Equal(t, 0, stats.Total)
		assert.Equal(t, 0, stats.Duplicates())
	})
}
