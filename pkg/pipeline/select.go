package pipeline

// SelectStats reports what the selector saw and kept.
type SelectStats struct {
	// Total is the number of raw rows read, across all parameter sets.
	Total int

	// Default is the number of rows flagged as the canonical parameter set.
	Default int

	// Selected is the number of rows kept after dropping controversial
	// detections.
	Selected int

	// UniquePlanets is the number of distinct planet names among the
	// selected rows.
	UniquePlanets int

	// Methods counts selected rows per raw detection-method string.
	Methods map[string]int

	// YearMin and YearMax bound the discovery years seen among selected
	// rows; both are zero when no row carried a parseable year.
	YearMin int
	YearMax int
}

// Duplicates returns how many selected rows share a planet name with
// another selected row. A non-zero value means the archive contains more
// than one canonical parameter set for some planet, which would silently
// double that planet downstream. It is reported as a warning, never an
// abort.
func (s SelectStats) Duplicates() int {
	return s.Selected - s.UniquePlanets
}

// Select filters raw archive rows down to one canonical row per planet:
// rows whose default flag is set and whose detection is not disputed.
// The filter is stable; survivors keep their input order.
func Select(rows []Row) ([]Row, SelectStats) {
	stats := SelectStats{Methods: make(map[string]int)}
	names := make(map[string]struct{})

	selected := make([]Row, 0, len(rows))
	for _, row := range rows {
		stats.Total++

		if row[colDefaultFlag] != "1" {
			continue
		}
		stats.Default++

		if row[colControvFlag] == "1" {
			continue
		}

		selected = append(selected, row)
		stats.Selected++
		names[row[colName]] = struct{}{}

		method := row[colMethod]
		if method == "" {
			method = "Unknown"
		}
		stats.Methods[method]++

		if year := parseYear(row[colYear]); year != nil {
			if stats.YearMin == 0 || *year < stats.YearMin {
				stats.YearMin = *year
			}
			if *year > stats.YearMax {
				stats.YearMax = *year
			}
		}
	}

	stats.UniquePlanets = len(names)
	return selected, stats
}
