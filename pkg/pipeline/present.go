package pipeline

// present reports whether an optional measurement carries a usable value.
// Zero is excluded here: the presence counters describe fields the
// visualization can plot on a log scale, where zero behaves like absence.
func present(v *float64) bool {
	return v != nil && *v != 0
}
