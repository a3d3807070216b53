package catalog

import "strings"

// MakeID builds a stable, URL-safe identifier from a planet name.
// "Kepler-16 b" becomes "exo-kepler-16-b"; a "+" in the name (as in
// "PSR B1620-26+ b" style designations) is spelled out so the identifier
// stays safe in query strings.
func MakeID(name string) string {
	id := strings.ToLower(name)
	id = strings.ReplaceAll(id, " ", "-")
	id = strings.ReplaceAll(id, "+", "plus")
	return "exo-" + id
}
