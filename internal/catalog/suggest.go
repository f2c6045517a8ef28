package catalog

import (
	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance bounds how far a typo may be from a real id.
const maxSuggestDistance = 2

// Suggest returns the known group id closest to id, if any is within
// a small edit distance.
func Suggest(c Catalog, id GroupID) (GroupID, bool) {
	var (
		best     GroupID
		bestDist = maxSuggestDistance + 1
	)
	for _, g := range c.List() {
		d := levenshtein.ComputeDistance(string(id), string(g.ID))
		if d < bestDist {
			best, bestDist = g.ID, d
		}
	}
	if bestDist > maxSuggestDistance {
		return "", false
	}
	return best, true
}

// Resolve splits ids into those present in the catalog and those that are not.
func Resolve(c Catalog, ids []GroupID) (known, unknown []GroupID) {
	for _, id := range ids {
		if _, ok := c.Lookup(id); ok {
			known = append(known, id)
		} else {
			unknown = append(unknown, id)
		}
	}
	return known, unknown
}
