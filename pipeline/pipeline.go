package pipeline

import (
	"masterpos_server/structs"
	"sort"
)

// Apply runs the filter and sort stages over the full record set and
// returns a fresh slice; the input is never mutated. Safe for empty
// and nil input.
func Apply(records []structs.Product, filter Filter, s Sort) []structs.Product {
	out := make([]structs.Product, 0, len(records))
	for _, p := range records {
		if filter.Matches(p) {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return s.Less(out[i], out[j])
	})
	return out
}
