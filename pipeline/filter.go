// Package pipeline implements the in-memory list engine of the product
// table: filter, sort and paginate over the full record set. Everything
// here is pure; the same inputs always produce the same page.
package pipeline

import (
	"masterpos_server/structs"
	"strings"
)

// Range bounds the dashboard sliders ship with. A filter only counts as
// active when it narrows beyond these.
const (
	RangeMin = 0
	RangeMax = 1000
)

// Filter is the full filter state of the product table. All
// predicates are ANDed; the zero values of the text fields act as
// wildcards, range bounds are inclusive.
type Filter struct {
	SearchTerm string
	Category   string
	Status     string // "active", "inactive" or "" for all
	PriceMin   float64
	PriceMax   float64
	StockMin   int
	StockMax   int
}

// DefaultFilter returns the filter the table starts with: everything
// passes.
func DefaultFilter() Filter {
	return Filter{
		PriceMin: RangeMin,
		PriceMax: RangeMax,
		StockMin: RangeMin,
		StockMax: RangeMax,
	}
}

// Matches reports whether a single record passes every predicate.
func (f Filter) Matches(p structs.Product) bool {
	if !f.matchesSearch(p) {
		return false
	}
	if f.Category != "" && string(p.Category) != f.Category {
		return false
	}
	switch f.Status {
	case structs.StatusActive:
		if !p.Status {
			return false
		}
	case structs.StatusInactive:
		if p.Status {
			return false
		}
	}
	if p.Price < f.PriceMin || p.Price > f.PriceMax {
		return false
	}
	if p.Stock < f.StockMin || p.Stock > f.StockMax {
		return false
	}
	return true
}

// matchesSearch is an any-of match: the term may appear in the name,
// the product code or the barcode, case-insensitively.
func (f Filter) matchesSearch(p structs.Product) bool {
	term := strings.ToLower(strings.TrimSpace(f.SearchTerm))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.ProductCode), term) ||
		strings.Contains(strings.ToLower(p.Barcode), term)
}

// ActiveCount counts the predicates that narrow beyond the defaults.
// This is the number shown on the filter badge.
func (f Filter) ActiveCount() int {
	count := 0
	if f.Category != "" {
		count++
	}
	if f.Status != "" {
		count++
	}
	if f.PriceMin > RangeMin || f.PriceMax < RangeMax {
		count++
	}
	if f.StockMin > RangeMin || f.StockMax < RangeMax {
		count++
	}
	if strings.TrimSpace(f.SearchTerm) != "" {
		count++
	}
	return count
}
