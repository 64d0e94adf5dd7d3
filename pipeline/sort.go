package pipeline

import (
	"masterpos_server/structs"
	"strings"
)

// SortField names a sortable column of the product table.
type SortField string

const (
	SortByName     SortField = "name"
	SortByPrice    SortField = "price"
	SortByStock    SortField = "stock"
	SortByCategory SortField = "category"
)

// Direction of a sort.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Sort is the sort state of the product table.
type Sort struct {
	Field     SortField
	Direction Direction
}

// DefaultSort is what the table opens with.
func DefaultSort() Sort {
	return Sort{Field: SortByName, Direction: Ascending}
}

// ValidSortField reports whether the field is a sortable column.
func ValidSortField(field string) bool {
	switch SortField(field) {
	case SortByName, SortByPrice, SortByStock, SortByCategory:
		return true
	}
	return false
}

// Toggle returns the state that results from clicking a column header:
// same field flips the direction, a new field starts ascending.
func (s Sort) Toggle(field SortField) Sort {
	if s.Field == field {
		if s.Direction == Ascending {
			return Sort{Field: field, Direction: Descending}
		}
		return Sort{Field: field, Direction: Ascending}
	}
	return Sort{Field: field, Direction: Ascending}
}

// less compares two records on the sort field, ascending. Equal keys
// compare as not-less in both orders so a stable sort keeps their
// original relative order.
func (s Sort) less(a, b structs.Product) bool {
	switch s.Field {
	case SortByPrice:
		return a.Price < b.Price
	case SortByStock:
		return a.Stock < b.Stock
	case SortByCategory:
		return strings.ToLower(string(a.Category)) < strings.ToLower(string(b.Category))
	default:
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	}
}

// Less applies the direction on top of the field comparison.
func (s Sort) Less(a, b structs.Product) bool {
	if s.Direction == Descending {
		return s.less(b, a)
	}
	return s.less(a, b)
}
