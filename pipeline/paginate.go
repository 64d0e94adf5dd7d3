package pipeline

import "masterpos_server/structs"

// PageSizes are the page sizes the table offers.
var PageSizes = []int{5, 10, 20, 50}

// DefaultPageSize is used when a requested size is not offered.
const DefaultPageSize = 10

// Pagination describes the window that was produced.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

// NormalizePageSize maps any requested size onto an offered one.
func NormalizePageSize(size int) int {
	for _, s := range PageSizes {
		if s == size {
			return size
		}
	}
	return DefaultPageSize
}

// Paginate slices the 1-indexed window [ (page-1)*size, page*size ) out
// of the filtered and sorted set. An empty set still reports one page.
// A page beyond the end is clamped to the last page, so shrinking the
// filter can never strand a client on an empty out-of-range page.
// Callers that only offer the listed page sizes normalize beforehand;
// any positive size works here.
func Paginate(records []structs.Product, page, size int) ([]structs.Product, Pagination) {
	if size < 1 {
		size = DefaultPageSize
	}

	totalPages := (len(records) + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * size
	end := start + size
	if start > len(records) {
		start = len(records)
	}
	if end > len(records) {
		end = len(records)
	}

	window := make([]structs.Product, end-start)
	copy(window, records[start:end])

	return window, Pagination{
		Page:       page,
		PageSize:   size,
		TotalItems: len(records),
		TotalPages: totalPages,
	}
}
