package handling

import (
	"fmt"
	"masterpos_server/config"
	"masterpos_server/lib"
	"masterpos_server/pipeline"
	"masterpos_server/services"
	"masterpos_server/structs"
	"net/http"
	"strconv"
	"strings"
)

// ParseListOptions parses HTTP query parameters into the pipeline's
// list options. Absent parameters keep the table defaults: the
// everything-passes filter, name ascending, page 1.
func ParseListOptions(r *http.Request) (services.ListOptions, error) {
	query := r.URL.Query()

	opts := services.ListOptions{
		Filter:   pipeline.DefaultFilter(),
		Sort:     pipeline.DefaultSort(),
		Page:     1,
		PageSize: config.GetConfig().Table.DefaultPageSize,
	}

	// Early return if no query params
	if len(query) == 0 {
		return opts, nil
	}

	var err error

	// Parse pagination parameters
	if page := query.Get("page"); page != "" {
		if opts.Page, err = strconv.Atoi(page); err != nil {
			return opts, fmt.Errorf("invalid page: %w", err)
		}
	}

	if pageSize := query.Get("page_size"); pageSize != "" {
		size, err := strconv.Atoi(pageSize)
		if err != nil {
			return opts, fmt.Errorf("invalid page_size: %w", err)
		}
		// The table only offers 5/10/20/50; anything else falls back.
		opts.PageSize = pipeline.NormalizePageSize(size)
	}

	// Parse filter parameters
	if search := query.Get("search"); search != "" {
		opts.Filter.SearchTerm = lib.SanitizeString(search)
	}

	if category := query.Get("category"); category != "" {
		opts.Filter.Category = lib.SanitizeString(strings.ToLower(category))
	}

	if status := query.Get("status"); status != "" {
		status = strings.ToLower(lib.SanitizeString(status))
		if status != structs.StatusActive && status != structs.StatusInactive {
			return opts, fmt.Errorf("invalid status: %q", status)
		}
		opts.Filter.Status = status
	}

	if minPrice := query.Get("min_price"); minPrice != "" {
		if opts.Filter.PriceMin, err = strconv.ParseFloat(minPrice, 64); err != nil {
			return opts, fmt.Errorf("invalid min_price: %w", err)
		}
	}

	if maxPrice := query.Get("max_price"); maxPrice != "" {
		if opts.Filter.PriceMax, err = strconv.ParseFloat(maxPrice, 64); err != nil {
			return opts, fmt.Errorf("invalid max_price: %w", err)
		}
	}

	if minStock := query.Get("min_stock"); minStock != "" {
		if opts.Filter.StockMin, err = strconv.Atoi(minStock); err != nil {
			return opts, fmt.Errorf("invalid min_stock: %w", err)
		}
	}

	if maxStock := query.Get("max_stock"); maxStock != "" {
		if opts.Filter.StockMax, err = strconv.Atoi(maxStock); err != nil {
			return opts, fmt.Errorf("invalid max_stock: %w", err)
		}
	}

	// Parse sorting parameters
	if sortBy := query.Get("sort_by"); sortBy != "" {
		sortBy = strings.ToLower(lib.SanitizeString(sortBy))
		if !pipeline.ValidSortField(sortBy) {
			return opts, fmt.Errorf("invalid sort_by: %q", sortBy)
		}
		opts.Sort.Field = pipeline.SortField(sortBy)
	}

	if direction := query.Get("sort_direction"); direction != "" {
		switch strings.ToLower(lib.SanitizeString(direction)) {
		case string(pipeline.Ascending):
			opts.Sort.Direction = pipeline.Ascending
		case string(pipeline.Descending):
			opts.Sort.Direction = pipeline.Descending
		default:
			return opts, fmt.Errorf("invalid sort_direction: %q", direction)
		}
	}

	return opts, nil
}
