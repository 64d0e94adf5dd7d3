package structs

import "strings"

// Product is the record shape the upstream catalog API returns. JSON
// field names follow the upstream payload exactly (camelCase).
type Product struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	ProductCode string   `json:"productCode,omitempty"`
	Barcode     string   `json:"barcode,omitempty"`
	Stock       int      `json:"stock"`
	Status      bool     `json:"status"`
	Category    Category `json:"category,omitempty"`
	Description string   `json:"description,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
}

// LowStock reports whether the product should carry the low stock flag.
func (p Product) LowStock() bool {
	return p.Stock < LowStockThreshold
}

// Image returns the product image, falling back to the placeholder.
func (p Product) Image() string {
	if strings.TrimSpace(p.ImageURL) == "" {
		return PlaceholderImageURL
	}
	return p.ImageURL
}

// StatusLabel renders the boolean status the way the dashboard and the
// CSV export display it.
func (p Product) StatusLabel() string {
	if p.Status {
		return "Active"
	}
	return "Inactive"
}
