package structs

// Category enum for products
type Category string

const (
	CategoryElectronics Category = "electronics"
	CategoryClothing    Category = "clothing"
	CategoryBooks       Category = "books"
	CategoryHome        Category = "home"
	CategorySports      Category = "sports"
)

// Categories lists every known product category.
var Categories = []Category{
	CategoryElectronics,
	CategoryClothing,
	CategoryBooks,
	CategoryHome,
	CategorySports,
}

// LowStockThreshold marks products that should be flagged as low stock.
const LowStockThreshold = 10

// PlaceholderImageURL is served when a product has no image of its own.
const PlaceholderImageURL = "/placeholder.svg"

// StatusActive and StatusInactive are the wire values of the tri-state
// status filter; the empty string acts as a wildcard.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)
