package services

import (
	"masterpos_server/store"
	"strconv"

	"github.com/MonkyMars/gecho"
)

// DashboardService renders the presentation shell as data: the stat
// cards above the table and the sidebar navigation tree. Card values
// are derived live from the loaded record set; the trend deltas are the
// dashboard's static placeholders.
type DashboardService struct {
	logger *gecho.Logger
	store  *store.Store
}

func NewDashboardService(logger *gecho.Logger, st *store.Store) *DashboardService {
	return &DashboardService{logger: logger, store: st}
}

type StatCard struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Change string `json:"change"`
	Trend  string `json:"trend"` // "up" or "down"
}

// Stats builds the stat card row.
func (ds *DashboardService) Stats() []StatCard {
	total, active, inactive, lowStock := 0, 0, 0, 0
	for _, p := range ds.store.Snapshot() {
		total++
		if p.Status {
			active++
		} else {
			inactive++
		}
		if p.LowStock() {
			lowStock++
		}
	}

	return []StatCard{
		{Title: "Total Products", Value: strconv.Itoa(total), Change: "+15%", Trend: "up"},
		{Title: "Active Products", Value: strconv.Itoa(active), Change: "+24%", Trend: "up"},
		{Title: "Inactive Products", Value: strconv.Itoa(inactive), Change: "-4%", Trend: "down"},
		{Title: "Low Stock", Value: strconv.Itoa(lowStock), Change: "+9%", Trend: "up"},
	}
}

type NavItem struct {
	Label  string `json:"label"`
	Indent bool   `json:"indent,omitempty"`
	Badge  string `json:"badge,omitempty"`
}

type NavSection struct {
	Title string    `json:"title"`
	Items []NavItem `json:"items"`
}

// Navigation returns the sidebar tree. The labels come straight from
// the dashboard markup; nothing here is dynamic yet.
func (ds *DashboardService) Navigation() []NavSection {
	return []NavSection{
		{
			Title: "Main Menu",
			Items: []NavItem{
				{Label: "Dashboard"},
				{Label: "Products"},
				{Label: "All Products", Indent: true},
				{Label: "Add New Product", Indent: true},
				{Label: "Tags", Indent: true},
				{Label: "Categories", Indent: true},
				{Label: "Sub Categories", Indent: true},
				{Label: "Brands", Indent: true},
				{Label: "Scan Barcode", Indent: true},
				{Label: "Import Products", Indent: true},
			},
		},
		{
			Title: "Analytics",
			Items: []NavItem{
				{Label: "Sales", Badge: "42"},
				{Label: "Point of Sale"},
				{Label: "Leaderboards"},
				{Label: "Orders"},
				{Label: "Refunds"},
				{Label: "Taxes"},
				{Label: "Stock"},
			},
		},
		{
			Title: "Apps",
			Items: []NavItem{
				{Label: "Chat", Badge: "80"},
				{Label: "Calendar"},
				{Label: "Email"},
			},
		},
		{
			Title: "Settings",
			Items: []NavItem{
				{Label: "Settings"},
				{Label: "Log Out"},
			},
		},
	}
}
