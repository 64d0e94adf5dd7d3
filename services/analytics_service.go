package services

import (
	"github.com/MonkyMars/gecho"
)

// AnalyticsService serves the analytics view. The chart data is the
// dashboard's static mock set; unlike the product table, this view
// carries an explicit success flag in its payload.
type AnalyticsService struct {
	logger *gecho.Logger
}

func NewAnalyticsService(logger *gecho.Logger) *AnalyticsService {
	return &AnalyticsService{logger: logger}
}

type MonthlySales struct {
	Month  string `json:"month"`
	Sales  int    `json:"sales"`
	Orders int    `json:"orders"`
}

type CategoryShare struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

type TopProduct struct {
	Name    string `json:"name"`
	Sales   int    `json:"sales"`
	Revenue int    `json:"revenue"`
}

type KPI struct {
	Label  string  `json:"label"`
	Value  string  `json:"value"`
	Change float64 `json:"change"` // percent versus last month
}

type AnalyticsReport struct {
	Success      bool            `json:"success"`
	SalesByMonth []MonthlySales  `json:"sales_by_month"`
	Categories   []CategoryShare `json:"categories"`
	TopProducts  []TopProduct    `json:"top_products"`
	KPIs         []KPI           `json:"kpis"`
}

// Report returns the full analytics payload.
func (as *AnalyticsService) Report() *AnalyticsReport {
	return &AnalyticsReport{
		Success: true,
		SalesByMonth: []MonthlySales{
			{Month: "Jan", Sales: 4000, Orders: 240},
			{Month: "Feb", Sales: 3000, Orders: 198},
			{Month: "Mar", Sales: 5000, Orders: 300},
			{Month: "Apr", Sales: 4500, Orders: 278},
			{Month: "May", Sales: 6000, Orders: 389},
			{Month: "Jun", Sales: 5500, Orders: 349},
		},
		Categories: []CategoryShare{
			{Name: "Electronics", Value: 35, Color: "#8884d8"},
			{Name: "Clothing", Value: 25, Color: "#82ca9d"},
			{Name: "Home & Living", Value: 20, Color: "#ffc658"},
			{Name: "Books", Value: 12, Color: "#ff7300"},
			{Name: "Sports", Value: 8, Color: "#00ff00"},
		},
		TopProducts: []TopProduct{
			{Name: "iPhone 15 Pro", Sales: 1250, Revenue: 1875000},
			{Name: "Samsung Galaxy S24", Sales: 980, Revenue: 1470000},
			{Name: "MacBook Air M3", Sales: 750, Revenue: 1687500},
			{Name: "AirPods Pro", Sales: 1500, Revenue: 375000},
			{Name: "iPad Air", Sales: 650, Revenue: 487500},
		},
		KPIs: []KPI{
			{Label: "Total Sales", Value: "2,847,392", Change: 12.5},
			{Label: "Total Orders", Value: "1,754", Change: 8.2},
			{Label: "Average Basket", Value: "1,623", Change: 3.9},
			{Label: "Return Rate", Value: "2.4%", Change: -0.6},
		},
	}
}
