package api

import (
	"masterpos_server/api/admin"
	"masterpos_server/api/analytics"
	"masterpos_server/api/dashboard"
	"masterpos_server/api/health"
	"masterpos_server/api/products"
	"masterpos_server/api/selections"
	"masterpos_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	productRoutes   *products.ProductRoutesManager
	adminRoutes     *admin.AdminRoutesManager
	selectionRoutes *selections.SelectionRoutesManager
	analyticsRoutes *analytics.AnalyticsRoutesManager
	dashboardRoutes *dashboard.DashboardRoutesManager
	healthRoutes    *health.HealthRoutesManager
}

func NewRouterManager(logger *gecho.Logger, sm *services.ServiceManager) *routerManager {
	return &routerManager{
		productRoutes:   products.NewProductRoutesManager(logger, sm.CatalogService),
		adminRoutes:     admin.NewAdminRoutesManager(logger, sm.CatalogService, sm.SelectionService),
		selectionRoutes: selections.NewSelectionRoutesManager(logger, sm.SelectionService),
		analyticsRoutes: analytics.NewAnalyticsRoutesManager(logger, sm.AnalyticsService),
		dashboardRoutes: dashboard.NewDashboardRoutesManager(logger, sm.DashboardService),
		healthRoutes:    health.NewHealthRoutesManager(sm.HealthService),
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.productRoutes.RegisterRoutes(r)
	rm.adminRoutes.RegisterRoutes(r)
	rm.selectionRoutes.RegisterRoutes(r)
	rm.analyticsRoutes.RegisterRoutes(r)
	rm.dashboardRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
}
