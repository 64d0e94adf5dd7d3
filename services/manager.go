package services

import (
	"masterpos_server/store"
	"masterpos_server/structs"
	"masterpos_server/upstream"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	CacheService     *CacheService
	CatalogService   *CatalogService
	SelectionService *SelectionService
	AnalyticsService *AnalyticsService
	DashboardService *DashboardService
	HealthService    *HealthService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, st *store.Store) *ServiceManager {
	cacheService := NewCacheService(logger, cfg)
	upstreamClient := upstream.NewClient(logger, cfg.Upstream)
	catalogService := NewCatalogService(logger, cfg, st, upstreamClient, cacheService)
	selectionService := NewSelectionService(logger)
	analyticsService := NewAnalyticsService(logger)
	dashboardService := NewDashboardService(logger, st)
	healthService := NewHealthService(logger, st, cacheService)

	return &ServiceManager{
		CacheService:     cacheService,
		CatalogService:   catalogService,
		SelectionService: selectionService,
		AnalyticsService: analyticsService,
		DashboardService: dashboardService,
		HealthService:    healthService,
	}
}
