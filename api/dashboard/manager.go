package dashboard

import (
	"masterpos_server/services"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type DashboardRoutesManager struct {
	logger           *gecho.Logger
	dashboardService *services.DashboardService
}

func NewDashboardRoutesManager(
	logger *gecho.Logger,
	dashboardService *services.DashboardService,
) *DashboardRoutesManager {
	return &DashboardRoutesManager{
		logger:           logger,
		dashboardService: dashboardService,
	}
}

func (drm *DashboardRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/dashboard/stats", drm.GetStats)
	r.Get("/dashboard/navigation", drm.GetNavigation)
}

// GetStats serves the stat card row above the table.
func (drm *DashboardRoutesManager) GetStats(w http.ResponseWriter, r *http.Request) {
	gecho.Success(w,
		gecho.WithData(map[string]any{"cards": drm.dashboardService.Stats()}),
		gecho.Send(),
	)
}

// GetNavigation serves the sidebar tree.
func (drm *DashboardRoutesManager) GetNavigation(w http.ResponseWriter, r *http.Request) {
	gecho.Success(w,
		gecho.WithData(map[string]any{"sections": drm.dashboardService.Navigation()}),
		gecho.Send(),
	)
}
