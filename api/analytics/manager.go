package analytics

import (
	"masterpos_server/services"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type AnalyticsRoutesManager struct {
	logger           *gecho.Logger
	analyticsService *services.AnalyticsService
}

func NewAnalyticsRoutesManager(
	logger *gecho.Logger,
	analyticsService *services.AnalyticsService,
) *AnalyticsRoutesManager {
	return &AnalyticsRoutesManager{
		logger:           logger,
		analyticsService: analyticsService,
	}
}

func (arm *AnalyticsRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/analytics", arm.GetReport)
}

// GetReport serves the analytics view: monthly sales, category share,
// top products and the KPI row.
func (arm *AnalyticsRoutesManager) GetReport(w http.ResponseWriter, r *http.Request) {
	report := arm.analyticsService.Report()

	gecho.Success(w,
		gecho.WithData(report),
		gecho.Send(),
	)
}
