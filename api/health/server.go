package health

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

func (hrm *HealthRoutesManager) GetServerHealth(w http.ResponseWriter, r *http.Request) {
	healthStatus := hrm.healthService.GetServerHealthStatus()
	gecho.Success(w,
		gecho.WithData(healthStatus),
		gecho.Send(),
	)
}

func (hrm *HealthRoutesManager) GetCatalogHealth(w http.ResponseWriter, r *http.Request) {
	catalogStatus := hrm.healthService.GetCatalogHealthStatus()
	gecho.Success(w,
		gecho.WithData(catalogStatus),
		gecho.Send(),
	)
}

func (hrm *HealthRoutesManager) GetCacheHealth(w http.ResponseWriter, r *http.Request) {
	cacheStatus := hrm.healthService.GetCacheHealthStatus()
	gecho.Success(w,
		gecho.WithData(cacheStatus),
		gecho.Send(),
	)
}
