package services

import (
	"masterpos_server/store"
	"runtime"
	"time"

	"github.com/MonkyMars/gecho"
)

var startTime = time.Now()

type HealthService struct {
	logger       *gecho.Logger
	store        *store.Store
	cacheService *CacheService
}

func NewHealthService(logger *gecho.Logger, st *store.Store, cacheService *CacheService) *HealthService {
	return &HealthService{
		logger:       logger,
		store:        st,
		cacheService: cacheService,
	}
}

// GetServerHealthStatus reports process-level health.
func (hs *HealthService) GetServerHealthStatus() map[string]any {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return map[string]any{
		"status":        "ok",
		"uptime":        time.Since(startTime).String(),
		"goroutines":    runtime.NumGoroutine(),
		"alloc_bytes":   mem.Alloc,
		"num_gc_cycles": mem.NumGC,
	}
}

// GetCatalogHealthStatus reports the state of the loaded record set.
// "empty" means no fetch has succeeded yet; there is no error state
// because a failed refetch keeps the previous set.
func (hs *HealthService) GetCatalogHealthStatus() map[string]any {
	loadedAt := hs.store.LoadedAt()
	status := "ok"
	if loadedAt.IsZero() {
		status = "empty"
	}

	result := map[string]any{
		"status": status,
		"count":  hs.store.Len(),
	}
	if !loadedAt.IsZero() {
		result["loaded_at"] = loadedAt.Format(time.RFC3339)
		result["age"] = time.Since(loadedAt).String()
	}
	return result
}

// GetCacheHealthStatus pings redis; a disabled cache is healthy.
func (hs *HealthService) GetCacheHealthStatus() map[string]any {
	if !hs.cacheService.Enabled() {
		return map[string]any{"status": "disabled"}
	}
	if err := hs.cacheService.Ping(); err != nil {
		hs.logger.Warn("Cache health check failed", gecho.Field("error", err))
		return map[string]any{"status": "unreachable", "error": err.Error()}
	}
	return map[string]any{"status": "ok"}
}
