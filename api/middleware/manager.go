package middleware

import (
	"masterpos_server/services"
	"masterpos_server/structs"

	"github.com/MonkyMars/gecho"
)

type Middleware struct {
	cfg          *structs.Config
	logger       *gecho.Logger
	cacheService *services.CacheService
}

func NewMiddleware(cfg *structs.Config, logger *gecho.Logger, cacheService *services.CacheService) *Middleware {
	return &Middleware{
		cfg:          cfg,
		logger:       logger,
		cacheService: cacheService,
	}
}
