package admin

import (
	"masterpos_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type AdminRoutesManager struct {
	logger           *gecho.Logger
	catalogService   *services.CatalogService
	selectionService *services.SelectionService
}

func NewAdminRoutesManager(
	logger *gecho.Logger,
	catalogService *services.CatalogService,
	selectionService *services.SelectionService,
) *AdminRoutesManager {
	return &AdminRoutesManager{
		logger:           logger,
		catalogService:   catalogService,
		selectionService: selectionService,
	}
}

func (ar *AdminRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Post("/products", ar.CreateProduct)
		r.Put("/products/{id}", ar.UpdateProduct)
		r.Delete("/products/{id}", ar.DeleteProduct)

		// Bulk actions over a selection
		r.Post("/products/bulk-delete", ar.BulkDeleteProducts)
		r.Post("/products/export", ar.ExportProducts)
	})
}
