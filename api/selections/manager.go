package selections

import (
	"masterpos_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type SelectionRoutesManager struct {
	logger           *gecho.Logger
	selectionService *services.SelectionService
}

func NewSelectionRoutesManager(
	logger *gecho.Logger,
	selectionService *services.SelectionService,
) *SelectionRoutesManager {
	return &SelectionRoutesManager{
		logger:           logger,
		selectionService: selectionService,
	}
}

func (srm *SelectionRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/selections", func(r chi.Router) {
		r.Post("/", srm.CreateSession)
		r.Get("/{id}", srm.GetSelection)
		r.Post("/{id}/toggle", srm.Toggle)
		r.Post("/{id}/toggle-all", srm.ToggleAll)
		r.Delete("/{id}", srm.ClearSelection)
	})
}
