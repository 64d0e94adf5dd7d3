package selections

import (
	"errors"
	"masterpos_server/lib"
	"masterpos_server/services"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// CreateSession opens a fresh selection session for a dashboard client.
func (srm *SelectionRoutesManager) CreateSession(w http.ResponseWriter, r *http.Request) {
	id := srm.selectionService.Create()

	gecho.Success(w,
		gecho.WithData(map[string]any{"session_id": id}),
		gecho.WithMessage("Selection session created"),
		gecho.Send(),
	)
}

// GetSelection returns the selected ids of a session. When page_ids are
// supplied they are used to compute the header checkbox state.
func (srm *SelectionRoutesManager) GetSelection(w http.ResponseWriter, r *http.Request) {
	session, ok := srm.parseSession(w, r)
	if !ok {
		return
	}

	ids, err := srm.selectionService.Snapshot(session)
	if err != nil {
		srm.writeSelectionError(w, err)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"selected_ids":   ids,
			"selected_count": len(ids),
		}),
		gecho.Send(),
	)
}

type toggleRequest struct {
	ProductID int `json:"product_id" validate:"required"`
}

// Toggle flips one record's membership.
func (srm *SelectionRoutesManager) Toggle(w http.ResponseWriter, r *http.Request) {
	session, ok := srm.parseSession(w, r)
	if !ok {
		return
	}

	body, err := lib.ExtractAndValidateBody[toggleRequest](r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Please provide a product to toggle"), gecho.Send())
		return
	}

	selected, err := srm.selectionService.Toggle(session, body.ProductID)
	if err != nil {
		srm.writeSelectionError(w, err)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"product_id": body.ProductID,
			"selected":   selected,
		}),
		gecho.Send(),
	)
}

type toggleAllRequest struct {
	PageIDs []int `json:"page_ids"`
}

// ToggleAll implements the header checkbox against the ids of the
// currently rendered page.
func (srm *SelectionRoutesManager) ToggleAll(w http.ResponseWriter, r *http.Request) {
	session, ok := srm.parseSession(w, r)
	if !ok {
		return
	}

	body, err := lib.ExtractAndValidateBody[toggleAllRequest](r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Please provide the current page"), gecho.Send())
		return
	}

	ids, err := srm.selectionService.ToggleAll(session, body.PageIDs)
	if err != nil {
		srm.writeSelectionError(w, err)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"selected_ids":   ids,
			"selected_count": len(ids),
		}),
		gecho.Send(),
	)
}

// ClearSelection empties the session.
func (srm *SelectionRoutesManager) ClearSelection(w http.ResponseWriter, r *http.Request) {
	session, ok := srm.parseSession(w, r)
	if !ok {
		return
	}

	if err := srm.selectionService.Clear(session); err != nil {
		srm.writeSelectionError(w, err)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Selection cleared"),
		gecho.Send(),
	)
}

func (srm *SelectionRoutesManager) parseSession(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	session, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid selection session id"), gecho.Send())
		return uuid.Nil, false
	}
	return session, true
}

func (srm *SelectionRoutesManager) writeSelectionError(w http.ResponseWriter, err error) {
	if errors.Is(err, services.ErrSelectionNotFound) {
		gecho.NotFound(w, gecho.WithMessage("Selection session not found"), gecho.Send())
		return
	}

	srm.logger.Error("Selection operation failed", gecho.Field("error", err))
	gecho.InternalServerError(w, gecho.Send())
}
