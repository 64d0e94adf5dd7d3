package admin

import (
	"errors"
	"fmt"
	"masterpos_server/lib"
	"masterpos_server/services"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// BulkRequest names the records a bulk action applies to, either
// directly by id or through a selection session.
type BulkRequest struct {
	IDs       []int  `json:"ids,omitempty"`
	SessionID string `json:"session_id,omitempty"`
}

// resolveIDs turns a bulk request into a concrete id list. When a
// session id is given it wins over the literal list.
func (ar *AdminRoutesManager) resolveIDs(req *BulkRequest) ([]int, uuid.UUID, error) {
	if req.SessionID == "" {
		return req.IDs, uuid.Nil, nil
	}

	session, err := uuid.Parse(req.SessionID)
	if err != nil {
		return nil, uuid.Nil, fmt.Errorf("invalid session id: %w", err)
	}
	ids, err := ar.selectionService.Snapshot(session)
	if err != nil {
		return nil, uuid.Nil, err
	}
	return ids, session, nil
}

// BulkDeleteProducts removes the selected records from the in-memory
// set only. No upstream call is made; the next refetch restores them.
// The owning selection is cleared afterwards.
func (ar *AdminRoutesManager) BulkDeleteProducts(w http.ResponseWriter, r *http.Request) {
	req, err := lib.ExtractAndValidateBody[BulkRequest](r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Please select products to delete"), gecho.Send())
		return
	}

	ids, session, err := ar.resolveIDs(req)
	if err != nil {
		ar.writeBulkError(w, err)
		return
	}
	if len(ids) == 0 {
		gecho.BadRequest(w, gecho.WithMessage("Please select products to delete"), gecho.Send())
		return
	}

	removed := ar.catalogService.BulkDelete(ids)

	if session != uuid.Nil {
		if err := ar.selectionService.Clear(session); err != nil {
			ar.logger.Warn("Failed to clear selection after bulk delete", gecho.Field("error", err))
		}
	}

	gecho.Success(w,
		gecho.WithMessage("Products deleted successfully"),
		gecho.WithData(map[string]int{"deleted_count": removed}),
		gecho.Send(),
	)
}

// ExportProducts builds the CSV export of the selected records and
// serves it as a download.
func (ar *AdminRoutesManager) ExportProducts(w http.ResponseWriter, r *http.Request) {
	req, err := lib.ExtractAndValidateBody[BulkRequest](r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Please select products to export"), gecho.Send())
		return
	}

	ids, _, err := ar.resolveIDs(req)
	if err != nil {
		ar.writeBulkError(w, err)
		return
	}
	if len(ids) == 0 {
		gecho.BadRequest(w, gecho.WithMessage("Please select products to export"), gecho.Send())
		return
	}

	csv, count := ar.catalogService.ExportCSV(ids)

	ar.logger.Info("Selection exported", gecho.Field("count", count))

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", services.ExportFilename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(csv))
}

func (ar *AdminRoutesManager) writeBulkError(w http.ResponseWriter, err error) {
	if errors.Is(err, services.ErrSelectionNotFound) {
		gecho.NotFound(w, gecho.WithMessage("Selection session not found"), gecho.Send())
		return
	}
	gecho.BadRequest(w, gecho.WithMessage(err.Error()), gecho.Send())
}
