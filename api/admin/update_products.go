package admin

import (
	"masterpos_server/api/health"
	"masterpos_server/lib"
	"masterpos_server/services"
	"net/http"
	"strconv"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

func (ar *AdminRoutesManager) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Please select a product to update"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[services.ProductInput](r)
	if err != nil {
		ar.logger.Debug("Failed to extract and validate body", gecho.Field("error", err))
		writeValidationError(w, err)
		return
	}

	if err := ar.catalogService.Update(r.Context(), id, body); err != nil {
		ar.handleMutationError(w, r.Context(), err, "Unable to update product. Please try again")
		return
	}
	health.CatalogRefreshes.With(prometheus.Labels{"outcome": "success"}).Inc()

	gecho.Success(w,
		gecho.WithMessage("Product updated successfully"),
		gecho.Send(),
	)
}
