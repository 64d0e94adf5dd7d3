package admin

import (
	"masterpos_server/api/health"
	"net/http"
	"strconv"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

// DeleteProduct removes a single product: simulated latency, then a full
// refetch of the record set. Contrast with BulkDeleteProducts, which
// only touches local state.
func (ar *AdminRoutesManager) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Please select a product to delete"), gecho.Send())
		return
	}

	if err := ar.catalogService.Delete(r.Context(), id); err != nil {
		ar.handleMutationError(w, r.Context(), err, "Unable to delete product. Please try again")
		return
	}
	health.CatalogRefreshes.With(prometheus.Labels{"outcome": "success"}).Inc()

	gecho.Success(w,
		gecho.WithMessage("Product deleted successfully"),
		gecho.WithData(map[string]int{"deleted_id": id}),
		gecho.Send(),
	)
}
