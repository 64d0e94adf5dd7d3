package admin

import (
	"context"
	"errors"
	"masterpos_server/api/health"
	"masterpos_server/lib"
	"masterpos_server/services"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/prometheus/client_golang/prometheus"
)

func (ar *AdminRoutesManager) CreateProduct(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[services.ProductInput](r)
	if err != nil {
		ar.logger.Debug("Failed to extract and validate body", gecho.Field("error", err))
		writeValidationError(w, err)
		return
	}

	ar.logger.Debug("CreateProduct request received",
		gecho.Field("product_name", body.Name),
		gecho.Field("category", body.Category),
	)

	if err := ar.catalogService.Create(r.Context(), body); err != nil {
		ar.handleMutationError(w, r.Context(), err, "Unable to create product. Please try again")
		return
	}
	health.CatalogRefreshes.With(prometheus.Labels{"outcome": "success"}).Inc()

	gecho.Success(w,
		gecho.WithMessage("Product created successfully"),
		gecho.Send(),
	)
}

// writeValidationError distinguishes structured field errors from plain
// malformed bodies.
func writeValidationError(w http.ResponseWriter, err error) {
	var ve *lib.ValidationError
	if errors.As(err, &ve) {
		gecho.BadRequest(w,
			gecho.WithMessage("Please check the product information and try again"),
			gecho.WithData(ve.Errors),
			gecho.Send(),
		)
		return
	}
	gecho.BadRequest(w,
		gecho.WithMessage("Please check the product information and try again"),
		gecho.Send(),
	)
}

// handleMutationError maps mutation failures: a client abort mid-wait
// is not a server error.
func (ar *AdminRoutesManager) handleMutationError(w http.ResponseWriter, ctx context.Context, err error, msg string) {
	health.CatalogRefreshes.With(prometheus.Labels{"outcome": "failure"}).Inc()

	if errors.Is(err, context.Canceled) && ctx.Err() != nil {
		ar.logger.Warn("Mutation aborted by client", gecho.Field("error", err))
		return
	}
	if errors.Is(err, services.ErrProductNotFound) {
		gecho.NotFound(w, gecho.WithMessage("Product not found"), gecho.Send())
		return
	}

	ar.logger.Error("Mutation failed", gecho.Field("error", err))
	gecho.InternalServerError(w, gecho.WithMessage(msg), gecho.Send())
}
