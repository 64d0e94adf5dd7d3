package products

import (
	"errors"
	"masterpos_server/handling"
	"masterpos_server/services"
	"net/http"
	"strconv"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// FetchAllProducts handles GET /products: the full list pipeline with
// filtering, sorting and pagination over the loaded record set.
func (p *ProductRoutesManager) FetchAllProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	opts, err := handling.ParseListOptions(r)
	if err != nil {
		p.logger.Warn("Invalid query parameters", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("error.invalidQueryParameters"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	result, err := p.catalogService.List(ctx, opts)
	if err != nil {
		p.logger.Error("Failed to fetch products", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.products.failedToFetch"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"products":   result.Products,
			"pagination": result.Pagination,
			"meta": map[string]any{
				"active_filter_count": result.ActiveFilterCount,
				"query_time_ms":       result.QueryTime.Milliseconds(),
				"count":               len(result.Products),
			},
		}),
		gecho.Send(),
	)
}

// FetchProductByID handles GET /products/{id}.
func (p *ProductRoutesManager) FetchProductByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		p.logger.Warn("Invalid product ID format", gecho.Field("id", chi.URLParam(r, "id")))
		gecho.BadRequest(w,
			gecho.WithMessage("error.products.invalidProductId"),
			gecho.Send(),
		)
		return
	}

	product, err := p.catalogService.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("error.products.notFound"),
				gecho.Send(),
			)
			return
		}

		p.logger.Error("Failed to fetch product by ID", gecho.Field("id", id), gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.products.failedToFetchOne"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"product":   product,
			"image":     product.Image(),
			"low_stock": product.LowStock(),
		}),
		gecho.Send(),
	)
}

// GetProductCount handles GET /products/count with the same filters as
// the list endpoint.
func (p *ProductRoutesManager) GetProductCount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	opts, err := handling.ParseListOptions(r)
	if err != nil {
		p.logger.Warn("Invalid query parameters", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("error.invalidQueryParameters"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	count, err := p.catalogService.Count(ctx, opts.Filter)
	if err != nil {
		p.logger.Error("Failed to count products", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.products.failedToCount"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"count": count,
		}),
		gecho.Send(),
	)
}
