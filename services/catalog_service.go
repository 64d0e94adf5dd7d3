package services

import (
	"context"
	"errors"
	"fmt"
	"masterpos_server/pipeline"
	"masterpos_server/store"
	"masterpos_server/structs"
	"masterpos_server/upstream"
	"strconv"
	"strings"
	"time"

	"github.com/MonkyMars/gecho"
)

// ErrProductNotFound is returned when an id does not exist in the
// currently loaded set.
var ErrProductNotFound = errors.New("product not found")

// CatalogService owns the full record set: it loads the set from the
// upstream API (cache-aside through redis), runs the list pipeline over
// snapshots, and handles mutations. Mutations never patch the set in
// place; they wait the simulated latency and then replace the whole set
// from upstream. Bulk delete is the single exception: it removes
// records locally and is undone by the next refetch.
type CatalogService struct {
	logger       *gecho.Logger
	cfg          *structs.Config
	store        *store.Store
	upstream     *upstream.Client
	cacheService *CacheService
}

func NewCatalogService(
	logger *gecho.Logger,
	cfg *structs.Config,
	st *store.Store,
	client *upstream.Client,
	cacheService *CacheService,
) *CatalogService {
	return &CatalogService{
		logger:       logger,
		cfg:          cfg,
		store:        st,
		upstream:     client,
		cacheService: cacheService,
	}
}

// ListOptions bundles the three pipeline inputs plus the window.
type ListOptions struct {
	Filter   pipeline.Filter
	Sort     pipeline.Sort
	Page     int
	PageSize int
}

// ListResult is the table payload: one page plus everything the header
// widgets need.
type ListResult struct {
	Products          []structs.Product   `json:"products"`
	Pagination        pipeline.Pagination `json:"pagination"`
	ActiveFilterCount int                 `json:"active_filter_count"`
	QueryTime         time.Duration       `json:"-"`
}

// Load fills the store from the cache or, on a miss, from upstream.
// Used on startup and lazily by List when nothing is loaded yet.
func (cs *CatalogService) Load(ctx context.Context) error {
	cached, err := cs.cacheService.GetProductPayload()
	if err != nil && !errors.Is(err, ErrCacheDisabled) {
		cs.logger.Warn("Failed to read catalog from cache", gecho.Field("error", err))
	}
	if cached != nil {
		cs.store.Replace(cached)
		cs.logger.Debug("Catalog loaded from cache", gecho.Field("count", len(cached)))
		return nil
	}
	return cs.Refresh(ctx)
}

// Refresh bypasses the cache, fetches the whole set from upstream,
// replaces the store and repopulates the cache. A failed fetch leaves
// the previous set untouched.
func (cs *CatalogService) Refresh(ctx context.Context) error {
	start := time.Now()

	products, err := cs.upstream.FetchProducts(ctx)
	if err != nil {
		cs.logger.Error("Failed to refresh catalog",
			gecho.Field("error", err),
			gecho.Field("duration", time.Since(start)),
		)
		return fmt.Errorf("failed to refresh catalog: %w", err)
	}

	cs.store.Replace(products)

	if err := cs.cacheService.SetProductPayload(products); err != nil && !errors.Is(err, ErrCacheDisabled) {
		cs.logger.Warn("Failed to cache catalog payload", gecho.Field("error", err))
	}

	cs.logger.Info("Catalog refreshed",
		gecho.Field("count", len(products)),
		gecho.Field("duration", time.Since(start)),
	)
	return nil
}

// List runs the full pipeline (filter, sort, paginate) over a snapshot
// of the record set.
func (cs *CatalogService) List(ctx context.Context, opts ListOptions) (*ListResult, error) {
	start := time.Now()

	if cs.store.LoadedAt().IsZero() {
		if err := cs.Load(ctx); err != nil {
			// Serve the empty set rather than failing the table; the
			// fetch error was already logged.
			cs.logger.Warn("Serving list from empty catalog", gecho.Field("error", err))
		}
	}

	ordered := pipeline.Apply(cs.store.Snapshot(), opts.Filter, opts.Sort)
	window, pagination := pipeline.Paginate(ordered, opts.Page, opts.PageSize)

	cs.logger.Debug("Products listed",
		gecho.Field("count", len(window)),
		gecho.Field("total", pagination.TotalItems),
		gecho.Field("page", pagination.Page),
		gecho.Field("page_size", pagination.PageSize),
		gecho.Field("duration", time.Since(start)),
	)

	return &ListResult{
		Products:          window,
		Pagination:        pagination,
		ActiveFilterCount: opts.Filter.ActiveCount(),
		QueryTime:         time.Since(start),
	}, nil
}

// GetByID looks up one record in the loaded set.
func (cs *CatalogService) GetByID(ctx context.Context, id int) (structs.Product, error) {
	if cs.store.LoadedAt().IsZero() {
		if err := cs.Load(ctx); err != nil {
			return structs.Product{}, err
		}
	}
	product, ok := cs.store.Get(id)
	if !ok {
		return structs.Product{}, ErrProductNotFound
	}
	return product, nil
}

// Count returns how many records pass the filter.
func (cs *CatalogService) Count(ctx context.Context, filter pipeline.Filter) (int, error) {
	if cs.store.LoadedAt().IsZero() {
		if err := cs.Load(ctx); err != nil {
			return 0, err
		}
	}

	count := 0
	for _, p := range cs.store.Snapshot() {
		if filter.Matches(p) {
			count++
		}
	}
	return count, nil
}

// ProductInput is the create/update request body. Name, price and stock
// are the required form fields; the rest is optional.
type ProductInput struct {
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	ProductCode string  `json:"productCode,omitempty"`
	Barcode     string  `json:"barcode,omitempty"`
	Stock       int     `json:"stock" validate:"gte=0"`
	Status      bool    `json:"status"`
	Category    string  `json:"category,omitempty" validate:"omitempty,oneof=electronics clothing books home sports"`
	Description string  `json:"description,omitempty"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

// Create adds a product. The upstream catalog has no write API, so the
// call waits the configured simulated latency and then refetches the
// whole set, exactly like the dashboard does. The created record is
// therefore not durable until the upstream grows a real endpoint.
func (cs *CatalogService) Create(ctx context.Context, input *ProductInput) error {
	if err := cs.simulate(ctx); err != nil {
		return err
	}

	cs.logger.Info("Product created",
		gecho.Field("name", input.Name),
		gecho.Field("category", input.Category),
	)
	return cs.invalidateAndRefresh(ctx)
}

// Update edits an existing product; unknown ids fail before the
// simulated latency starts.
func (cs *CatalogService) Update(ctx context.Context, id int, input *ProductInput) error {
	if _, err := cs.GetByID(ctx, id); err != nil {
		return err
	}
	if err := cs.simulate(ctx); err != nil {
		return err
	}

	cs.logger.Info("Product updated",
		gecho.Field("id", id),
		gecho.Field("name", input.Name),
	)
	return cs.invalidateAndRefresh(ctx)
}

// Delete removes a single product server-authoritatively: simulated
// latency, then a full refetch.
func (cs *CatalogService) Delete(ctx context.Context, id int) error {
	if _, err := cs.GetByID(ctx, id); err != nil {
		return err
	}
	if err := cs.simulate(ctx); err != nil {
		return err
	}

	cs.logger.Info("Product deleted", gecho.Field("id", id))
	return cs.invalidateAndRefresh(ctx)
}

// BulkDelete removes the selected records from the in-memory set only.
// No upstream call is made and no refetch follows, so the next refresh
// silently restores the records.
func (cs *CatalogService) BulkDelete(ids []int) int {
	removed := cs.store.RemoveIDs(ids)
	cs.logger.Info("Bulk delete applied locally",
		gecho.Field("requested", len(ids)),
		gecho.Field("removed", removed),
	)
	return removed
}

// ExportFilename is the download name of the bulk CSV export.
const ExportFilename = "selected_products.csv"

// csvHeader is fixed; tooling downstream matches on it.
const csvHeader = "ID,Name,Price,Stock,Category,Status"

// ExportCSV renders the selected records as CSV in selection-set order
// of the loaded catalog. Name and category are double-quoted; embedded
// quotes are not escaped further, matching the dashboard export.
func (cs *CatalogService) ExportCSV(ids []int) (string, int) {
	selected := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		selected[id] = struct{}{}
	}

	var b strings.Builder
	b.WriteString(csvHeader)

	count := 0
	for _, p := range cs.store.Snapshot() {
		if _, ok := selected[p.ID]; !ok {
			continue
		}
		b.WriteString("\n")
		b.WriteString(strconv.Itoa(p.ID))
		b.WriteString(`,"`)
		b.WriteString(p.Name)
		b.WriteString(`",`)
		b.WriteString(strconv.FormatFloat(p.Price, 'f', 2, 64))
		b.WriteString(",")
		b.WriteString(strconv.Itoa(p.Stock))
		b.WriteString(`,"`)
		b.WriteString(string(p.Category))
		b.WriteString(`",`)
		b.WriteString(p.StatusLabel())
		count++
	}

	return b.String(), count
}

// simulate waits the configured mutation latency. The wait cannot fail
// on its own; the only way out early is context cancellation, which
// maps to a client abort.
func (cs *CatalogService) simulate(ctx context.Context) error {
	latency := cs.cfg.Mutation.SimulatedLatency
	if latency <= 0 {
		return nil
	}

	timer := time.NewTimer(latency)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (cs *CatalogService) invalidateAndRefresh(ctx context.Context) error {
	if err := cs.cacheService.InvalidateProductPayload(); err != nil && !errors.Is(err, ErrCacheDisabled) {
		cs.logger.Warn("Failed to invalidate catalog cache", gecho.Field("error", err))
	}
	return cs.Refresh(ctx)
}
