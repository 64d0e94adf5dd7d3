package admin

import (
	"masterpos_server/services"
	"masterpos_server/store"
	"masterpos_server/structs"
	"masterpos_server/upstream"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type adminFixture struct {
	router    http.Handler
	store     *store.Store
	selection *services.SelectionService
}

func newAdminFixture(t *testing.T) *adminFixture {
	t.Helper()

	logger := gecho.NewDefaultLogger()
	cfg := &structs.Config{
		Upstream: &structs.UpstreamConfig{
			BaseURL:        "http://unused.invalid",
			Page:           1,
			RequestTimeout: time.Second,
			CacheTTL:       time.Minute,
		},
		Cache:    &structs.CacheConfig{},
		Mutation: &structs.MutationConfig{SimulatedLatency: time.Millisecond},
	}

	st := store.New()
	st.Replace([]structs.Product{
		{ID: 1, Name: "Wireless Mouse", Price: 25.5, Stock: 4, Status: true, Category: structs.CategoryElectronics},
		{ID: 2, Name: "Running Shoes", Price: 89.99, Stock: 20, Status: true, Category: structs.CategorySports},
		{ID: 3, Name: "Desk Lamp", Price: 40, Stock: 12, Status: false, Category: structs.CategoryHome},
	})

	catalog := services.NewCatalogService(
		logger, cfg, st,
		upstream.NewClient(logger, cfg.Upstream),
		services.NewCacheService(logger, cfg),
	)
	selection := services.NewSelectionService(logger)

	r := chi.NewRouter()
	NewAdminRoutesManager(logger, catalog, selection).RegisterRoutes(r)

	return &adminFixture{router: r, store: st, selection: selection}
}

func (f *adminFixture) post(path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestExportProducts(t *testing.T) {
	f := newAdminFixture(t)

	rec := f.post("/admin/products/export", `{"ids":[1,3]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="selected_products.csv"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t,
		"ID,Name,Price,Stock,Category,Status\n"+
			`1,"Wireless Mouse",25.50,4,"electronics",Active`+"\n"+
			`3,"Desk Lamp",40.00,12,"home",Inactive`,
		rec.Body.String())
}

func TestExportProductsBySession(t *testing.T) {
	f := newAdminFixture(t)

	session := f.selection.Create()
	_, err := f.selection.Toggle(session, 2)
	require.NoError(t, err)

	rec := f.post("/admin/products/export", `{"session_id":"`+session.String()+`"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Running Shoes")
	assert.NotContains(t, rec.Body.String(), "Wireless Mouse")
}

func TestExportProductsEmptySelection(t *testing.T) {
	f := newAdminFixture(t)

	rec := f.post("/admin/products/export", `{"ids":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBulkDeleteProducts(t *testing.T) {
	f := newAdminFixture(t)

	session := f.selection.Create()
	_, err := f.selection.Toggle(session, 1)
	require.NoError(t, err)
	_, err = f.selection.Toggle(session, 3)
	require.NoError(t, err)

	rec := f.post("/admin/products/bulk-delete", `{"session_id":"`+session.String()+`"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, f.store.Len())

	// owning selection is cleared after the delete
	ids, err := f.selection.Snapshot(session)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestBulkDeleteUnknownSession(t *testing.T) {
	f := newAdminFixture(t)

	rec := f.post("/admin/products/bulk-delete", `{"session_id":"00000000-0000-0000-0000-000000000001"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBulkDeleteMalformedSession(t *testing.T) {
	f := newAdminFixture(t)

	rec := f.post("/admin/products/bulk-delete", `{"session_id":"not-a-uuid"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
