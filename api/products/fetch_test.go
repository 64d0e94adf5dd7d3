package products

import (
	"io"
	"masterpos_server/services"
	"masterpos_server/store"
	"masterpos_server/structs"
	"masterpos_server/upstream"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter(t *testing.T) http.Handler {
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
		Mutation: &structs.MutationConfig{},
	}

	st := store.New()
	st.Replace([]structs.Product{
		{ID: 1, Name: "Wireless Mouse", Price: 25, Stock: 4, Status: true, Category: structs.CategoryElectronics},
		{ID: 2, Name: "Desk Lamp", Price: 40, Stock: 12, Status: false, Category: structs.CategoryHome},
	})

	catalog := services.NewCatalogService(
		logger, cfg, st,
		upstream.NewClient(logger, cfg.Upstream),
		services.NewCacheService(logger, cfg),
	)

	r := chi.NewRouter()
	NewProductRoutesManager(logger, catalog).RegisterRoutes(r)
	return r
}

func TestFetchAllProducts(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest("GET", "/products?status=active", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), "Wireless Mouse")
	assert.NotContains(t, string(body), "Desk Lamp")
}

func TestFetchAllProductsBadQuery(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest("GET", "/products?status=archived", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFetchProductByID(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest("GET", "/products/2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Desk Lamp")
}

func TestFetchProductByIDNotFound(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest("GET", "/products/999", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFetchProductByIDBadID(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest("GET", "/products/not-a-number", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
