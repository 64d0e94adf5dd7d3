package services

import (
	"context"
	"encoding/json"
	"masterpos_server/pipeline"
	"masterpos_server/store"
	"masterpos_server/structs"
	"masterpos_server/upstream"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) *structs.Config {
	return &structs.Config{
		Upstream: &structs.UpstreamConfig{
			BaseURL:        baseURL,
			Page:           1,
			RequestTimeout: 2 * time.Second,
			CacheTTL:       time.Minute,
		},
		Cache:    &structs.CacheConfig{}, // no address: cache disabled
		Mutation: &structs.MutationConfig{SimulatedLatency: time.Millisecond},
	}
}

// catalogServer serves the upstream envelope and counts fetches.
func catalogServer(t *testing.T, products *[]structs.Product, calls *atomic.Int64) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"data": *products})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newCatalogService(t *testing.T, baseURL string) (*CatalogService, *store.Store) {
	t.Helper()
	logger := gecho.NewDefaultLogger()
	cfg := testConfig(baseURL)
	st := store.New()
	client := upstream.NewClient(logger, cfg.Upstream)
	cache := NewCacheService(logger, cfg)
	return NewCatalogService(logger, cfg, st, client, cache), st
}

func catalogFixture() []structs.Product {
	return []structs.Product{
		{ID: 1, Name: "Wireless Mouse", Price: 25.5, Stock: 4, Status: true, Category: structs.CategoryElectronics},
		{ID: 2, Name: "Cotton T-Shirt", Price: 15, Stock: 80, Status: false, Category: structs.CategoryClothing},
		{ID: 3, Name: "Desk Lamp", Price: 40, Stock: 12, Status: true, Category: structs.CategoryHome},
	}
}

func TestListLazyLoadsFromUpstream(t *testing.T) {
	products := catalogFixture()
	var calls atomic.Int64
	srv := catalogServer(t, &products, &calls)

	cs, st := newCatalogService(t, srv.URL)

	result, err := cs.List(context.Background(), ListOptions{
		Filter:   pipeline.DefaultFilter(),
		Sort:     pipeline.DefaultSort(),
		Page:     1,
		PageSize: 10,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), calls.Load())
	assert.Equal(t, 3, st.Len())
	assert.Equal(t, 3, result.Pagination.TotalItems)
	assert.Equal(t, 0, result.ActiveFilterCount)
	// Default sort is name ascending.
	require.Len(t, result.Products, 3)
	assert.Equal(t, "Cotton T-Shirt", result.Products[0].Name)
}

func TestListAppliesFilter(t *testing.T) {
	products := catalogFixture()
	var calls atomic.Int64
	srv := catalogServer(t, &products, &calls)

	cs, _ := newCatalogService(t, srv.URL)

	filter := pipeline.DefaultFilter()
	filter.Status = structs.StatusActive

	result, err := cs.List(context.Background(), ListOptions{
		Filter:   filter,
		Sort:     pipeline.DefaultSort(),
		Page:     1,
		PageSize: 10,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Pagination.TotalItems)
	assert.Equal(t, 1, result.ActiveFilterCount)
	for _, p := range result.Products {
		assert.True(t, p.Status)
	}
}

func TestMutationsRefetchWholeSet(t *testing.T) {
	products := catalogFixture()
	var calls atomic.Int64
	srv := catalogServer(t, &products, &calls)

	cs, st := newCatalogService(t, srv.URL)
	require.NoError(t, cs.Load(context.Background()))
	require.Equal(t, int64(1), calls.Load())

	t.Run("Create", func(t *testing.T) {
		err := cs.Create(context.Background(), &ProductInput{Name: "New", Price: 9.99, Stock: 3})
		require.NoError(t, err)
		assert.Equal(t, int64(2), calls.Load())
	})

	t.Run("Update", func(t *testing.T) {
		err := cs.Update(context.Background(), 1, &ProductInput{Name: "Renamed", Price: 30, Stock: 4})
		require.NoError(t, err)
		assert.Equal(t, int64(3), calls.Load())
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, cs.Delete(context.Background(), 2))
		assert.Equal(t, int64(4), calls.Load())
		// Upstream still serves the record, so the refetch restored it.
		_, ok := st.Get(2)
		assert.True(t, ok)
	})

	t.Run("UnknownIDFailsBeforeLatency", func(t *testing.T) {
		err := cs.Update(context.Background(), 999, &ProductInput{Name: "X"})
		assert.ErrorIs(t, err, ErrProductNotFound)
		err = cs.Delete(context.Background(), 999)
		assert.ErrorIs(t, err, ErrProductNotFound)
		assert.Equal(t, int64(4), calls.Load())
	})
}

func TestMutationHonorsCancellation(t *testing.T) {
	products := catalogFixture()
	var calls atomic.Int64
	srv := catalogServer(t, &products, &calls)

	cs, _ := newCatalogService(t, srv.URL)
	cs.cfg.Mutation.SimulatedLatency = time.Second

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := cs.Create(ctx, &ProductInput{Name: "Doomed", Price: 1})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int64(0), calls.Load())
}

func TestRefreshFailureKeepsPreviousSet(t *testing.T) {
	products := catalogFixture()
	var calls atomic.Int64
	srv := catalogServer(t, &products, &calls)

	cs, st := newCatalogService(t, srv.URL)
	require.NoError(t, cs.Load(context.Background()))
	require.Equal(t, 3, st.Len())

	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(failing.Close)

	broken, _ := newCatalogService(t, failing.URL)
	broken.store = st

	err := broken.Refresh(context.Background())
	require.Error(t, err)
	assert.Equal(t, 3, st.Len())
}

func TestBulkDeleteIsLocalOnly(t *testing.T) {
	products := catalogFixture()
	var calls atomic.Int64
	srv := catalogServer(t, &products, &calls)

	cs, st := newCatalogService(t, srv.URL)
	require.NoError(t, cs.Load(context.Background()))

	removed := cs.BulkDelete([]int{1, 3, 99})
	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, st.Len())
	// No refetch happened.
	assert.Equal(t, int64(1), calls.Load())

	// The next refresh silently restores the records.
	require.NoError(t, cs.Refresh(context.Background()))
	assert.Equal(t, 3, st.Len())
}

func TestExportCSV(t *testing.T) {
	cs, st := newCatalogService(t, "http://unused.invalid")
	st.Replace([]structs.Product{
		{ID: 1, Name: "Wireless Mouse", Price: 25.5, Stock: 4, Status: true, Category: structs.CategoryElectronics},
		{ID: 2, Name: "Cotton T-Shirt", Price: 15, Stock: 80, Status: false, Category: structs.CategoryClothing},
		{ID: 3, Name: "Desk Lamp", Price: 40, Stock: 12, Status: true, Category: structs.CategoryHome},
	})

	csv, count := cs.ExportCSV([]int{1, 2})
	assert.Equal(t, 2, count)

	lines := strings.Split(csv, "\n")
	require.Len(t, lines, 3) // header + one row per selected record
	assert.Equal(t, "ID,Name,Price,Stock,Category,Status", lines[0])
	assert.Equal(t, `1,"Wireless Mouse",25.50,4,"electronics",Active`, lines[1])
	assert.Equal(t, `2,"Cotton T-Shirt",15.00,80,"clothing",Inactive`, lines[2])
}

func TestExportCSVUnknownIDsAreSkipped(t *testing.T) {
	cs, st := newCatalogService(t, "http://unused.invalid")
	st.Replace([]structs.Product{{ID: 1, Name: "A", Price: 1, Stock: 1, Status: true}})

	csv, count := cs.ExportCSV([]int{1, 2, 3})
	assert.Equal(t, 1, count)
	assert.Len(t, strings.Split(csv, "\n"), 2)
}

func TestCountAppliesFilter(t *testing.T) {
	products := catalogFixture()
	var calls atomic.Int64
	srv := catalogServer(t, &products, &calls)

	cs, _ := newCatalogService(t, srv.URL)

	filter := pipeline.DefaultFilter()
	filter.Category = "home"

	count, err := cs.Count(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
