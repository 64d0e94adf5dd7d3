package upstream

import (
	"context"
	"encoding/json"
	"masterpos_server/structs"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *Client {
	return NewClient(gecho.NewDefaultLogger(), &structs.UpstreamConfig{
		BaseURL:        baseURL,
		Page:           1,
		RequestTimeout: 2 * time.Second,
	})
}

func TestFetchProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []structs.Product{
				{ID: 1, Name: "Mouse", Price: 25, Stock: 4, Status: true, Category: structs.CategoryElectronics},
				{ID: 2, Name: "Lamp", Price: 40, Stock: 12, Status: false, Category: structs.CategoryHome},
			},
		})
	}))
	t.Cleanup(srv.Close)

	products, err := newTestClient(srv.URL).FetchProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Mouse", products[0].Name)
	assert.Equal(t, structs.CategoryHome, products[1].Category)
}

func TestFetchProductsToleratesUnknownFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[{"id":1,"name":"X","unexpected":"field"}],"total":1}`))
	}))
	t.Cleanup(srv.Close)

	products, err := newTestClient(srv.URL).FetchProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, 1, products[0].ID)
}

func TestFetchProductsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	_, err := newTestClient(srv.URL).FetchProducts(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestFetchProductsBadBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	t.Cleanup(srv.Close)

	_, err := newTestClient(srv.URL).FetchProducts(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestFetchProductsEmptySet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	t.Cleanup(srv.Close)

	products, err := newTestClient(srv.URL).FetchProducts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, products)
}
