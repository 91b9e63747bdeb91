package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/emberandoak/storefront-core/internal/cart"
	"github.com/emberandoak/storefront-core/internal/wishlist"
	"github.com/emberandoak/storefront-core/pkg/config"
	"github.com/emberandoak/storefront-core/pkg/localstore"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	storage := localstore.NewMemory()
	cartStore, err := cart.NewStore(cart.Params{Storage: storage})
	if err != nil {
		t.Fatalf("cart store: %v", err)
	}
	wishlistStore, err := wishlist.NewStore(wishlist.Params{Storage: storage})
	if err != nil {
		t.Fatalf("wishlist store: %v", err)
	}

	cfg := &config.Config{
		App:     config.AppConfig{Env: "test", Port: "0"},
		Storage: config.StorageConfig{Backend: "memory", CartKey: "cart", WishlistKey: "wishlist"},
	}
	return NewRouter(cfg, nil, storage, cartStore, wishlistStore, prometheus.NewRegistry())
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHealthRoutes(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/health/live", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("live: expected 200, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/health/ready", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("ready: expected 200, got %d", rec.Code)
	}
	if rec.Header().Get("X-Storefront-Env") != "test" {
		t.Fatal("expected environment header")
	}
}

func TestMetricsRoute(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/metrics", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCatalogOptionsRoute(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	body := map[string]any{
		"product": map[string]any{"id": "p1", "title": "Candle", "price": "24.00", "in_stock": true},
		"variants": []map[string]any{
			{"id": "v1", "color": "Red", "sizes": []string{"8oz"}, "price": "24.00", "in_stock": true},
			{"id": "v2", "color": "Sage", "sizes": []string{"8oz", "16oz"}, "price": "24.00", "in_stock": true},
		},
	}
	rec := doJSON(t, router, http.MethodPost, "/api/v1/catalog/options", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Data struct {
			Groups []struct {
				Key     string `json:"key"`
				Options []struct {
					Value     string `json:"value"`
					VariantID string `json:"variant_id"`
				} `json:"options"`
			} `json:"groups"`
			InitialVariantID string `json:"initial_variant_id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Equal(t, "p1", envelope.Data.InitialVariantID)
	require.Len(t, envelope.Data.Groups, 2)
	require.Equal(t, "color", envelope.Data.Groups[0].Key)
	require.Equal(t, "size", envelope.Data.Groups[1].Key)
}

func TestCatalogResolveRoute(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	body := map[string]any{
		"product": map[string]any{"id": "p1", "title": "Candle", "price": "24.00", "in_stock": true},
		"variants": []map[string]any{
			{"id": "v1", "color": "Red", "price": "24.00", "in_stock": true},
		},
		"axis":  "color",
		"value": "Red",
	}
	rec := doJSON(t, router, http.MethodPost, "/api/v1/catalog/resolve", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	body["value"] = "Blue"
	rec = doJSON(t, router, http.MethodPost, "/api/v1/catalog/resolve", body)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown value: expected 404, got %d", rec.Code)
	}

	body["axis"] = "material"
	rec = doJSON(t, router, http.MethodPost, "/api/v1/catalog/resolve", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown axis: expected 400, got %d", rec.Code)
	}
}

func TestCartLifecycleRoutes(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	add := map[string]any{
		"product":  map[string]any{"id": "p1", "title": "Candle", "price": "24.00", "in_stock": true},
		"quantity": 2,
		"size":     "8oz",
	}
	rec := doJSON(t, router, http.MethodPost, "/api/v1/cart/", add)
	if rec.Code != http.StatusCreated {
		t.Fatalf("first add: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodPost, "/api/v1/cart/", add)
	if rec.Code != http.StatusOK {
		t.Fatalf("merge add: expected 200, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/v1/cart/", nil)
	var envelope struct {
		Data struct {
			Items []struct {
				ID       string `json:"id"`
				Quantity int    `json:"quantity"`
			} `json:"items"`
			Subtotal string `json:"subtotal"`
			Count    int    `json:"count"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data.Items, 1)
	require.Equal(t, 4, envelope.Data.Items[0].Quantity)
	require.Equal(t, 4, envelope.Data.Count)

	subtotal, err := decimal.NewFromString(envelope.Data.Subtotal)
	require.NoError(t, err)
	require.True(t, subtotal.Equal(decimal.NewFromInt(96)), "unexpected subtotal %s", subtotal)

	lineID := envelope.Data.Items[0].ID

	rec = doJSON(t, router, http.MethodPatch, "/api/v1/cart/"+lineID+"/quantity", map[string]int{"quantity": 1})
	if rec.Code != http.StatusOK {
		t.Fatalf("quantity: expected 200, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPatch, "/api/v1/cart/"+lineID+"/fulfillment", map[string]any{
		"method": "pickup",
		"pickup": map[string]string{"store_id": "s1"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("fulfillment: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodPatch, "/api/v1/cart/fulfillment", map[string]string{"method": "delivery"})
	if rec.Code != http.StatusOK {
		t.Fatalf("all fulfillment: expected 200, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodDelete, "/api/v1/cart/"+lineID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("remove: expected 200, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodDelete, "/api/v1/cart/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("clear: expected 200, got %d", rec.Code)
	}
}

func TestWishlistRoutes(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	add := map[string]any{
		"product": map[string]any{"id": "p1", "title": "Throw", "price": "58.00", "in_stock": true},
		"source":  "card",
	}
	rec := doJSON(t, router, http.MethodPost, "/api/v1/wishlist/", add)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodPost, "/api/v1/wishlist/toggle", add)
	var toggle struct {
		Data struct {
			Present bool `json:"present"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &toggle))
	require.False(t, toggle.Data.Present)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/wishlist/", nil)
	var envelope struct {
		Data struct {
			Count int `json:"count"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Equal(t, 0, envelope.Data.Count)

	rec = doJSON(t, router, http.MethodDelete, "/api/v1/wishlist/p1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("remove: expected 200, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodDelete, "/api/v1/wishlist/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("clear: expected 200, got %d", rec.Code)
	}
}

func TestInvalidBodyRejected(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/cart/", map[string]any{"unknown_field": true})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
