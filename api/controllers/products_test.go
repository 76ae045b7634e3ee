package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ecomvoyage/ecomvoyage-backend/internal/catalog"
	"github.com/ecomvoyage/ecomvoyage-backend/pkg/types"
)

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope types.SuccessEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	data, ok := envelope.Data.(map[string]any)
	if !ok {
		t.Fatalf("expected object data, got %T", envelope.Data)
	}
	return data
}

func TestListProductsReturnsSeededCatalog(t *testing.T) {
	t.Parallel()

	handler := ListProducts(catalog.New(), nil)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	data := decodeData(t, rec)
	products, ok := data["products"].([]any)
	if !ok || len(products) == 0 {
		t.Fatalf("expected a non-empty product list, got %v", data["products"])
	}
}

func TestListProductsFiltersByCategory(t *testing.T) {
	t.Parallel()

	cat := catalog.New()
	handler := ListProducts(cat, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?category=Electronics", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	data := decodeData(t, rec)
	products := data["products"].([]any)
	if len(products) == 0 || len(products) == cat.Len() {
		t.Fatalf("expected a strict subset for category filter, got %d of %d", len(products), cat.Len())
	}
	for _, raw := range products {
		product := raw.(map[string]any)
		if product["category"] != "Electronics" {
			t.Fatalf("expected only Electronics, got %v", product["category"])
		}
	}
}

func TestGetProduct(t *testing.T) {
	t.Parallel()

	handler := GetProduct(catalog.New(), nil)

	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("productId", "1")
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/1", nil)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestGetProductNotFound(t *testing.T) {
	t.Parallel()

	handler := GetProduct(catalog.New(), nil)

	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("productId", "does-not-exist")
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/does-not-exist", nil)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestListCategoriesDistinct(t *testing.T) {
	t.Parallel()

	handler := ListCategories(catalog.New())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	data := decodeData(t, rec)
	categories, ok := data["categories"].([]any)
	if !ok || len(categories) == 0 {
		t.Fatalf("expected categories, got %v", data["categories"])
	}
	seen := map[any]bool{}
	for _, c := range categories {
		if seen[c] {
			t.Fatalf("duplicate category %v", c)
		}
		seen[c] = true
	}
}
