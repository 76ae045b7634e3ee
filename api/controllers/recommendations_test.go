package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ecomvoyage/ecomvoyage-backend/internal/catalog"
	"github.com/ecomvoyage/ecomvoyage-backend/internal/recommendations"
)

type fakeRecommender struct {
	products []catalog.Product
	gotInput recommendations.Input
}

func (f *fakeRecommender) Fetch(_ context.Context, input recommendations.Input) []catalog.Product {
	f.gotInput = input
	return f.products
}

func TestGetRecommendationsPassesSignals(t *testing.T) {
	t.Parallel()

	rec := &fakeRecommender{products: []catalog.Product{{ID: "4"}, {ID: "7"}}}
	handler := GetRecommendations(rec, nil, nil)

	body := `{"browsing_history":["4","1"],"shopping_cart_items":["2"],"exclude_product_id":"1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if rec.gotInput.ExcludeProductID != "1" || len(rec.gotInput.BrowsingHistory) != 2 || len(rec.gotInput.ShoppingCartItems) != 1 {
		t.Fatalf("unexpected input %+v", rec.gotInput)
	}
	data := decodeData(t, w)
	products, ok := data["products"].([]any)
	if !ok || len(products) != 2 {
		t.Fatalf("expected 2 products, got %v", data["products"])
	}
}

func TestGetRecommendationsDerivesCartForSignedInShopper(t *testing.T) {
	t.Parallel()

	rec := &fakeRecommender{}
	carts := &fakeCartService{snapshot: sampleSnapshot()}
	handler := GetRecommendations(rec, carts, nil)

	req := authedRequest(http.MethodPost, "/api/v1/recommendations", `{"browsing_history":["4"]}`)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if len(rec.gotInput.ShoppingCartItems) != 1 || rec.gotInput.ShoppingCartItems[0] != "1" {
		t.Fatalf("expected cart ids derived from the live cart, got %+v", rec.gotInput.ShoppingCartItems)
	}
}
