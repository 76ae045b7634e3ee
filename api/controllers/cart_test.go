package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ecomvoyage/ecomvoyage-backend/api/middleware"
	cartsvc "github.com/ecomvoyage/ecomvoyage-backend/internal/cart"
	"github.com/ecomvoyage/ecomvoyage-backend/internal/catalog"
	pkgerrors "github.com/ecomvoyage/ecomvoyage-backend/pkg/errors"
)

type fakeCartService struct {
	snapshot cartsvc.Snapshot
	err      error

	watchSnapshots []cartsvc.Snapshot
}

func (f *fakeCartService) Add(_ context.Context, uid, _ string, _ int64) (cartsvc.Snapshot, error) {
	if uid == "" {
		return cartsvc.Snapshot{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "sign in to use the cart")
	}
	return f.snapshot, f.err
}

func (f *fakeCartService) Remove(context.Context, string, string) (cartsvc.Snapshot, error) {
	return f.snapshot, f.err
}

func (f *fakeCartService) UpdateQuantity(context.Context, string, string, int64) (cartsvc.Snapshot, error) {
	return f.snapshot, f.err
}

func (f *fakeCartService) Clear(context.Context, string) error {
	return f.err
}

func (f *fakeCartService) Get(context.Context, string) (cartsvc.Snapshot, error) {
	return f.snapshot, f.err
}

func (f *fakeCartService) Watch(ctx context.Context, _ string, fn func(cartsvc.Snapshot)) error {
	for _, snapshot := range f.watchSnapshots {
		fn(snapshot)
	}
	return nil
}

func authedRequest(method, target, body string) *http.Request {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	return req.WithContext(middleware.WithUserID(req.Context(), "user-1"))
}

func sampleSnapshot() cartsvc.Snapshot {
	watch := catalog.Product{ID: "1", Name: "Classic Leather Watch", Price: decimal.RequireFromString("1499.99")}
	return cartsvc.Snapshot{
		Items: []cartsvc.Item{{Product: watch, Quantity: 3}},
		Count: 3,
		Total: decimal.RequireFromString("4499.97"),
	}
}

func TestAddCartItemValidatesBody(t *testing.T) {
	t.Parallel()

	handler := AddCartItem(&fakeCartService{}, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/v1/cart", `{"product_id":"1","quantity":0}`))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for zero quantity, got %d", rec.Code)
	}
}

func TestAddCartItemReturnsSnapshot(t *testing.T) {
	t.Parallel()

	handler := AddCartItem(&fakeCartService{snapshot: sampleSnapshot()}, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/v1/cart", `{"product_id":"1","quantity":3}`))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	data := decodeData(t, rec)
	if data["count"] != float64(3) {
		t.Fatalf("expected count 3, got %v", data["count"])
	}
	if data["total"] != "4499.97" {
		t.Fatalf("expected total 4499.97, got %v", data["total"])
	}
}

func TestAddCartItemUnauthenticated(t *testing.T) {
	t.Parallel()

	handler := AddCartItem(&fakeCartService{}, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart", strings.NewReader(`{"product_id":"1","quantity":1}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestGetCartSurfacesDependencyFailure(t *testing.T) {
	t.Parallel()

	svc := &fakeCartService{err: pkgerrors.Wrap(pkgerrors.CodeDependency, errors.New("firestore down"), "load cart")}
	handler := GetCart(svc, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/v1/cart", ""))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestWatchCartStreamsEvents(t *testing.T) {
	t.Parallel()

	svc := &fakeCartService{watchSnapshots: []cartsvc.Snapshot{sampleSnapshot()}}
	handler := WatchCart(svc, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/v1/cart/watch", ""))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("expected event-stream content type, got %q", ct)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "event: cart") || !strings.Contains(body, `"count":3`) {
		t.Fatalf("expected cart event in stream, got %q", body)
	}
}
