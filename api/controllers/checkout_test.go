package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	checkoutsvc "github.com/ecomvoyage/ecomvoyage-backend/internal/checkout"
	pkgerrors "github.com/ecomvoyage/ecomvoyage-backend/pkg/errors"
)

type fakeCheckoutService struct {
	order checkoutsvc.Order
	err   error

	gotUID     string
	gotDetails checkoutsvc.ShippingDetails
}

func (f *fakeCheckoutService) PlaceOrder(_ context.Context, uid string, details checkoutsvc.ShippingDetails) (checkoutsvc.Order, error) {
	f.gotUID = uid
	f.gotDetails = details
	if f.err != nil {
		return checkoutsvc.Order{}, f.err
	}
	return f.order, nil
}

const validCheckoutBody = `{"name":"Ada Lovelace","email":"ada@example.com","address":"12 Analytical Way","city":"London","zip_code":"EC1A 1AA"}`

func TestCheckoutPlacesOrder(t *testing.T) {
	t.Parallel()

	svc := &fakeCheckoutService{order: checkoutsvc.Order{ID: "order-1", Total: decimal.RequireFromString("4499.97")}}
	handler := Checkout(svc, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/v1/checkout", validCheckoutBody))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.gotUID != "user-1" {
		t.Fatalf("expected uid user-1, got %q", svc.gotUID)
	}
	if svc.gotDetails.Email != "ada@example.com" {
		t.Fatalf("unexpected details %+v", svc.gotDetails)
	}
}

func TestCheckoutValidatesForm(t *testing.T) {
	t.Parallel()

	handler := Checkout(&fakeCheckoutService{}, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/v1/checkout", `{"name":"Ada","email":"not-an-email","address":"x","city":"y","zip_code":"z"}`))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad email, got %d", rec.Code)
	}
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	t.Parallel()

	svc := &fakeCheckoutService{err: pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")}
	handler := Checkout(svc, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/v1/checkout", validCheckoutBody))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty cart, got %d", rec.Code)
	}
}
