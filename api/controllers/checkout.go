package controllers

import (
	"net/http"

	"github.com/ecomvoyage/ecomvoyage-backend/api/middleware"
	"github.com/ecomvoyage/ecomvoyage-backend/api/responses"
	"github.com/ecomvoyage/ecomvoyage-backend/api/validators"
	checkoutsvc "github.com/ecomvoyage/ecomvoyage-backend/internal/checkout"
	"github.com/ecomvoyage/ecomvoyage-backend/pkg/logger"
)

type checkoutRequest struct {
	Name    string `json:"name" validate:"required,max=128"`
	Email   string `json:"email" validate:"required,email,max=254"`
	Address string `json:"address" validate:"required,max=256"`
	City    string `json:"city" validate:"required,max=128"`
	ZipCode string `json:"zip_code" validate:"required,max=16"`
}

// Checkout places the order for the signed-in shopper and empties the cart.
func Checkout(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := middleware.UserIDFromContext(r.Context())

		var payload checkoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.PlaceOrder(r.Context(), uid, checkoutsvc.ShippingDetails{
			Name:    payload.Name,
			Email:   payload.Email,
			Address: payload.Address,
			City:    payload.City,
			ZipCode: payload.ZipCode,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}
