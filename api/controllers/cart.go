package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ecomvoyage/ecomvoyage-backend/api/middleware"
	"github.com/ecomvoyage/ecomvoyage-backend/api/responses"
	"github.com/ecomvoyage/ecomvoyage-backend/api/validators"
	cartsvc "github.com/ecomvoyage/ecomvoyage-backend/internal/cart"
	pkgerrors "github.com/ecomvoyage/ecomvoyage-backend/pkg/errors"
	"github.com/ecomvoyage/ecomvoyage-backend/pkg/logger"
)

type addCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required,max=64"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
}

type updateCartItemRequest struct {
	Quantity int64 `json:"quantity" validate:"gte=0"`
}

func GetCart(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := middleware.UserIDFromContext(r.Context())
		snapshot, err := svc.Get(r.Context(), uid)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, snapshot)
	}
}

func AddCartItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := middleware.UserIDFromContext(r.Context())

		var payload addCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		snapshot, err := svc.Add(r.Context(), uid, payload.ProductID, payload.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, snapshot)
	}
}

func UpdateCartItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := middleware.UserIDFromContext(r.Context())
		productID := validators.SanitizeString(chi.URLParam(r, "productId"), 64)

		var payload updateCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		snapshot, err := svc.UpdateQuantity(r.Context(), uid, productID, payload.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, snapshot)
	}
}

func RemoveCartItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := middleware.UserIDFromContext(r.Context())
		productID := validators.SanitizeString(chi.URLParam(r, "productId"), 64)

		snapshot, err := svc.Remove(r.Context(), uid, productID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, snapshot)
	}
}

func ClearCart(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := middleware.UserIDFromContext(r.Context())

		if err := svc.Clear(r.Context(), uid); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "cleared"})
	}
}

// WatchCart streams cart snapshots over server-sent events. The stream
// carries the full derived cart on every remote change and ends when the
// client disconnects.
func WatchCart(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := middleware.UserIDFromContext(r.Context())
		if uid == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "sign in to use the cart"))
			return
		}

		flusher, ok := w.(http.Flusher)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "streaming unsupported"))
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)
		flusher.Flush()

		err := svc.Watch(r.Context(), uid, func(snapshot cartsvc.Snapshot) {
			payload, marshalErr := json.Marshal(snapshot)
			if marshalErr != nil {
				if logg != nil {
					logg.Error(r.Context(), "encode cart snapshot", marshalErr)
				}
				return
			}
			fmt.Fprintf(w, "event: cart\ndata: %s\n\n", payload)
			flusher.Flush()
		})
		if err != nil && logg != nil {
			logg.Error(r.Context(), "cart watch ended", err)
		}
	}
}
