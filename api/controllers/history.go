package controllers

import (
	"net/http"

	"github.com/ecomvoyage/ecomvoyage-backend/api/responses"
	"github.com/ecomvoyage/ecomvoyage-backend/api/validators"
	"github.com/ecomvoyage/ecomvoyage-backend/internal/catalog"
	"github.com/ecomvoyage/ecomvoyage-backend/internal/history"
	"github.com/ecomvoyage/ecomvoyage-backend/pkg/logger"
)

type addHistoryRequest struct {
	ProductID string `json:"product_id" validate:"required,max=64"`
}

// GetHistory returns the device's recently viewed products, most recent
// first, resolved against the catalog.
func GetHistory(svc history.Service, cat *catalog.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deviceID, err := validators.DeviceID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", history.MaxEntries, 1, history.MaxEntries)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ids := svc.List(r.Context(), deviceID)
		if len(ids) > limit {
			ids = ids[:limit]
		}
		responses.WriteSuccess(w, map[string]any{
			"product_ids": ids,
			"products":    cat.ProductsByIDs(ids),
		})
	}
}

// AddHistory records a product view for the device.
func AddHistory(svc history.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deviceID, err := validators.DeviceID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload addHistoryRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ids, err := svc.Add(r.Context(), deviceID, payload.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"product_ids": ids})
	}
}
