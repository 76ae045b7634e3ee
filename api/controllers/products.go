package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ecomvoyage/ecomvoyage-backend/api/responses"
	"github.com/ecomvoyage/ecomvoyage-backend/api/validators"
	"github.com/ecomvoyage/ecomvoyage-backend/internal/catalog"
	pkgerrors "github.com/ecomvoyage/ecomvoyage-backend/pkg/errors"
	"github.com/ecomvoyage/ecomvoyage-backend/pkg/logger"
)

// ListProducts returns the catalog, optionally narrowed by category and a
// free-text query.
func ListProducts(cat *catalog.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := validators.SanitizeString(r.URL.Query().Get("category"), 64)
		query := validators.SanitizeString(r.URL.Query().Get("q"), 128)

		responses.WriteSuccess(w, map[string]any{
			"products": cat.List(category, query),
		})
	}
}

func GetProduct(cat *catalog.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := validators.SanitizeString(chi.URLParam(r, "productId"), 64)
		product, ok := cat.ProductByID(id)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}
		responses.WriteSuccess(w, product)
	}
}

func ListCategories(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{
			"categories": cat.Categories(),
		})
	}
}
