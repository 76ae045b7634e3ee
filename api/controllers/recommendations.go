package controllers

import (
	"net/http"

	"github.com/ecomvoyage/ecomvoyage-backend/api/middleware"
	"github.com/ecomvoyage/ecomvoyage-backend/api/responses"
	"github.com/ecomvoyage/ecomvoyage-backend/api/validators"
	cartsvc "github.com/ecomvoyage/ecomvoyage-backend/internal/cart"
	"github.com/ecomvoyage/ecomvoyage-backend/internal/recommendations"
	"github.com/ecomvoyage/ecomvoyage-backend/pkg/logger"
)

type recommendationsRequest struct {
	BrowsingHistory   []string `json:"browsing_history" validate:"max=20,dive,max=64"`
	ShoppingCartItems []string `json:"shopping_cart_items" validate:"max=50,dive,max=64"`
	ExcludeProductID  string   `json:"exclude_product_id" validate:"max=64"`
}

// GetRecommendations asks the model for suggestions. Signed-in shoppers
// get their live cart contents merged in when the request doesn't carry
// them; anonymous shoppers are served from browsing history alone.
func GetRecommendations(svc recommendations.Recommender, carts cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload recommendationsRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cartIDs := payload.ShoppingCartItems
		if len(cartIDs) == 0 && carts != nil {
			if uid := middleware.UserIDFromContext(r.Context()); uid != "" {
				if snapshot, err := carts.Get(r.Context(), uid); err == nil {
					for _, item := range snapshot.Items {
						cartIDs = append(cartIDs, item.Product.ID)
					}
				}
			}
		}

		products := svc.Fetch(r.Context(), recommendations.Input{
			BrowsingHistory:   payload.BrowsingHistory,
			ShoppingCartItems: cartIDs,
			ExcludeProductID:  payload.ExcludeProductID,
		})

		responses.WriteSuccess(w, map[string]any{"products": products})
	}
}
