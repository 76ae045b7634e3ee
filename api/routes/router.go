package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ecomvoyage/ecomvoyage-backend/api/controllers"
	"github.com/ecomvoyage/ecomvoyage-backend/api/middleware"
	cartsvc "github.com/ecomvoyage/ecomvoyage-backend/internal/cart"
	"github.com/ecomvoyage/ecomvoyage-backend/internal/catalog"
	checkoutsvc "github.com/ecomvoyage/ecomvoyage-backend/internal/checkout"
	historysvc "github.com/ecomvoyage/ecomvoyage-backend/internal/history"
	"github.com/ecomvoyage/ecomvoyage-backend/internal/recommendations"
	"github.com/ecomvoyage/ecomvoyage-backend/pkg/config"
	"github.com/ecomvoyage/ecomvoyage-backend/pkg/logger"
	"github.com/ecomvoyage/ecomvoyage-backend/pkg/redis"
)

// Deps bundles everything the HTTP surface needs.
type Deps struct {
	Config  *config.Config
	Logger  *logger.Logger
	Redis   *redis.Client
	Pingers map[string]controllers.Pinger

	Verifier middleware.TokenVerifier

	Catalog         *catalog.Catalog
	History         historysvc.Service
	Cart            cartsvc.Service
	Checkout        checkoutsvc.Service
	Recommendations recommendations.Recommender
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.Pingers))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		// Public storefront surface.
		r.Get("/products", controllers.ListProducts(deps.Catalog, logg))
		r.Get("/products/{productId}", controllers.GetProduct(deps.Catalog, logg))
		r.Get("/categories", controllers.ListCategories(deps.Catalog))

		r.Get("/history", controllers.GetHistory(deps.History, deps.Catalog, logg))
		r.Post("/history", controllers.AddHistory(deps.History, logg))

		r.With(middleware.OptionalAuth(deps.Verifier, logg)).
			Post("/recommendations", controllers.GetRecommendations(deps.Recommendations, deps.Cart, logg))

		// Signed-in surface.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(deps.Verifier, logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.GetCart(deps.Cart, logg))
				r.Post("/", controllers.AddCartItem(deps.Cart, logg))
				r.Delete("/", controllers.ClearCart(deps.Cart, logg))
				r.Get("/watch", controllers.WatchCart(deps.Cart, logg))
				r.Patch("/{productId}", controllers.UpdateCartItem(deps.Cart, logg))
				r.Delete("/{productId}", controllers.RemoveCartItem(deps.Cart, logg))
			})

			r.With(middleware.Idempotency(deps.Redis, logg)).
				Post("/checkout", controllers.Checkout(deps.Checkout, logg))
		})
	})

	return r
}
