package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/genai"

	"github.com/ecomvoyage/ecomvoyage-backend/api/controllers"
	"github.com/ecomvoyage/ecomvoyage-backend/api/routes"
	"github.com/ecomvoyage/ecomvoyage-backend/internal/cart"
	"github.com/ecomvoyage/ecomvoyage-backend/internal/catalog"
	"github.com/ecomvoyage/ecomvoyage-backend/internal/checkout"
	"github.com/ecomvoyage/ecomvoyage-backend/internal/history"
	"github.com/ecomvoyage/ecomvoyage-backend/internal/recommendations"
	"github.com/ecomvoyage/ecomvoyage-backend/pkg/config"
	"github.com/ecomvoyage/ecomvoyage-backend/pkg/firebase"
	"github.com/ecomvoyage/ecomvoyage-backend/pkg/logger"
	"github.com/ecomvoyage/ecomvoyage-backend/pkg/metrics"
	"github.com/ecomvoyage/ecomvoyage-backend/pkg/pubsub"
	"github.com/ecomvoyage/ecomvoyage-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	fbApp, err := firebase.New(context.Background(), cfg.GCP, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap firebase", err)
		os.Exit(1)
	}
	defer func() {
		if err := fbApp.Close(); err != nil {
			logg.Error(context.Background(), "error closing firebase", err)
		}
	}()

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	pubsubClient, err := pubsub.NewClient(context.Background(), cfg.GCP, cfg.PubSub, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap pubsub", err)
		os.Exit(1)
	}
	defer func() {
		if err := pubsubClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing pubsub", err)
		}
	}()

	genaiClient, err := genai.NewClient(context.Background(), &genai.ClientConfig{APIKey: cfg.GenAI.APIKey})
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap genai", err)
		os.Exit(1)
	}

	storefrontMetrics := metrics.NewStorefrontMetrics(prometheus.DefaultRegisterer)
	cat := catalog.New()

	historyService, err := history.NewService(redisClient, logg, cfg.History.TTL)
	if err != nil {
		logg.Error(context.Background(), "failed to create history service", err)
		os.Exit(1)
	}

	cartRepo, err := cart.NewRepository(fbApp.Firestore(), logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart repository", err)
		os.Exit(1)
	}
	cartService, err := cart.NewService(cartRepo, cat, storefrontMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	recommender, err := recommendations.NewService(genaiClient, cfg.GenAI.Model, cfg.GenAI.Timeout, cat, storefrontMetrics, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create recommendation service", err)
		os.Exit(1)
	}

	ordersPublisher, err := checkout.NewPubsubPublisher(pubsubClient.OrdersPublisher())
	if err != nil {
		logg.Error(context.Background(), "failed to create orders publisher", err)
		os.Exit(1)
	}
	checkoutService, err := checkout.NewService(cartService, ordersPublisher, storefrontMetrics, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config: cfg,
			Logger: logg,
			Redis:  redisClient,
			Pingers: map[string]controllers.Pinger{
				"redis":    redisClient,
				"firebase": fbApp,
				"pubsub":   pubsubClient,
			},
			Verifier:        fbApp.Auth(),
			Catalog:         cat,
			History:         historyService,
			Cart:            cartService,
			Checkout:        checkoutService,
			Recommendations: recommender,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
