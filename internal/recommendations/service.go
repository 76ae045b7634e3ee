package recommendations

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/ecomvoyage/ecomvoyage-backend/internal/catalog"
	"github.com/ecomvoyage/ecomvoyage-backend/pkg/logger"
	"github.com/ecomvoyage/ecomvoyage-backend/pkg/metrics"
)

// Recommender produces catalog products suggested for the current shopper.
type Recommender interface {
	// Fetch asks the hosted model for recommendations based on the shopper's
	// browsing history and cart contents, excluding the product currently
	// being viewed. It degrades to an empty list instead of failing: a model
	// outage must never break a product page.
	Fetch(ctx context.Context, input Input) []catalog.Product
}

// Input carries the shopper signals the model is prompted with.
type Input struct {
	BrowsingHistory   []string
	ShoppingCartItems []string
	ExcludeProductID  string
}

// modelCaller is the slice of *genai.Models the service needs.
type modelCaller interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type service struct {
	models  modelCaller
	model   string
	timeout time.Duration
	catalog *catalog.Catalog
	metrics *metrics.StorefrontMetrics
	logg    *logger.Logger
}

// NewService builds a recommender on top of a genai client.
func NewService(client *genai.Client, model string, timeout time.Duration, cat *catalog.Catalog, m *metrics.StorefrontMetrics, logg *logger.Logger) (Recommender, error) {
	if client == nil {
		return nil, fmt.Errorf("genai client required")
	}
	return newService(client.Models, model, timeout, cat, m, logg)
}

func newService(models modelCaller, model string, timeout time.Duration, cat *catalog.Catalog, m *metrics.StorefrontMetrics, logg *logger.Logger) (Recommender, error) {
	if models == nil {
		return nil, fmt.Errorf("genai models required")
	}
	if model == "" {
		return nil, fmt.Errorf("model name required")
	}
	if cat == nil {
		return nil, fmt.Errorf("catalog required")
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &service{models: models, model: model, timeout: timeout, catalog: cat, metrics: m, logg: logg}, nil
}

// modelReply matches the JSON object the response schema constrains the
// model to.
type modelReply struct {
	RecommendedProducts []string `json:"recommendedProducts"`
}

func (s *service) Fetch(ctx context.Context, input Input) []catalog.Product {
	// No signal, no call.
	if len(input.BrowsingHistory) == 0 && len(input.ShoppingCartItems) == 0 {
		return []catalog.Product{}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	response, err := s.models.GenerateContent(ctx, s.model, genai.Text(s.prompt(input)), s.generateConfig())
	if err != nil {
		s.metrics.ObserveRecommendation("failure", time.Since(start))
		s.logError(ctx, "recommendation call failed", err)
		return []catalog.Product{}
	}

	var reply modelReply
	if err := json.Unmarshal([]byte(response.Text()), &reply); err != nil {
		s.metrics.ObserveRecommendation("failure", time.Since(start))
		s.logError(ctx, "recommendation response did not match schema", err)
		return []catalog.Product{}
	}
	s.metrics.ObserveRecommendation("success", time.Since(start))

	return s.resolve(reply.RecommendedProducts, input.ExcludeProductID)
}

func (s *service) logError(ctx context.Context, msg string, err error) {
	if s.logg == nil {
		return
	}
	s.logg.Error(ctx, msg, err)
}

// resolve filters the model's ids: the viewed product is dropped, repeats
// keep their first occurrence, and ids the catalog cannot resolve are
// discarded.
func (s *service) resolve(ids []string, excludeID string) []catalog.Product {
	seen := make(map[string]struct{}, len(ids))
	products := make([]catalog.Product, 0, len(ids))
	for _, id := range ids {
		if id == "" || id == excludeID {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		product, ok := s.catalog.ProductByID(id)
		if !ok {
			continue
		}
		products = append(products, product)
	}
	return products
}

func (s *service) generateConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"recommendedProducts": {
					Type:        genai.TypeArray,
					Description: "Product ids from the store catalog, best match first.",
					Items:       &genai.Schema{Type: genai.TypeString},
				},
			},
			Required: []string{"recommendedProducts"},
		},
	}
}

func (s *service) prompt(input Input) string {
	var b strings.Builder
	b.WriteString("You are a product recommendation engine for an online store.\n")
	b.WriteString("Recommend up to 5 products the shopper is most likely to want next, ")
	b.WriteString("based on their browsing history and shopping cart. ")
	b.WriteString("Only use product ids from the catalog below and never recommend a product already in the cart.\n\n")

	b.WriteString("Catalog:\n")
	for _, product := range s.catalog.List("", "") {
		fmt.Fprintf(&b, "- id=%s name=%q category=%s price=%s\n", product.ID, product.Name, product.Category, product.Price)
	}

	b.WriteString("\nbrowsingHistory: ")
	b.WriteString(jsonList(input.BrowsingHistory))
	b.WriteString("\nshoppingCartItems: ")
	b.WriteString(jsonList(input.ShoppingCartItems))
	b.WriteString("\n\nRespond with JSON: {\"recommendedProducts\": [\"<product id>\", ...]}\n")
	return b.String()
}

func jsonList(ids []string) string {
	if len(ids) == 0 {
		return "[]"
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return "[]"
	}
	return string(raw)
}
