package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	pubsub "cloud.google.com/go/pubsub/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ecomvoyage/ecomvoyage-backend/internal/cart"
	pkgerrors "github.com/ecomvoyage/ecomvoyage-backend/pkg/errors"
	"github.com/ecomvoyage/ecomvoyage-backend/pkg/logger"
	"github.com/ecomvoyage/ecomvoyage-backend/pkg/metrics"
)

// ShippingDetails is the buyer-entered form accompanying an order.
type ShippingDetails struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	City    string `json:"city"`
	ZipCode string `json:"zip_code"`
}

// OrderLine is one purchased product at the quantity found in the cart.
type OrderLine struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Order is the placed order returned to the buyer and published downstream.
type Order struct {
	ID       string          `json:"id"`
	UserID   string          `json:"user_id"`
	Shipping ShippingDetails `json:"shipping"`
	Lines    []OrderLine     `json:"lines"`
	Total    decimal.Decimal `json:"total"`
	PlacedAt time.Time       `json:"placed_at"`
}

// Service places orders. Placing an order empties the buyer's cart.
type Service interface {
	PlaceOrder(ctx context.Context, uid string, details ShippingDetails) (Order, error)
}

// eventPublisher delivers the order-placed event to downstream consumers.
type eventPublisher interface {
	PublishOrderPlaced(ctx context.Context, order Order) error
}

type service struct {
	carts     cart.Service
	publisher eventPublisher
	metrics   *metrics.StorefrontMetrics
	logg      *logger.Logger
	now       func() time.Time
}

// NewService builds a checkout service on top of the cart service. The
// publisher may be nil when order events are not configured.
func NewService(carts cart.Service, publisher eventPublisher, m *metrics.StorefrontMetrics, logg *logger.Logger) (Service, error) {
	if carts == nil {
		return nil, fmt.Errorf("cart service required")
	}
	return &service{
		carts:     carts,
		publisher: publisher,
		metrics:   m,
		logg:      logg,
		now:       func() time.Time { return time.Now().UTC() },
	}, nil
}

func (s *service) PlaceOrder(ctx context.Context, uid string, details ShippingDetails) (Order, error) {
	if strings.TrimSpace(uid) == "" {
		return Order{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "sign in to check out")
	}

	snapshot, err := s.carts.Get(ctx, uid)
	if err != nil {
		return Order{}, err
	}
	if snapshot.Count == 0 {
		return Order{}, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	order := Order{
		ID:       uuid.NewString(),
		UserID:   uid,
		Shipping: details,
		Lines:    make([]OrderLine, 0, len(snapshot.Items)),
		Total:    snapshot.Total,
		PlacedAt: s.now(),
	}
	for _, item := range snapshot.Items {
		order.Lines = append(order.Lines, OrderLine{
			ProductID: item.Product.ID,
			Name:      item.Product.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.Product.Price,
		})
	}

	// The cart wipe is part of placing the order; a failed wipe fails the
	// checkout so the buyer can retry.
	if err := s.carts.Clear(ctx, uid); err != nil {
		return Order{}, err
	}

	// Downstream delivery is best effort; the order stands either way.
	if s.publisher != nil {
		if err := s.publisher.PublishOrderPlaced(ctx, order); err != nil && s.logg != nil {
			s.logg.Error(s.logg.WithField(ctx, "order_id", order.ID), "order event publish failed", err)
		}
	}

	s.metrics.IncCheckoutOrder()
	return order, nil
}

// PubsubPublisher publishes order events to the configured Pub/Sub topic.
type PubsubPublisher struct {
	publisher *pubsub.Publisher
}

// NewPubsubPublisher wraps an order-events topic publisher.
func NewPubsubPublisher(publisher *pubsub.Publisher) (*PubsubPublisher, error) {
	if publisher == nil {
		return nil, fmt.Errorf("pubsub publisher required")
	}
	return &PubsubPublisher{publisher: publisher}, nil
}

func (p *PubsubPublisher) PublishOrderPlaced(ctx context.Context, order Order) error {
	payload, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("encoding order event: %w", err)
	}
	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data: payload,
		Attributes: map[string]string{
			"event_type": "order.placed",
			"order_id":   order.ID,
		},
	})
	if _, err := result.Get(ctx); err != nil {
		return fmt.Errorf("publishing order event: %w", err)
	}
	return nil
}
