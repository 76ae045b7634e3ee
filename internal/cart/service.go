package cart

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ecomvoyage/ecomvoyage-backend/internal/catalog"
	pkgerrors "github.com/ecomvoyage/ecomvoyage-backend/pkg/errors"
	"github.com/ecomvoyage/ecomvoyage-backend/pkg/metrics"
)

// Service exposes the per-user cart operations. All calls are scoped to an
// authenticated user id; mutations with an empty uid are declined rather
// than silently ignored.
type Service interface {
	Add(ctx context.Context, uid, productID string, quantity int64) (Snapshot, error)
	Remove(ctx context.Context, uid, productID string) (Snapshot, error)
	UpdateQuantity(ctx context.Context, uid, productID string, quantity int64) (Snapshot, error)
	Clear(ctx context.Context, uid string) error
	Get(ctx context.Context, uid string) (Snapshot, error)
	Watch(ctx context.Context, uid string, fn func(Snapshot)) error
}

type service struct {
	repo    Repository
	catalog *catalog.Catalog
	metrics *metrics.StorefrontMetrics
}

// NewService builds a cart service backed by the provided repository.
func NewService(repo Repository, cat *catalog.Catalog, m *metrics.StorefrontMetrics) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	if cat == nil {
		return nil, fmt.Errorf("catalog required")
	}
	return &service{repo: repo, catalog: cat, metrics: m}, nil
}

// Add merges the quantity into any existing record for the product, or
// creates one.
func (s *service) Add(ctx context.Context, uid, productID string, quantity int64) (Snapshot, error) {
	if err := requireUser(uid); err != nil {
		return Snapshot{}, err
	}
	if quantity <= 0 {
		return Snapshot{}, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}
	if _, ok := s.catalog.ProductByID(productID); !ok {
		return Snapshot{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	existing, err := s.repo.Find(ctx, uid, productID)
	if err != nil {
		s.metrics.IncCartMutation("add", "failure")
		return Snapshot{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart record")
	}

	newQuantity := quantity
	if existing != nil {
		newQuantity += existing.Quantity
	}

	if err := s.repo.Upsert(ctx, uid, Record{ProductID: productID, Quantity: newQuantity}); err != nil {
		s.metrics.IncCartMutation("add", "failure")
		return Snapshot{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "add to cart")
	}
	s.metrics.IncCartMutation("add", "success")
	return s.Get(ctx, uid)
}

// Remove deletes the record for the product. Removing an absent product is
// a no-op.
func (s *service) Remove(ctx context.Context, uid, productID string) (Snapshot, error) {
	if err := requireUser(uid); err != nil {
		return Snapshot{}, err
	}
	if err := s.repo.Delete(ctx, uid, productID); err != nil {
		s.metrics.IncCartMutation("remove", "failure")
		return Snapshot{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "remove from cart")
	}
	s.metrics.IncCartMutation("remove", "success")
	return s.Get(ctx, uid)
}

// UpdateQuantity upserts the quantity; a quantity of zero or less removes
// the record.
func (s *service) UpdateQuantity(ctx context.Context, uid, productID string, quantity int64) (Snapshot, error) {
	if err := requireUser(uid); err != nil {
		return Snapshot{}, err
	}
	if quantity <= 0 {
		return s.Remove(ctx, uid, productID)
	}
	if err := s.repo.Upsert(ctx, uid, Record{ProductID: productID, Quantity: quantity}); err != nil {
		s.metrics.IncCartMutation("update", "failure")
		return Snapshot{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update cart quantity")
	}
	s.metrics.IncCartMutation("update", "success")
	return s.Get(ctx, uid)
}

// Clear deletes every record of the user in one batch.
func (s *service) Clear(ctx context.Context, uid string) error {
	if err := requireUser(uid); err != nil {
		return err
	}
	if err := s.repo.DeleteAll(ctx, uid); err != nil {
		s.metrics.IncCartMutation("clear", "failure")
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear cart")
	}
	s.metrics.IncCartMutation("clear", "success")
	return nil
}

// Get lists the user's records and derives the joined snapshot.
func (s *service) Get(ctx context.Context, uid string) (Snapshot, error) {
	if err := requireUser(uid); err != nil {
		return Snapshot{}, err
	}
	records, err := s.repo.List(ctx, uid)
	if err != nil {
		return Snapshot{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}
	return s.derive(records), nil
}

// Watch subscribes to the user's cart collection and invokes fn with the
// freshly derived snapshot on every change. It blocks until the context
// ends; local state between deliveries is never trusted.
func (s *service) Watch(ctx context.Context, uid string, fn func(Snapshot)) error {
	if err := requireUser(uid); err != nil {
		return err
	}
	if fn == nil {
		return pkgerrors.New(pkgerrors.CodeInternal, "watch callback required")
	}
	err := s.repo.Watch(ctx, uid, func(records []Record) {
		fn(s.derive(records))
	})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "watch cart")
	}
	return nil
}

// derive joins records against the catalog, dropping records whose product
// no longer resolves, and computes count and total.
func (s *service) derive(records []Record) Snapshot {
	snapshot := Snapshot{
		Items: make([]Item, 0, len(records)),
		Total: decimal.Zero,
	}
	for _, record := range records {
		product, ok := s.catalog.ProductByID(record.ProductID)
		if !ok || record.Quantity <= 0 {
			continue
		}
		snapshot.Items = append(snapshot.Items, Item{Product: product, Quantity: record.Quantity})
		snapshot.Count += record.Quantity
		snapshot.Total = snapshot.Total.Add(product.Price.Mul(decimal.NewFromInt(record.Quantity)))
	}
	return snapshot
}

func requireUser(uid string) error {
	if strings.TrimSpace(uid) == "" {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "sign in to use the cart")
	}
	return nil
}
