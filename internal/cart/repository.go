package cart

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ecomvoyage/ecomvoyage-backend/pkg/logger"
)

const (
	usersCollection = "users"
	cartCollection  = "cart_items"
)

// Repository persists cart records in the per-user document collection
// users/{uid}/cart_items/{productId}.
type Repository interface {
	Find(ctx context.Context, uid, productID string) (*Record, error)
	Upsert(ctx context.Context, uid string, record Record) error
	Delete(ctx context.Context, uid, productID string) error
	List(ctx context.Context, uid string) ([]Record, error)
	DeleteAll(ctx context.Context, uid string) error
	Watch(ctx context.Context, uid string, fn func([]Record)) error
}

type firestoreRepository struct {
	client *firestore.Client
	logg   *logger.Logger
}

// NewRepository builds a Firestore-backed cart repository.
func NewRepository(client *firestore.Client, logg *logger.Logger) (Repository, error) {
	if client == nil {
		return nil, fmt.Errorf("firestore client required")
	}
	return &firestoreRepository{client: client, logg: logg}, nil
}

func (r *firestoreRepository) collection(uid string) *firestore.CollectionRef {
	return r.client.Collection(usersCollection).Doc(uid).Collection(cartCollection)
}

// Find returns the record for the product, or nil when absent.
func (r *firestoreRepository) Find(ctx context.Context, uid, productID string) (*Record, error) {
	snap, err := r.collection(uid).Doc(productID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("read cart record: %w", err)
	}
	var record Record
	if err := snap.DataTo(&record); err != nil {
		return nil, fmt.Errorf("decode cart record: %w", err)
	}
	record.ProductID = snap.Ref.ID
	return &record, nil
}

// Upsert writes the record, replacing any existing document for the product.
func (r *firestoreRepository) Upsert(ctx context.Context, uid string, record Record) error {
	if _, err := r.collection(uid).Doc(record.ProductID).Set(ctx, record); err != nil {
		return fmt.Errorf("write cart record: %w", err)
	}
	return nil
}

// Delete removes the record. Deleting an absent record is a no-op.
func (r *firestoreRepository) Delete(ctx context.Context, uid, productID string) error {
	if _, err := r.collection(uid).Doc(productID).Delete(ctx); err != nil {
		return fmt.Errorf("delete cart record: %w", err)
	}
	return nil
}

// List returns every record in the user's cart collection.
func (r *firestoreRepository) List(ctx context.Context, uid string) ([]Record, error) {
	docs, err := r.collection(uid).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("list cart records: %w", err)
	}
	return decodeRecords(docs), nil
}

// DeleteAll removes every record of the user in a single transaction so a
// checkout wipe is all-or-nothing.
func (r *firestoreRepository) DeleteAll(ctx context.Context, uid string) error {
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		docs, err := tx.Documents(r.collection(uid)).GetAll()
		if err != nil {
			return err
		}
		for _, doc := range docs {
			if err := tx.Delete(doc.Ref); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("clear cart records: %w", err)
	}
	return nil
}

// Watch streams the full record set on every change to the collection
// until the context ends. The listener re-delivers whole snapshots; the
// caller replaces its state wholesale on each delivery.
func (r *firestoreRepository) Watch(ctx context.Context, uid string, fn func([]Record)) error {
	iter := r.collection(uid).Snapshots(ctx)
	defer iter.Stop()

	for {
		snap, err := iter.Next()
		if err != nil {
			if ctx.Err() != nil || status.Code(err) == codes.Canceled {
				return nil
			}
			return fmt.Errorf("cart snapshot stream: %w", err)
		}
		docs, err := snap.Documents.GetAll()
		if err != nil {
			if r.logg != nil {
				r.logg.Error(ctx, "read cart snapshot documents", err)
			}
			continue
		}
		fn(decodeRecords(docs))
	}
}

func decodeRecords(docs []*firestore.DocumentSnapshot) []Record {
	records := make([]Record, 0, len(docs))
	for _, doc := range docs {
		var record Record
		if err := doc.DataTo(&record); err != nil {
			continue
		}
		record.ProductID = doc.Ref.ID
		if strings.TrimSpace(record.ProductID) == "" {
			continue
		}
		records = append(records, record)
	}
	return records
}
