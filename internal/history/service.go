package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	pkgerrors "github.com/ecomvoyage/ecomvoyage-backend/pkg/errors"
	"github.com/ecomvoyage/ecomvoyage-backend/pkg/logger"
	"github.com/ecomvoyage/ecomvoyage-backend/pkg/redis"
)

// MaxEntries bounds the browsing history per device.
const MaxEntries = 20

type kvStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	HistoryKey(deviceID string) string
}

// Service tracks the ordered list of recently viewed product ids per
// device. The list is most-recent-first, deduplicated, and capped at
// MaxEntries; re-viewing a product moves its id to the front.
type Service interface {
	Add(ctx context.Context, deviceID, productID string) ([]string, error)
	List(ctx context.Context, deviceID string) []string
}

type service struct {
	store kvStore
	logg  *logger.Logger
	ttl   time.Duration
}

// NewService builds a history service backed by the provided key-value store.
func NewService(store kvStore, logg *logger.Logger, ttl time.Duration) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("history store required")
	}
	return &service{store: store, logg: logg, ttl: ttl}, nil
}

// Add records a product view and returns the updated history.
func (s *service) Add(ctx context.Context, deviceID, productID string) ([]string, error) {
	deviceID = strings.TrimSpace(deviceID)
	productID = strings.TrimSpace(productID)
	if deviceID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "device id is required")
	}
	if productID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}

	current := s.load(ctx, deviceID)
	updated := pushFront(current, productID)

	encoded, err := json.Marshal(updated)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode history")
	}
	if err := s.store.Set(ctx, s.store.HistoryKey(deviceID), string(encoded), s.ttl); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist history")
	}
	return updated, nil
}

// List returns the device's history, most recent first. Read failures
// degrade to an empty history: the feature is cosmetic and must never
// block browsing.
func (s *service) List(ctx context.Context, deviceID string) []string {
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" {
		return []string{}
	}
	return s.load(ctx, deviceID)
}

func (s *service) load(ctx context.Context, deviceID string) []string {
	raw, err := s.store.Get(ctx, s.store.HistoryKey(deviceID))
	if err != nil {
		if !errors.Is(err, redis.Nil) && s.logg != nil {
			s.logg.Warn(s.logg.WithDeviceID(ctx, deviceID), "history read failed, treating as empty")
		}
		return []string{}
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		if s.logg != nil {
			s.logg.Warn(s.logg.WithDeviceID(ctx, deviceID), "history payload corrupt, treating as empty")
		}
		return []string{}
	}
	return ids
}

// pushFront moves or inserts the id at the head, removes any prior
// occurrence, and truncates to MaxEntries.
func pushFront(ids []string, id string) []string {
	out := make([]string, 0, len(ids)+1)
	out = append(out, id)
	for _, existing := range ids {
		if existing == id {
			continue
		}
		out = append(out, existing)
	}
	if len(out) > MaxEntries {
		out = out[:MaxEntries]
	}
	return out
}
