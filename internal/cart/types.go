package cart

import (
	"github.com/shopspring/decimal"

	"github.com/ecomvoyage/ecomvoyage-backend/internal/catalog"
)

// Record is the persisted shape of one cart entry: a single document in the
// user's cart collection, keyed by product id.
type Record struct {
	ProductID string `firestore:"product_id" json:"product_id"`
	Quantity  int64  `firestore:"quantity" json:"quantity"`
}

// Item is a record joined against the catalog.
type Item struct {
	Product  catalog.Product `json:"product"`
	Quantity int64           `json:"quantity"`
}

// Snapshot is the full derived state of a user's cart. The remote
// collection is the source of truth; snapshots are recomputed wholesale
// from it and never patched incrementally.
type Snapshot struct {
	Items []Item          `json:"items"`
	Count int64           `json:"count"`
	Total decimal.Decimal `json:"total"`
}
