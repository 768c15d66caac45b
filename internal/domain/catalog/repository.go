package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrCatalogUnavailable indicates the catalog could not be queried, as opposed to the item being absent
var ErrCatalogUnavailable = errors.New("catalog unavailable")

// Repository provides read access to catalog items
type Repository interface {
	Lookup(ctx context.Context, itemID string) (*Item, error)
}

// ErrItemNotFound indicates that no catalog entry exists for the id
type ErrItemNotFound struct {
	ItemID string
}

func (e ErrItemNotFound) Error() string {
	return `no item with id "` + e.ItemID + `" exists in the catalog`
}

// Is implements the errors.Is interface for ErrItemNotFound
func (e ErrItemNotFound) Is(target error) bool {
	t, ok := target.(ErrItemNotFound)
	if !ok {
		return false
	}
	// An empty target id matches any missing item
	if t.ItemID == "" {
		return true
	}
	return e.ItemID == t.ItemID
}

// StockRepository applies consumed quantities to the catalog's stock levels
type StockRepository interface {
	// RecordMovement stores that a sale consumed an item. It reports false when the
	// movement was already recorded, which makes redelivered messages harmless.
	RecordMovement(ctx context.Context, saleID uuid.UUID, itemID string, quantity int) (bool, error)
	DecrementStock(ctx context.Context, itemID string, quantity int) error
	WithTx(tx pgx.Tx) StockRepository
}
