package components

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/innoscripta-checkout-register/internal/checkout/service"
	"github.com/innoscripta-checkout-register/internal/domain/catalog"
)

// FailingCatalog reports the catalog as unavailable for one configured item id and
// passes every other lookup through. Lets staff rehearse the operation-failed path
// without taking the database down.
type FailingCatalog struct {
	next   service.CatalogLookup
	itemID string
	logger *slog.Logger
}

// NewFailingCatalog wraps next. An empty itemID returns next unchanged.
func NewFailingCatalog(next service.CatalogLookup, itemID string, logger *slog.Logger) service.CatalogLookup {
	if itemID == "" {
		return next
	}
	return &FailingCatalog{next: next, itemID: itemID, logger: logger}
}

func (c *FailingCatalog) Lookup(ctx context.Context, itemID string) (*catalog.Item, error) {
	if itemID == c.itemID {
		c.logger.Warn("Simulating catalog outage", "item_id", itemID)
		return nil, fmt.Errorf("%w: simulated database failure for item %s", catalog.ErrCatalogUnavailable, itemID)
	}
	return c.next.Lookup(ctx, itemID)
}
