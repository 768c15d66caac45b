// Package postgres provides PostgreSQL implementations of the domain repositories:
// the item catalog, its stock levels and the cash registers.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/innoscripta-checkout-register/internal/domain/catalog"
	"github.com/innoscripta-checkout-register/internal/domain/money"
	"github.com/innoscripta-checkout-register/internal/platform/persistence"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// CatalogRepository implements catalog.Repository for PostgreSQL
type CatalogRepository struct {
	querier persistence.Querier
	logger  *slog.Logger
}

// NewCatalogRepository creates a new PostgreSQL catalog repository
func NewCatalogRepository(logger *slog.Logger, db *persistence.PostgresDB) catalog.Repository {
	return &CatalogRepository{
		querier: db.Pool(),
		logger:  logger,
	}
}

// Lookup retrieves an item by id. A missing row is ErrItemNotFound; every other failure
// wraps ErrCatalogUnavailable.
func (r *CatalogRepository) Lookup(ctx context.Context, itemID string) (*catalog.Item, error) {
	query := `
		SELECT id, name, description, price::text, currency, vat_rate::text
		FROM catalog_items
		WHERE id = $1
	`

	var (
		id, name, description string
		price, currency, vat  string
	)
	err := r.querier.QueryRow(ctx, query, itemID).Scan(&id, &name, &description, &price, &currency, &vat)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrItemNotFound{ItemID: itemID}
		}
		r.logger.Error("Failed to look up catalog item", "item_id", itemID, "error", err)
		return nil, fmt.Errorf("%w: failed to look up item %s: %w", catalog.ErrCatalogUnavailable, itemID, err)
	}

	unitPrice, err := money.Parse(price, currency)
	if err != nil {
		return nil, fmt.Errorf("%w: item %s has invalid price: %w", catalog.ErrCatalogUnavailable, itemID, err)
	}
	vatRate, err := decimal.NewFromString(vat)
	if err != nil {
		return nil, fmt.Errorf("%w: item %s has invalid vat rate: %w", catalog.ErrCatalogUnavailable, itemID, err)
	}

	item, err := catalog.NewItem(id, name, description, unitPrice, vatRate)
	if err != nil {
		return nil, fmt.Errorf("%w: item %s is invalid: %w", catalog.ErrCatalogUnavailable, itemID, err)
	}
	return item, nil
}
