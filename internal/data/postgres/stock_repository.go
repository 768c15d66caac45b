package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/innoscripta-checkout-register/internal/domain/catalog"
	"github.com/innoscripta-checkout-register/internal/platform/persistence"
	"github.com/jackc/pgx/v5"
)

// StockRepository implements catalog.StockRepository for PostgreSQL
type StockRepository struct {
	querier persistence.Querier
	logger  *slog.Logger
}

// NewStockRepository creates a new PostgreSQL stock repository
func NewStockRepository(logger *slog.Logger, db *persistence.PostgresDB) catalog.StockRepository {
	return &StockRepository{
		querier: db.Pool(),
		logger:  logger,
	}
}

// WithTx returns a repository bound to tx
func (r *StockRepository) WithTx(tx pgx.Tx) catalog.StockRepository {
	return &StockRepository{
		querier: tx,
		logger:  r.logger,
	}
}

// RecordMovement inserts the (sale, item) movement once; repeats are ignored
func (r *StockRepository) RecordMovement(ctx context.Context, saleID uuid.UUID, itemID string, quantity int) (bool, error) {
	query := `
		INSERT INTO stock_movements (sale_id, item_id, quantity, applied_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (sale_id, item_id) DO NOTHING
	`

	result, err := r.querier.Exec(ctx, query, saleID, itemID, quantity)
	if err != nil {
		r.logger.Error("Failed to record stock movement", "sale_id", saleID.String(), "item_id", itemID, "error", err)
		return false, fmt.Errorf("failed to record stock movement: %w", err)
	}

	return result.RowsAffected() == 1, nil
}

// DecrementStock lowers the stock level of an item. Stock may go negative; the shelf
// count is corrected by inventory staff, not by the checkout.
func (r *StockRepository) DecrementStock(ctx context.Context, itemID string, quantity int) error {
	query := `
		UPDATE catalog_items
		SET stock_quantity = stock_quantity - $1
		WHERE id = $2
	`

	result, err := r.querier.Exec(ctx, query, quantity, itemID)
	if err != nil {
		r.logger.Error("Failed to decrement stock", "item_id", itemID, "error", err)
		return fmt.Errorf("failed to decrement stock: %w", err)
	}

	if result.RowsAffected() == 0 {
		return catalog.ErrItemNotFound{ItemID: itemID}
	}

	return nil
}
