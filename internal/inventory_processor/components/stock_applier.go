package components

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/innoscripta-checkout-register/internal/domain/catalog"
	"github.com/innoscripta-checkout-register/internal/domain/shared"
	"github.com/innoscripta-checkout-register/internal/inventory_processor/service"
	"github.com/jackc/pgx/v5"
)

// StockApplierImpl implements the StockApplier interface
type StockApplierImpl struct {
	stockRepo catalog.StockRepository
	logger    *slog.Logger
}

// NewStockApplier creates a new StockApplierImpl
func NewStockApplier(stockRepo catalog.StockRepository, logger *slog.Logger) service.StockApplier {
	return &StockApplierImpl{
		stockRepo: stockRepo,
		logger:    logger,
	}
}

// ApplyLine records the movement and, only if it is new, decrements the item's stock
func (a *StockApplierImpl) ApplyLine(ctx context.Context, tx pgx.Tx, saleID uuid.UUID, line shared.StockLine) (bool, error) {
	repoTx := a.stockRepo.WithTx(tx)

	isNew, err := repoTx.RecordMovement(ctx, saleID, line.ItemID, line.Quantity)
	if err != nil {
		return false, fmt.Errorf("failed to record stock movement for item %s: %w", line.ItemID, err)
	}
	if !isNew {
		a.logger.Debug("Stock movement already recorded", "sale_id", saleID.String(), "item_id", line.ItemID)
		return false, nil
	}

	if err := repoTx.DecrementStock(ctx, line.ItemID, line.Quantity); err != nil {
		if errors.Is(err, catalog.ErrItemNotFound{}) {
			return false, err
		}
		return false, fmt.Errorf("failed to decrement stock for item %s: %w", line.ItemID, err)
	}

	a.logger.Info("Stock decremented", "sale_id", saleID.String(), "item_id", line.ItemID, "quantity", line.Quantity)
	return true, nil
}
