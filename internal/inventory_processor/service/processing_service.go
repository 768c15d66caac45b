package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/innoscripta-checkout-register/internal/domain/catalog"
	"github.com/innoscripta-checkout-register/internal/domain/shared"
	"github.com/jackc/pgx/v5"
)

type ProcessingServiceImpl struct {
	db      TxExecutor
	applier StockApplier
	logger  *slog.Logger
}

func NewProcessingService(db TxExecutor, applier StockApplier, logger *slog.Logger) ProcessingService {
	return &ProcessingServiceImpl{
		db:      db,
		applier: applier,
		logger:  logger,
	}
}

// ProcessStockUpdate applies every line of update in one transaction. Lines already applied
// for the sale are skipped, so redelivered messages are harmless.
func (s *ProcessingServiceImpl) ProcessStockUpdate(ctx context.Context, update *shared.StockUpdate) error {
	logger := s.logger.With("sale_id", update.SaleID.String())
	if update.CorrelationID != "" {
		logger = logger.With("correlation_id", update.CorrelationID)
	}

	if err := update.Validate(); err != nil {
		logger.Warn("Invalid stock update", "error", err)
		return fmt.Errorf("%w: %w", ErrUnprocessable, err)
	}

	applied := 0
	err := s.db.ExecuteTx(ctx, func(tx pgx.Tx) error {
		applied = 0
		for _, line := range update.Lines {
			isNew, err := s.applier.ApplyLine(ctx, tx, update.SaleID, line)
			if err != nil {
				return err
			}
			if isNew {
				applied++
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, catalog.ErrItemNotFound{}) {
			logger.Warn("Stock update references an unknown item", "error", err)
			return fmt.Errorf("%w: %w", ErrUnprocessable, err)
		}
		logger.Error("Failed to apply stock update", "error", err)
		return fmt.Errorf("failed to apply stock update for sale %s: %w", update.SaleID.String(), err)
	}

	if applied == 0 {
		logger.Info("Stock update already applied, skipping")
		return nil
	}
	logger.Info("Stock update applied", "lines", applied)
	return nil
}
