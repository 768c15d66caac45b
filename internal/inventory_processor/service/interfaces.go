package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/innoscripta-checkout-register/internal/domain/shared"
	"github.com/jackc/pgx/v5"
)

// ErrUnprocessable marks stock updates that can never be applied and should not be retried
var ErrUnprocessable = errors.New("stock update cannot be applied")

// ProcessingService applies stock updates published by checkouts
type ProcessingService interface {
	ProcessStockUpdate(ctx context.Context, update *shared.StockUpdate) error
}

// TxExecutor runs fn inside a database transaction
type TxExecutor interface {
	ExecuteTx(ctx context.Context, fn func(tx pgx.Tx) error) error
}

// StockApplier applies one line of a stock update inside a transaction
type StockApplier interface {
	// ApplyLine returns false when the line was already applied for this sale
	ApplyLine(ctx context.Context, tx pgx.Tx, saleID uuid.UUID, line shared.StockLine) (bool, error)
}
