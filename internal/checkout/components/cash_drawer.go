package components

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/innoscripta-checkout-register/internal/checkout/service"
	"github.com/innoscripta-checkout-register/internal/domain/money"
	"github.com/innoscripta-checkout-register/internal/domain/register"
	"github.com/jackc/pgx/v5"
)

// TxRunner runs fn inside a database transaction
type TxRunner interface {
	ExecuteTx(ctx context.Context, fn func(tx pgx.Tx) error) error
}

// CashDrawerImpl credits sale totals to one cash register row
type CashDrawerImpl struct {
	db           TxRunner
	registerRepo register.Repository
	registerID   uuid.UUID
	logger       *slog.Logger
}

// NewCashDrawer creates a drawer bound to registerID
func NewCashDrawer(db TxRunner, registerRepo register.Repository, registerID uuid.UUID, logger *slog.Logger) *CashDrawerImpl {
	return &CashDrawerImpl{
		db:           db,
		registerRepo: registerRepo,
		registerID:   registerID,
		logger:       logger.With("register_id", registerID.String()),
	}
}

var _ service.CashDrawer = (*CashDrawerImpl)(nil)

// Credit locks the register, adds amount and persists the new balance in one transaction
func (d *CashDrawerImpl) Credit(ctx context.Context, amount money.Money) error {
	err := d.db.ExecuteTx(ctx, func(tx pgx.Tx) error {
		repoTx := d.registerRepo.WithTx(tx)

		reg, err := repoTx.LockForUpdate(ctx, d.registerID)
		if err != nil {
			if errors.Is(err, register.ErrRegisterNotFound{RegisterID: d.registerID}) {
				d.logger.Warn("Register not found for credit")
				return err
			}
			return fmt.Errorf("failed to lock register %s: %w", d.registerID.String(), err)
		}

		if err := reg.Credit(amount); err != nil {
			return err
		}

		if err := repoTx.Update(ctx, reg); err != nil {
			if errors.Is(err, register.ErrConcurrentModification{RegisterID: reg.ID}) {
				d.logger.Warn("Concurrent modification on register update")
			}
			return err
		}

		d.logger.Info("Register credited", "amount", amount.String(), "balance", reg.Balance.String(), "version", reg.Version)
		return nil
	})
	if err != nil {
		d.logger.Error("Failed to credit register", "amount", amount.String(), "error", err)
		return err
	}
	return nil
}

// Balance returns the current register state
func (d *CashDrawerImpl) Balance(ctx context.Context) (*register.Register, error) {
	reg, err := d.registerRepo.GetByID(ctx, d.registerID)
	if err != nil {
		return nil, fmt.Errorf("failed to read register %s: %w", d.registerID.String(), err)
	}
	return reg, nil
}
