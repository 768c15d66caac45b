package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/innoscripta-checkout-register/internal/domain/money"
	"github.com/innoscripta-checkout-register/internal/domain/register"
	"github.com/innoscripta-checkout-register/internal/platform/persistence"
	"github.com/jackc/pgx/v5"
)

// RegisterRepository implements register.Repository for PostgreSQL
type RegisterRepository struct {
	querier persistence.Querier // Can be *pgxpool.Pool or pgx.Tx
	logger  *slog.Logger
}

// NewRegisterRepository creates a new PostgreSQL cash register repository
func NewRegisterRepository(logger *slog.Logger, db *persistence.PostgresDB) register.Repository {
	return &RegisterRepository{
		querier: db.Pool(),
		logger:  logger,
	}
}

// WithTx returns a repository that runs every statement in tx
func (r *RegisterRepository) WithTx(tx pgx.Tx) register.Repository {
	return &RegisterRepository{
		querier: tx,
		logger:  r.logger,
	}
}

// GetByID retrieves a register by its ID
func (r *RegisterRepository) GetByID(ctx context.Context, id uuid.UUID) (*register.Register, error) {
	query := `
		SELECT id, balance::text, currency, version, updated_at
		FROM cash_registers
		WHERE id = $1
	`
	reg, err := r.scanRegister(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, register.ErrRegisterNotFound{RegisterID: id}
		}
		r.logger.Error("Failed to get register", "id", id.String(), "error", err)
		return nil, fmt.Errorf("failed to get register: %w", err)
	}
	return reg, nil
}

// LockForUpdate obtains a row lock on the register for the rest of the transaction
func (r *RegisterRepository) LockForUpdate(ctx context.Context, id uuid.UUID) (*register.Register, error) {
	query := `
		SELECT id, balance::text, currency, version, updated_at
		FROM cash_registers
		WHERE id = $1
		FOR UPDATE
	`
	reg, err := r.scanRegister(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, register.ErrRegisterNotFound{RegisterID: id}
		}
		r.logger.Error("Failed to lock register for update", "id", id.String(), "error", err)
		return nil, fmt.Errorf("failed to lock register for update: %w", err)
	}
	return reg, nil
}

// Update writes the balance if the stored version is the one before reg.Version
func (r *RegisterRepository) Update(ctx context.Context, reg *register.Register) error {
	query := `
		UPDATE cash_registers
		SET balance = $1, version = $2, updated_at = $3
		WHERE id = $4 AND version = $5
	`

	result, err := r.querier.Exec(ctx, query,
		reg.Balance.Amount().String(),
		reg.Version,
		reg.UpdatedAt,
		reg.ID,
		reg.Version-1,
	)
	if err != nil {
		r.logger.Error("Failed to update register", "id", reg.ID.String(), "error", err)
		return fmt.Errorf("failed to update register: %w", err)
	}

	if result.RowsAffected() == 0 {
		return register.ErrConcurrentModification{RegisterID: reg.ID}
	}

	return nil
}

func (r *RegisterRepository) scanRegister(row pgx.Row) (*register.Register, error) {
	var (
		reg       register.Register
		balance   string
		currency  string
		updatedAt time.Time
	)
	if err := row.Scan(&reg.ID, &balance, &currency, &reg.Version, &updatedAt); err != nil {
		return nil, err
	}

	amount, err := money.Parse(balance, currency)
	if err != nil {
		return nil, fmt.Errorf("invalid register balance: %w", err)
	}
	reg.Balance = amount
	reg.UpdatedAt = updatedAt
	return &reg, nil
}
