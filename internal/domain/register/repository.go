package register

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Repository defines cash register persistence operations
type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Register, error)

	// Update persists balance changes, checking the previous version
	Update(ctx context.Context, reg *Register) error

	// LockForUpdate acquires a pessimistic lock for the duration of the transaction
	LockForUpdate(ctx context.Context, id uuid.UUID) (*Register, error)
	WithTx(tx pgx.Tx) Repository
}

// ErrConcurrentModification indicates optimistic lock failure
type ErrConcurrentModification struct {
	RegisterID uuid.UUID
}

func (e ErrConcurrentModification) Error() string {
	return "concurrent modification detected for register: " + e.RegisterID.String()
}

// ErrRegisterNotFound indicates missing register
type ErrRegisterNotFound struct {
	RegisterID uuid.UUID
}

func (e ErrRegisterNotFound) Error() string {
	return "register not found: " + e.RegisterID.String()
}
