package register

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/innoscripta-checkout-register/internal/domain/money"
)

// Common errors
var (
	ErrNegativeCredit = errors.New("credit amount cannot be negative")
)

// Register is the cash drawer of a checkout. Its balance only grows during a day.
type Register struct {
	ID        uuid.UUID   `json:"id"`
	Balance   money.Money `json:"-"`
	Version   int         `json:"version"` // For optimistic locking
	UpdatedAt time.Time   `json:"updated_at"`
}

// NewRegister creates an empty register in the given currency
func NewRegister(id uuid.UUID, currency string) *Register {
	return &Register{
		ID:        id,
		Balance:   money.Zero(currency),
		Version:   1,
		UpdatedAt: time.Now(),
	}
}

// Credit adds a paid sale total to the drawer
func (r *Register) Credit(amount money.Money) error {
	if amount.IsNegative() {
		return ErrNegativeCredit
	}
	balance, err := r.Balance.Add(amount)
	if err != nil {
		return fmt.Errorf("failed to credit register %s: %w", r.ID, err)
	}

	r.Balance = balance
	r.UpdatedAt = time.Now()
	r.Version++
	return nil
}
