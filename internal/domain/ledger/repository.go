package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository manages sale ledger persistence
type Repository interface {
	Create(ctx context.Context, entry *Entry) error
	GetBySaleID(ctx context.Context, saleID uuid.UUID) (*Entry, error)
	GetByTimeRange(ctx context.Context, startTime, endTime time.Time, limit, offset int) ([]*Entry, error)
}

// ErrEntryNotFound indicates missing ledger entry
type ErrEntryNotFound struct {
	SaleID uuid.UUID
}

func (e ErrEntryNotFound) Error() string {
	return "ledger entry not found: " + e.SaleID.String()
}

// Is implements the errors.Is interface for ErrEntryNotFound
func (e ErrEntryNotFound) Is(target error) bool {
	t, ok := target.(ErrEntryNotFound)
	if !ok {
		return false
	}
	if t.SaleID == uuid.Nil {
		return true
	}
	return e.SaleID == t.SaleID
}

// ErrDuplicateEntry indicates a sale was recorded twice
type ErrDuplicateEntry struct {
	SaleID uuid.UUID
}

func (e ErrDuplicateEntry) Error() string {
	return "duplicate ledger entry: " + e.SaleID.String()
}

// Is implements the errors.Is interface for ErrDuplicateEntry
func (e ErrDuplicateEntry) Is(target error) bool {
	t, ok := target.(ErrDuplicateEntry)
	if !ok {
		return false
	}
	if t.SaleID == uuid.Nil {
		return true
	}
	return e.SaleID == t.SaleID
}
