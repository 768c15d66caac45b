package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/innoscripta-checkout-register/internal/domain/ledger"
)

// LedgerServiceImpl implements the LedgerService interface
type LedgerServiceImpl struct {
	ledgerRepo ledger.Repository
}

// NewLedgerService creates a new ledger service
func NewLedgerService(ledgerRepo ledger.Repository) LedgerService {
	return &LedgerServiceImpl{ledgerRepo: ledgerRepo}
}

// GetSale retrieves the ledger entry of a paid sale, nil if not found
func (s *LedgerServiceImpl) GetSale(ctx context.Context, saleID uuid.UUID) (*ledger.Entry, error) {
	entry, err := s.ledgerRepo.GetBySaleID(ctx, saleID)
	if err != nil {
		if errors.Is(err, ledger.ErrEntryNotFound{}) {
			return nil, nil
		}
		return nil, err
	}
	return entry, nil
}

// ListSales retrieves a page of ledger entries
func (s *LedgerServiceImpl) ListSales(ctx context.Context, from, to time.Time, page, perPage int) ([]*ledger.Entry, error) {
	offset := (page - 1) * perPage
	return s.ledgerRepo.GetByTimeRange(ctx, from, to, perPage, offset)
}
