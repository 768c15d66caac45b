package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/innoscripta-checkout-register/internal/domain/ledger"
	"github.com/innoscripta-checkout-register/internal/domain/money"
	"github.com/innoscripta-checkout-register/internal/domain/register"
	"github.com/innoscripta-checkout-register/internal/domain/sale"
)

// Common errors
var (
	ErrNoActiveSale    = errors.New("no sale is in progress")
	ErrItemRejected    = errors.New("item cannot be added to the current sale")
	ErrPaymentRejected = errors.New("payment was not accepted")
)

// SaleService serialises HTTP access to the single sale of a checkout counter
type SaleService interface {
	// StartSale discards any unpaid sale and starts a new one
	StartSale(ctx context.Context) uuid.UUID

	// AddItem returns ErrNoActiveSale, catalog.ErrItemNotFound, checkout ErrOperationFailed
	// or ErrItemRejected
	AddItem(ctx context.Context, itemID string, quantity int) (*sale.Snapshot, error)

	// Total returns the running total including VAT
	Total(ctx context.Context) (money.Money, error)

	// Pay settles the current sale. Returns ErrPaymentRejected if the tendered amount is short
	// or in another currency.
	Pay(ctx context.Context, tendered money.Money) (money.Money, *sale.Receipt, error)

	Currency() string
}

// LedgerService reads recorded sales
type LedgerService interface {
	// GetSale returns nil if the sale was never recorded
	GetSale(ctx context.Context, saleID uuid.UUID) (*ledger.Entry, error)

	// ListSales returns one page of sales made in [from, to), newest first
	ListSales(ctx context.Context, from, to time.Time, page, perPage int) ([]*ledger.Entry, error)
}

// RegisterService reads the cash drawer
type RegisterService interface {
	Balance(ctx context.Context) (*register.Register, error)
}
