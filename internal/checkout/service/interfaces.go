package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/innoscripta-checkout-register/internal/domain/catalog"
	"github.com/innoscripta-checkout-register/internal/domain/money"
	"github.com/innoscripta-checkout-register/internal/domain/sale"
)

// Checkout drives one sale at a time from scan to payment
type Checkout interface {
	// AddRevenueObserver registers an observer for every sale started afterwards
	AddRevenueObserver(observer sale.RevenueObserver)

	// StartSale discards any current sale and opens a new one
	StartSale() uuid.UUID

	// EnterItem looks the item up and adds quantity units to the open sale.
	// Returns (nil, nil) when no sale is open or quantity < 1.
	// Returns catalog.ErrItemNotFound or ErrOperationFailed when the lookup fails.
	EnterItem(ctx context.Context, itemID string, quantity int) (*sale.Snapshot, error)

	// EndSale reports the total including VAT; ok is false when no sale is open
	EndSale() (total money.Money, ok bool)

	// EnterPayment pays the open sale and returns the change; ok is false when the
	// payment was not accepted
	EnterPayment(ctx context.Context, tendered money.Money) (change money.Money, ok bool)

	// CurrentReceipt returns the receipt of the current sale once it is paid
	CurrentReceipt() *sale.Receipt

	// Currency is the currency every sale is priced in
	Currency() string
}

// CatalogLookup finds items by id
type CatalogLookup interface {
	Lookup(ctx context.Context, itemID string) (*catalog.Item, error)
}

// LedgerRecorder hands a paid sale to accounting
type LedgerRecorder interface {
	Record(ctx context.Context, receipt *sale.Receipt) error
}

// StockNotifier tells inventory which items a paid sale consumed
type StockNotifier interface {
	Consume(ctx context.Context, saleID uuid.UUID, lines []sale.LineItem) error
}

// CashDrawer tracks the cash held in the register
type CashDrawer interface {
	Credit(ctx context.Context, amount money.Money) error
}

// ReceiptPrinter renders receipts
type ReceiptPrinter interface {
	Print(ctx context.Context, receipt *sale.Receipt) error
}
