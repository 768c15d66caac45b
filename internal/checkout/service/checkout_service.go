package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/innoscripta-checkout-register/internal/domain/catalog"
	"github.com/innoscripta-checkout-register/internal/domain/money"
	"github.com/innoscripta-checkout-register/internal/domain/sale"
)

// Operation names carried by ErrOperationFailed
const (
	OperationEnterItem = "enter_item"
)

// Dependencies are the external systems a checkout talks to
type Dependencies struct {
	Catalog CatalogLookup
	Ledger  LedgerRecorder
	Stock   StockNotifier
	Drawer  CashDrawer
	Printer ReceiptPrinter
}

// CheckoutServiceImpl implements the Checkout interface. It is not safe for concurrent
// use; callers sharing one instance must serialise access.
type CheckoutServiceImpl struct {
	logger    *slog.Logger
	deps      Dependencies
	currency  string
	observers *sale.RevenueBroadcaster
	current   *sale.Sale
}

// NewCheckoutService creates a checkout pricing every sale in currency
func NewCheckoutService(logger *slog.Logger, currency string, deps Dependencies) Checkout {
	return &CheckoutServiceImpl{
		logger:    logger,
		deps:      deps,
		currency:  currency,
		observers: sale.NewRevenueBroadcaster(),
	}
}

func (s *CheckoutServiceImpl) Currency() string {
	return s.currency
}

func (s *CheckoutServiceImpl) AddRevenueObserver(observer sale.RevenueObserver) {
	s.observers.Register(observer)
}

func (s *CheckoutServiceImpl) StartSale() uuid.UUID {
	if s.current != nil && s.current.IsOpen() && len(s.current.Lines()) > 0 {
		s.logger.Warn("Discarding unpaid sale", "sale_id", s.current.ID.String())
	}
	s.current = sale.NewSale(s.currency, s.observers.Observers())
	s.logger.Info("Sale started", "sale_id", s.current.ID.String(), "currency", s.currency)
	return s.current.ID
}

func (s *CheckoutServiceImpl) EnterItem(ctx context.Context, itemID string, quantity int) (*sale.Snapshot, error) {
	if !s.hasOpenSale() {
		s.logger.Debug("Item entered without an open sale", "item_id", itemID)
		return nil, nil
	}
	if quantity < 1 {
		s.logger.Debug("Rejected item quantity", "item_id", itemID, "quantity", quantity)
		return nil, nil
	}

	log := s.logger.With("sale_id", s.current.ID.String(), "item_id", itemID)

	item, err := s.deps.Catalog.Lookup(ctx, itemID)
	if err != nil {
		if errors.Is(err, catalog.ErrItemNotFound{}) {
			log.Info("Item not found in catalog")
			return nil, err
		}
		log.Error("Catalog lookup failed", "error", err)
		return nil, ErrOperationFailed{Operation: OperationEnterItem, Err: err}
	}

	snapshot, err := s.current.AddItem(item, quantity)
	if err != nil {
		// Item in another currency or similar rejection; the sale is unchanged
		log.Warn("Item rejected by sale", "error", err)
		return nil, nil
	}

	log.Info("Item entered",
		"quantity", snapshot.Quantity,
		"running_total", snapshot.RunningTotal.String(),
	)
	return snapshot, nil
}

func (s *CheckoutServiceImpl) EndSale() (money.Money, bool) {
	if !s.hasOpenSale() {
		return money.Money{}, false
	}
	return s.current.CurrentTotal(), true
}

func (s *CheckoutServiceImpl) EnterPayment(ctx context.Context, tendered money.Money) (money.Money, bool) {
	if !s.hasOpenSale() {
		return money.Money{}, false
	}

	current := s.current
	log := s.logger.With("sale_id", current.ID.String())

	change, err := current.Pay(tendered)
	if err != nil {
		log.Info("Payment rejected", "tendered", tendered.String(), "total", current.CurrentTotal().String(), "reason", err)
		return money.Money{}, false
	}

	receipt := current.Receipt()
	total := current.CurrentTotal()
	log.Info("Payment accepted", "total", total.String(), "change", change.String())

	// The payment stands whatever happens below
	if err := s.deps.Ledger.Record(ctx, receipt); err != nil {
		log.Error("Failed to record sale in ledger", "error", err)
	}
	if err := s.deps.Stock.Consume(ctx, current.ID, current.Lines()); err != nil {
		log.Error("Failed to notify stock", "error", err)
	}
	if err := s.deps.Drawer.Credit(ctx, total); err != nil {
		log.Error("Failed to credit cash drawer", "error", err)
	}
	if err := s.deps.Printer.Print(ctx, receipt); err != nil {
		log.Error("Failed to print receipt", "error", err)
	}

	return change, true
}

func (s *CheckoutServiceImpl) CurrentReceipt() *sale.Receipt {
	if s.current == nil {
		return nil
	}
	return s.current.Receipt()
}

func (s *CheckoutServiceImpl) hasOpenSale() bool {
	return s.current != nil && s.current.IsOpen()
}
