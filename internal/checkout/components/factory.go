package components

import (
	"io"
	"log/slog"

	"github.com/innoscripta-checkout-register/internal/checkout/service"
	"github.com/innoscripta-checkout-register/internal/config"
	"github.com/innoscripta-checkout-register/internal/domain/catalog"
	"github.com/innoscripta-checkout-register/internal/domain/ledger"
	"github.com/innoscripta-checkout-register/internal/domain/sale"
	"github.com/innoscripta-checkout-register/internal/platform/messaging/producers"
)

// Infrastructure holds the adapters a checkout service is wired from
type Infrastructure struct {
	Catalog    catalog.Repository
	Ledger     ledger.Repository
	Publisher  producers.MessagePublisher
	Drawer     service.CashDrawer
	ReceiptOut io.Writer
}

// CreateCheckoutService creates a new Checkout with all its dependencies and observers.
func CreateCheckoutService(
	infra Infrastructure,
	logger *slog.Logger,
	cfg *config.Config,
	observers ...sale.RevenueObserver,
) service.Checkout {
	deps := service.Dependencies{
		Catalog: NewFailingCatalog(infra.Catalog, cfg.Checkout.FailureItem, logger.With("component", "failing_catalog")),
		Ledger:  NewLedgerRecorder(infra.Ledger, logger.With("component", "ledger_recorder")),
		Stock:   NewStockPublisher(infra.Publisher, logger.With("component", "stock_publisher")),
		Drawer:  infra.Drawer,
		Printer: NewReceiptPrinter(infra.ReceiptOut, logger.With("component", "receipt_printer")),
	}

	checkout := service.NewCheckoutService(logger.With("component", "checkout"), cfg.Checkout.Currency, deps)
	for _, o := range observers {
		checkout.AddRevenueObserver(o)
	}

	logger.Info("Created checkout service", "currency", cfg.Checkout.Currency, "observers", len(observers))
	return checkout
}
