package components

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/innoscripta-checkout-register/internal/checkout/service"
	"github.com/innoscripta-checkout-register/internal/domain/ledger"
	"github.com/innoscripta-checkout-register/internal/domain/sale"
)

// LedgerRecorderImpl hands paid sales to accounting
type LedgerRecorderImpl struct {
	ledgerRepo ledger.Repository
	logger     *slog.Logger
}

// NewLedgerRecorder creates a new LedgerRecorderImpl
func NewLedgerRecorder(ledgerRepo ledger.Repository, logger *slog.Logger) service.LedgerRecorder {
	return &LedgerRecorderImpl{
		ledgerRepo: ledgerRepo,
		logger:     logger,
	}
}

// Record stores the receipt as a ledger entry. Recording the same sale twice is not an error.
func (r *LedgerRecorderImpl) Record(ctx context.Context, receipt *sale.Receipt) error {
	if receipt == nil {
		return sale.ErrSaleNotPaid
	}

	entry := EntryFromReceipt(receipt)
	entry.CorrelationID = service.CorrelationIDFrom(ctx)

	if err := r.ledgerRepo.Create(ctx, entry); err != nil {
		if errors.Is(err, ledger.ErrDuplicateEntry{SaleID: receipt.SaleID}) {
			r.logger.Warn("Sale already recorded in ledger", "sale_id", receipt.SaleID.String())
			return nil
		}
		return fmt.Errorf("failed to record sale %s: %w", receipt.SaleID.String(), err)
	}

	r.logger.Info("Sale recorded in ledger", "sale_id", receipt.SaleID.String(), "total", receipt.Total.String())
	return nil
}

// EntryFromReceipt converts a receipt into its accounting form
func EntryFromReceipt(receipt *sale.Receipt) *ledger.Entry {
	lines := make([]ledger.Line, 0, len(receipt.Lines))
	for _, l := range receipt.Lines {
		lines = append(lines, ledger.Line{
			ItemID:    l.ItemID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice.Amount().String(),
			VATRate:   l.VATRate.String(),
			LineTotal: l.LineTotal.Amount().String(),
		})
	}

	return &ledger.Entry{
		SaleID:   receipt.SaleID,
		Lines:    lines,
		Total:    receipt.Total.Amount().String(),
		VAT:      receipt.VAT.Amount().String(),
		Paid:     receipt.Paid.Amount().String(),
		Change:   receipt.Change.Amount().String(),
		Currency: receipt.Total.Currency(),
		SoldAt:   receipt.SaleTime,
	}
}
