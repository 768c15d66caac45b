package components

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"text/tabwriter"

	"github.com/innoscripta-checkout-register/internal/checkout/service"
	"github.com/innoscripta-checkout-register/internal/domain/sale"
)

const (
	receiptHeader     = "---------------- Begin receipt ----------------"
	receiptFooter     = "----------------- End receipt -----------------"
	receiptTimeLayout = "2006-01-02 15:04"
)

// ReceiptPrinterImpl renders receipts as plain text
type ReceiptPrinterImpl struct {
	mu     sync.Mutex
	out    io.Writer
	logger *slog.Logger
}

// NewReceiptPrinter creates a printer writing to out
func NewReceiptPrinter(out io.Writer, logger *slog.Logger) service.ReceiptPrinter {
	return &ReceiptPrinterImpl{
		out:    out,
		logger: logger,
	}
}

func (p *ReceiptPrinterImpl) Print(_ context.Context, receipt *sale.Receipt) error {
	if receipt == nil {
		return sale.ErrSaleNotPaid
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	w := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, receiptHeader)
	fmt.Fprintf(w, "Time of Sale: %s\n", receipt.SaleTime.Format(receiptTimeLayout))
	fmt.Fprintln(w)
	for _, l := range receipt.Lines {
		fmt.Fprintf(w, "%s\t%d x %s\t%s\t\n", l.Name, l.Quantity, l.UnitPrice.StringFixed(), l.LineTotal.StringFixed())
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total:\t\t%s\t\n", receipt.Total.String())
	fmt.Fprintf(w, "VAT:\t\t%s\t\n", receipt.VAT.String())
	fmt.Fprintf(w, "Cash:\t\t%s\t\n", receipt.Paid.String())
	fmt.Fprintf(w, "Change:\t\t%s\t\n", receipt.Change.String())
	fmt.Fprintln(w, receiptFooter)

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to print receipt for sale %s: %w", receipt.SaleID.String(), err)
	}
	p.logger.Debug("Receipt printed", "sale_id", receipt.SaleID.String())
	return nil
}
