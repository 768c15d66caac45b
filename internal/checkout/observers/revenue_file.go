package observers

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/innoscripta-checkout-register/internal/domain/money"
	"github.com/innoscripta-checkout-register/internal/domain/sale"
)

const revenueTimeLayout = "2006-01-02 15:04:05"

// RevenueFileOutput appends the accumulated revenue to a file after each paid sale
type RevenueFileOutput struct {
	mu     sync.Mutex
	path   string
	total  money.Money
	logger *slog.Logger
	now    func() time.Time
}

// NewRevenueFileOutput creates a sink appending to path. The file is created on first write.
func NewRevenueFileOutput(path string, currency string, logger *slog.Logger) *RevenueFileOutput {
	return &RevenueFileOutput{
		path:   path,
		total:  money.Zero(currency),
		logger: logger,
		now:    time.Now,
	}
}

var _ sale.RevenueObserver = (*RevenueFileOutput)(nil)

// OnSaleCompleted never fails the sale; write errors are logged
func (f *RevenueFileOutput) OnSaleCompleted(total money.Money) {
	if err := f.append(total); err != nil {
		f.logger.Error("Failed to write revenue file", "path", f.path, "error", err)
	}
}

func (f *RevenueFileOutput) append(saleTotal money.Money) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	total, err := f.total.Add(saleTotal)
	if err != nil {
		return err
	}
	f.total = total

	file, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", f.path, err)
	}
	defer file.Close()

	if _, err := fmt.Fprintf(file, "%s - Total revenue: %s\n", f.now().Format(revenueTimeLayout), total.String()); err != nil {
		return fmt.Errorf("failed to append to %s: %w", f.path, err)
	}
	return nil
}
