// Package observers holds the RevenueObserver implementations notified after every paid sale.
package observers

import (
	"fmt"
	"io"
	"sync"

	"github.com/innoscripta-checkout-register/internal/domain/money"
	"github.com/innoscripta-checkout-register/internal/domain/sale"
)

// RevenueView prints the income accumulated since the process started
type RevenueView struct {
	mu    sync.Mutex
	out   io.Writer
	total money.Money
}

// NewRevenueView creates a view starting at zero in currency
func NewRevenueView(out io.Writer, currency string) *RevenueView {
	return &RevenueView{
		out:   out,
		total: money.Zero(currency),
	}
}

var _ sale.RevenueObserver = (*RevenueView)(nil)

func (v *RevenueView) OnSaleCompleted(total money.Money) {
	v.mu.Lock()
	defer v.mu.Unlock()

	sum, err := v.total.Add(total)
	if err != nil {
		fmt.Fprintf(v.out, "Revenue not updated: %v\n", err)
		return
	}
	v.total = sum

	fmt.Fprintln(v.out)
	fmt.Fprintln(v.out, "### Total Revenue ###")
	fmt.Fprintf(v.out, "Total income since program start: %s\n", v.total.String())
	fmt.Fprintln(v.out, "#####################")
	fmt.Fprintln(v.out)
}

// Total returns the accumulated income
func (v *RevenueView) Total() money.Money {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.total
}
