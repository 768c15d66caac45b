package observers

import (
	"github.com/innoscripta-checkout-register/internal/domain/money"
	"github.com/innoscripta-checkout-register/internal/domain/sale"
	"github.com/prometheus/client_golang/prometheus"
)

// RevenueMetrics exports completed sales and revenue as Prometheus counters
type RevenueMetrics struct {
	sales   *prometheus.CounterVec
	revenue *prometheus.CounterVec
}

// NewRevenueMetrics registers the counters with reg
func NewRevenueMetrics(reg prometheus.Registerer) *RevenueMetrics {
	sales := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "checkout",
		Name:      "sales_completed_total",
		Help:      "Total number of paid sales.",
	}, []string{"currency"})
	revenue := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "checkout",
		Name:      "revenue_total",
		Help:      "Sum of paid sale totals including VAT.",
	}, []string{"currency"})

	reg.MustRegister(sales, revenue)
	return &RevenueMetrics{sales: sales, revenue: revenue}
}

var _ sale.RevenueObserver = (*RevenueMetrics)(nil)

// OnSaleCompleted records the sale. Float conversion only affects the exported series.
func (m *RevenueMetrics) OnSaleCompleted(total money.Money) {
	m.sales.WithLabelValues(total.Currency()).Inc()
	if total.IsNegative() {
		return
	}
	m.revenue.WithLabelValues(total.Currency()).Add(total.Amount().InexactFloat64())
}
