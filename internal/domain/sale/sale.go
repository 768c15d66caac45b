package sale

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/innoscripta-checkout-register/internal/domain/catalog"
	"github.com/innoscripta-checkout-register/internal/domain/money"
)

// Common errors
var (
	ErrNilItem             = errors.New("item cannot be nil")
	ErrInvalidQuantity     = errors.New("quantity must be at least 1")
	ErrSaleNotOpen         = errors.New("sale is not open")
	ErrNoPayment           = errors.New("no payment tendered")
	ErrInsufficientPayment = errors.New("tendered amount is less than the sale total")
	ErrSaleNotPaid         = errors.New("sale has not been paid")
)

// Status of a sale
type Status string

const (
	StatusOpen Status = "OPEN"
	StatusPaid Status = "PAID"
)

// Snapshot describes the sale right after an item was entered
type Snapshot struct {
	LastItem     *catalog.Item
	Quantity     int // quantity of LastItem's line after the addition
	RunningTotal money.Money
	RunningVAT   money.Money
}

// Sale is a single checkout transaction. It starts OPEN, accepts items, and becomes PAID
// after one successful payment. A paid sale never changes again.
type Sale struct {
	ID        uuid.UUID
	StartedAt time.Time

	currency     string
	lines        []*LineItem
	totalInclVAT money.Money
	totalVAT     money.Money
	status       Status
	receipt      *Receipt
	broadcaster  *RevenueBroadcaster
}

// NewSale opens an empty sale in the given currency. The observers are copied; later
// registrations elsewhere do not affect this sale.
func NewSale(currency string, observers []RevenueObserver) *Sale {
	return &Sale{
		ID:           uuid.New(),
		StartedAt:    time.Now(),
		currency:     currency,
		totalInclVAT: money.Zero(currency),
		totalVAT:     money.Zero(currency),
		status:       StatusOpen,
		broadcaster:  NewRevenueBroadcaster(observers...),
	}
}

// Currency returns the currency every amount on this sale is expressed in
func (s *Sale) Currency() string {
	return s.currency
}

// Status returns the current state
func (s *Sale) Status() Status {
	return s.status
}

// IsOpen reports whether items and payment are still accepted
func (s *Sale) IsOpen() bool {
	return s.status == StatusOpen
}

// Lines returns copies of the line items in insertion order
func (s *Sale) Lines() []LineItem {
	out := make([]LineItem, 0, len(s.lines))
	for _, l := range s.lines {
		out = append(out, *l)
	}
	return out
}

// CurrentTotal returns the running total including VAT
func (s *Sale) CurrentTotal() money.Money {
	return s.totalInclVAT
}

// CurrentVAT returns the running VAT total
func (s *Sale) CurrentVAT() money.Money {
	return s.totalVAT
}

// Receipt returns the receipt, nil until the sale is paid
func (s *Sale) Receipt() *Receipt {
	return s.receipt
}

// AddItem puts quantity units of item on the sale. An item already on the sale has its
// line quantity increased instead of getting a second line.
func (s *Sale) AddItem(item *catalog.Item, quantity int) (*Snapshot, error) {
	if !s.IsOpen() {
		return nil, ErrSaleNotOpen
	}
	if item == nil {
		return nil, ErrNilItem
	}
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if item.Price.Currency() != s.currency {
		return nil, fmt.Errorf("item %s: %w", item.ID, money.ErrCurrencyMismatch)
	}

	line := s.findLine(item.ID)
	if line != nil {
		if err := line.IncreaseQuantity(quantity); err != nil {
			return nil, err
		}
	} else {
		newLine, err := NewLineItem(item, quantity)
		if err != nil {
			return nil, err
		}
		s.lines = append(s.lines, newLine)
		line = newLine
	}

	if err := s.recalculate(); err != nil {
		return nil, err
	}

	return &Snapshot{
		LastItem:     line.Item(),
		Quantity:     line.Quantity(),
		RunningTotal: s.totalInclVAT,
		RunningVAT:   s.totalVAT,
	}, nil
}

// Pay settles the sale with the tendered cash and returns the change. A rejected payment
// leaves the sale untouched. On success the receipt is stored and every observer is
// notified with the final total before Pay returns.
func (s *Sale) Pay(tendered money.Money) (money.Money, error) {
	if !s.IsOpen() {
		return money.Money{}, ErrSaleNotOpen
	}
	if tendered.Currency() == "" {
		return money.Money{}, ErrNoPayment
	}
	insufficient, err := tendered.LessThan(s.totalInclVAT)
	if err != nil {
		return money.Money{}, err
	}
	if insufficient {
		return money.Money{}, ErrInsufficientPayment
	}
	change, err := tendered.Subtract(s.totalInclVAT)
	if err != nil {
		return money.Money{}, err
	}

	s.status = StatusPaid
	receipt, err := BuildReceipt(s, tendered, change)
	if err != nil {
		s.status = StatusOpen
		return money.Money{}, err
	}
	s.receipt = receipt

	s.broadcaster.NotifyAll(s.totalInclVAT)
	return change, nil
}

func (s *Sale) findLine(itemID string) *LineItem {
	for _, l := range s.lines {
		if l.ItemID() == itemID {
			return l
		}
	}
	return nil
}

// recalculate sums every line from scratch
func (s *Sale) recalculate() error {
	total := money.Zero(s.currency)
	vat := money.Zero(s.currency)
	for _, l := range s.lines {
		var err error
		if total, err = total.Add(l.TotalInclVAT()); err != nil {
			return fmt.Errorf("failed to sum line %s: %w", l.ItemID(), err)
		}
		if vat, err = vat.Add(l.TotalVAT()); err != nil {
			return fmt.Errorf("failed to sum line %s: %w", l.ItemID(), err)
		}
	}
	s.totalInclVAT = total
	s.totalVAT = vat
	return nil
}
