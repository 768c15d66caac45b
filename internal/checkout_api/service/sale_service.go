package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	checkout "github.com/innoscripta-checkout-register/internal/checkout/service"
	"github.com/innoscripta-checkout-register/internal/domain/money"
	"github.com/innoscripta-checkout-register/internal/domain/sale"
)

// SaleServiceImpl implements the SaleService interface
type SaleServiceImpl struct {
	mu       sync.Mutex
	checkout checkout.Checkout
}

// NewSaleService creates a new sale service over one checkout
func NewSaleService(c checkout.Checkout) SaleService {
	return &SaleServiceImpl{checkout: c}
}

func (s *SaleServiceImpl) Currency() string {
	return s.checkout.Currency()
}

func (s *SaleServiceImpl) StartSale(_ context.Context) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkout.StartSale()
}

func (s *SaleServiceImpl) AddItem(ctx context.Context, itemID string, quantity int) (*sale.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, open := s.checkout.EndSale(); !open {
		return nil, ErrNoActiveSale
	}

	snapshot, err := s.checkout.EnterItem(ctx, itemID, quantity)
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return nil, ErrItemRejected
	}
	return snapshot, nil
}

func (s *SaleServiceImpl) Total(_ context.Context) (money.Money, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	total, open := s.checkout.EndSale()
	if !open {
		return money.Money{}, ErrNoActiveSale
	}
	return total, nil
}

func (s *SaleServiceImpl) Pay(ctx context.Context, tendered money.Money) (money.Money, *sale.Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, open := s.checkout.EndSale(); !open {
		return money.Money{}, nil, ErrNoActiveSale
	}

	change, ok := s.checkout.EnterPayment(ctx, tendered)
	if !ok {
		return money.Money{}, nil, ErrPaymentRejected
	}
	return change, s.checkout.CurrentReceipt(), nil
}
