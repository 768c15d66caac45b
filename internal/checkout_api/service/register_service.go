package service

import (
	"context"

	"github.com/innoscripta-checkout-register/internal/domain/register"
)

// BalanceReader is implemented by the checkout's cash drawer
type BalanceReader interface {
	Balance(ctx context.Context) (*register.Register, error)
}

// RegisterServiceImpl implements the RegisterService interface
type RegisterServiceImpl struct {
	drawer BalanceReader
}

// NewRegisterService creates a new register service
func NewRegisterService(drawer BalanceReader) RegisterService {
	return &RegisterServiceImpl{drawer: drawer}
}

func (s *RegisterServiceImpl) Balance(ctx context.Context) (*register.Register, error) {
	return s.drawer.Balance(ctx)
}
