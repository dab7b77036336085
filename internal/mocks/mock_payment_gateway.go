package mocks

import (
	"context"

	"github.com/revou-fsse-feb25/final-project-be-amanahsuci/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockPaymentGateway struct {
	mock.Mock
	domain.PaymentGateway
}

func (m *MockPaymentGateway) Charge(ctx context.Context, payment *domain.Payment) (string, error) {
	args := m.Called(ctx, payment)
	return args.String(0), args.Error(1)
}
