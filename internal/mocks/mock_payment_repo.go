package mocks

import (
	"context"

	"github.com/revou-fsse-feb25/final-project-be-amanahsuci/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockPaymentRepo struct {
	mock.Mock
	domain.PaymentRepository
}

func (m *MockPaymentRepo) Create(ctx context.Context, payment *domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepo) GetById(ctx context.Context, id int) (*domain.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepo) GetByBookingId(ctx context.Context, bookingID int) (*domain.Payment, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepo) Complete(ctx context.Context, payment *domain.Payment, booking *domain.Booking, pointsEarned int) error {
	args := m.Called(ctx, payment, booking, pointsEarned)
	return args.Error(0)
}

func (m *MockPaymentRepo) Cancel(ctx context.Context, payment *domain.Payment, booking *domain.Booking) error {
	args := m.Called(ctx, payment, booking)
	return args.Error(0)
}
