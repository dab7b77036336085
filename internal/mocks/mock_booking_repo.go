package mocks

import (
	"context"

	"github.com/revou-fsse-feb25/final-project-be-amanahsuci/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockBookingRepo struct {
	mock.Mock
	domain.BookingRepository
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *domain.Booking, seatIDs []int) error {
	args := m.Called(ctx, booking, seatIDs)
	return args.Error(0)
}

func (m *MockBookingRepo) GetById(ctx context.Context, id int) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) GetDetailById(ctx context.Context, id int) (*domain.BookingDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingDetail), args.Error(1)
}

func (m *MockBookingRepo) GetAll(ctx context.Context, filters domain.BookingFilters) ([]domain.BookingDetail, *domain.Metadata, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.BookingDetail), args.Get(1).(*domain.Metadata), args.Error(2)
}

func (m *MockBookingRepo) GetBookedSeatIDs(ctx context.Context, showtimeID int, seatIDs []int) ([]int, error) {
	args := m.Called(ctx, showtimeID, seatIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockBookingRepo) Complete(ctx context.Context, booking *domain.Booking, pointsEarned int) error {
	args := m.Called(ctx, booking, pointsEarned)
	return args.Error(0)
}

func (m *MockBookingRepo) Cancel(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}
