package mocks

import (
	"context"

	"github.com/revou-fsse-feb25/final-project-be-amanahsuci/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockSeatRepo struct {
	mock.Mock
	domain.SeatRepository
}

func (m *MockSeatRepo) GetByCinema(ctx context.Context, cinemaID int) ([]domain.Seat, error) {
	args := m.Called(ctx, cinemaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Seat), args.Error(1)
}

func (m *MockSeatRepo) CountByCinemaAndIds(ctx context.Context, cinemaID int, seatIDs []int) (int, error) {
	args := m.Called(ctx, cinemaID, seatIDs)
	return args.Int(0), args.Error(1)
}

func (m *MockSeatRepo) CreateBatch(ctx context.Context, cinemaID int, seatNumbers []string) error {
	args := m.Called(ctx, cinemaID, seatNumbers)
	return args.Error(0)
}
