package mocks

import (
	"context"

	"github.com/revou-fsse-feb25/final-project-be-amanahsuci/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockShowtimeRepo struct {
	mock.Mock
	domain.ShowtimeRepository
}

func (m *MockShowtimeRepo) GetById(ctx context.Context, id int) (*domain.ShowtimeDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShowtimeDetail), args.Error(1)
}

func (m *MockShowtimeRepo) GetAll(ctx context.Context, filters domain.ShowtimeFilters) ([]domain.ShowtimeDetail, *domain.Metadata, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.ShowtimeDetail), args.Get(1).(*domain.Metadata), args.Error(2)
}

func (m *MockShowtimeRepo) Create(ctx context.Context, showtime *domain.Showtime, durationMinutes int) error {
	args := m.Called(ctx, showtime, durationMinutes)
	return args.Error(0)
}
