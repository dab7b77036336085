package mocks

import (
	"context"

	"github.com/revou-fsse-feb25/final-project-be-amanahsuci/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockTheaterRepo struct {
	mock.Mock
	domain.TheaterRepository
}

func (m *MockTheaterRepo) GetAll(ctx context.Context) ([]domain.Theater, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Theater), args.Error(1)
}

func (m *MockTheaterRepo) Create(ctx context.Context, theater *domain.Theater) error {
	args := m.Called(ctx, theater)
	return args.Error(0)
}

type MockCinemaRepo struct {
	mock.Mock
	domain.CinemaRepository
}

func (m *MockCinemaRepo) GetById(ctx context.Context, id int) (*domain.Cinema, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cinema), args.Error(1)
}

func (m *MockCinemaRepo) Create(ctx context.Context, cinema *domain.Cinema) error {
	args := m.Called(ctx, cinema)
	return args.Error(0)
}
