package mocks

import (
	"context"

	"github.com/revou-fsse-feb25/final-project-be-amanahsuci/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockPointsRepo struct {
	mock.Mock
	domain.PointsRepository
}

func (m *MockPointsRepo) Create(ctx context.Context, tx *domain.PointsTransaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockPointsRepo) GetById(ctx context.Context, id int) (*domain.PointsTransaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PointsTransaction), args.Error(1)
}

func (m *MockPointsRepo) GetAll(ctx context.Context, filters domain.PointsFilters) ([]domain.PointsTransaction, *domain.Metadata, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.PointsTransaction), args.Get(1).(*domain.Metadata), args.Error(2)
}

func (m *MockPointsRepo) GetUserSummary(ctx context.Context, userID int) (*domain.PointsSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PointsSummary), args.Error(1)
}

func (m *MockPointsRepo) Void(ctx context.Context, tx *domain.PointsTransaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}
