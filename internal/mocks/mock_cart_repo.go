package mocks

import (
	"context"

	"github.com/metinatakli/cinema-ticketing/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockCartRepo struct {
	mock.Mock
	domain.CartRepository
}

func (m *MockCartRepo) List(ctx context.Context, userID int) ([]domain.CartItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CartItem), args.Error(1)
}

func (m *MockCartRepo) Upsert(ctx context.Context, userID int, item domain.CartItem) error {
	args := m.Called(ctx, userID, item)
	return args.Error(0)
}

func (m *MockCartRepo) Delete(ctx context.Context, userID int, itemID string) error {
	args := m.Called(ctx, userID, itemID)
	return args.Error(0)
}

func (m *MockCartRepo) Clear(ctx context.Context, userID int) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockCartRepo) Observe(ctx context.Context, userID int) (*domain.Feed[domain.CartSnapshot], error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Feed[domain.CartSnapshot]), args.Error(1)
}
