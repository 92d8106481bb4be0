package mocks

import (
	"context"

	"github.com/metinatakli/cinema-ticketing/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockBookmarkRepo struct {
	mock.Mock
	domain.BookmarkRepository
}

func (m *MockBookmarkRepo) Add(ctx context.Context, userID int, film domain.Film) error {
	args := m.Called(ctx, userID, film)
	return args.Error(0)
}

func (m *MockBookmarkRepo) Remove(ctx context.Context, userID int, filmID domain.FilmID) error {
	args := m.Called(ctx, userID, filmID)
	return args.Error(0)
}

func (m *MockBookmarkRepo) Contains(ctx context.Context, userID int, filmID domain.FilmID) (bool, error) {
	args := m.Called(ctx, userID, filmID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookmarkRepo) List(ctx context.Context, userID int) ([]domain.Film, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Film), args.Error(1)
}

func (m *MockBookmarkRepo) Observe(ctx context.Context, userID int) (*domain.Feed[[]domain.Film], error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Feed[[]domain.Film]), args.Error(1)
}
