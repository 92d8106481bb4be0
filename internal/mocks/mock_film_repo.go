package mocks

import (
	"context"

	"github.com/metinatakli/cinema-ticketing/internal/domain"
)

type MockFilmRepo struct {
	domain.FilmRepository
	GetByCollectionFunc func(ctx context.Context, collection domain.FilmCollection) ([]domain.Film, error)
	GetByIdFunc         func(ctx context.Context, id domain.FilmID) (*domain.Film, error)
}

func (m *MockFilmRepo) GetByCollection(ctx context.Context, collection domain.FilmCollection) ([]domain.Film, error) {
	return m.GetByCollectionFunc(ctx, collection)
}

func (m *MockFilmRepo) GetById(ctx context.Context, id domain.FilmID) (*domain.Film, error) {
	return m.GetByIdFunc(ctx, id)
}
