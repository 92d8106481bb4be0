package domain

import "context"

type BookmarkRepository interface {
	Add(ctx context.Context, userID int, film Film) error
	Remove(ctx context.Context, userID int, filmID FilmID) error
	Contains(ctx context.Context, userID int, filmID FilmID) (bool, error)
	List(ctx context.Context, userID int) ([]Film, error)
	Observe(ctx context.Context, userID int) (*Feed[[]Film], error)
}
