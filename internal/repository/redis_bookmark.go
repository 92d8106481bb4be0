package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/metinatakli/cinema-ticketing/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

type RedisBookmarkRepository struct {
	client redis.UniversalClient
	now    func() time.Time
}

func NewRedisBookmarkRepository(client redis.UniversalClient) *RedisBookmarkRepository {
	return &RedisBookmarkRepository{
		client: client,
		now:    time.Now,
	}
}

type bookmarkRecord struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	PosterUrl   string          `json:"posterUrl"`
	TrailerUrl  string          `json:"trailerUrl"`
	Year        int             `json:"year"`
	Runtime     string          `json:"runtime"`
	Price       decimal.Decimal `json:"price"`
	Genres      []string        `json:"genres"`
	Casts       []domain.Cast   `json:"casts"`
	AddedAt     time.Time       `json:"addedAt"`
}

func bookmarksKey(userID int) string {
	return fmt.Sprintf("bookmarks:%d", userID)
}

func bookmarkEventsChannel(userID int) string {
	return fmt.Sprintf("bookmark_events:%d", userID)
}

func (r *RedisBookmarkRepository) Add(ctx context.Context, userID int, film domain.Film) error {
	data, err := json.Marshal(bookmarkRecord{
		ID:          int64(film.ID),
		Title:       film.Title,
		Description: film.Description,
		PosterUrl:   film.PosterUrl,
		TrailerUrl:  film.TrailerUrl,
		Year:        film.Year,
		Runtime:     film.Runtime,
		Price:       film.Price,
		Genres:      film.Genres,
		Casts:       film.Casts,
		AddedAt:     r.now().UTC(),
	})
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, bookmarksKey(userID), film.ID.Key(), data)
	pipe.Publish(ctx, bookmarkEventsChannel(userID), changeMessage)

	_, err = pipe.Exec(ctx)

	return err
}

// Remove is idempotent: removing a film that is not bookmarked is not an error.
func (r *RedisBookmarkRepository) Remove(ctx context.Context, userID int, filmID domain.FilmID) error {
	pipe := r.client.TxPipeline()
	pipe.HDel(ctx, bookmarksKey(userID), filmID.Key())
	pipe.Publish(ctx, bookmarkEventsChannel(userID), changeMessage)

	_, err := pipe.Exec(ctx)

	return err
}

func (r *RedisBookmarkRepository) Contains(ctx context.Context, userID int, filmID domain.FilmID) (bool, error) {
	return r.client.HExists(ctx, bookmarksKey(userID), filmID.Key()).Result()
}

// List returns bookmarked films, most recently added first.
func (r *RedisBookmarkRepository) List(ctx context.Context, userID int) ([]domain.Film, error) {
	entries, err := r.client.HGetAll(ctx, bookmarksKey(userID)).Result()
	if err != nil {
		return nil, err
	}

	records := make([]bookmarkRecord, 0, len(entries))

	for key, data := range entries {
		var rec bookmarkRecord

		err := json.Unmarshal([]byte(data), &rec)
		if err != nil {
			return nil, fmt.Errorf("failed to decode bookmark %s: %w", key, err)
		}

		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].AddedAt.Equal(records[j].AddedAt) {
			return records[i].ID < records[j].ID
		}

		return records[i].AddedAt.After(records[j].AddedAt)
	})

	films := make([]domain.Film, len(records))
	for i, rec := range records {
		films[i] = domain.Film{
			ID:          domain.FilmID(rec.ID),
			Title:       rec.Title,
			Description: rec.Description,
			PosterUrl:   rec.PosterUrl,
			TrailerUrl:  rec.TrailerUrl,
			Year:        rec.Year,
			Runtime:     rec.Runtime,
			Price:       rec.Price,
			Genres:      rec.Genres,
			Casts:       rec.Casts,
		}
	}

	return films, nil
}

func (r *RedisBookmarkRepository) Observe(ctx context.Context, userID int) (*domain.Feed[[]domain.Film], error) {
	return watch(ctx, r.client, bookmarkEventsChannel(userID), func(ctx context.Context) ([]domain.Film, error) {
		return r.List(ctx, userID)
	})
}
