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

type RedisCartRepository struct {
	client redis.UniversalClient
}

func NewRedisCartRepository(client redis.UniversalClient) *RedisCartRepository {
	return &RedisCartRepository{
		client: client,
	}
}

type cartItemRecord struct {
	ID            string          `json:"id"`
	FilmID        int64           `json:"filmId"`
	FilmTitle     string          `json:"filmTitle"`
	FilmPosterUrl string          `json:"filmPosterUrl"`
	UnitPrice     decimal.Decimal `json:"price"`
	Date          string          `json:"date"`
	Time          string          `json:"time"`
	SeatNames     []string        `json:"seatNames"`
	Quantity      int             `json:"quantity"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
	CreatedAt     time.Time       `json:"createdAt"`
}

func cartKey(userID int) string {
	return fmt.Sprintf("cart:%d", userID)
}

func cartEventsChannel(userID int) string {
	return fmt.Sprintf("cart_events:%d", userID)
}

func encodeCartItem(item domain.CartItem) ([]byte, error) {
	return json.Marshal(cartItemRecord{
		ID:            item.ID,
		FilmID:        int64(item.FilmID),
		FilmTitle:     item.FilmTitle,
		FilmPosterUrl: item.FilmPosterUrl,
		UnitPrice:     item.UnitPrice,
		Date:          item.Date,
		Time:          item.Time,
		SeatNames:     item.SeatNames,
		Quantity:      item.Quantity,
		TotalPrice:    item.TotalPrice,
		CreatedAt:     item.CreatedAt,
	})
}

func decodeCartItem(data string) (domain.CartItem, error) {
	var rec cartItemRecord

	err := json.Unmarshal([]byte(data), &rec)
	if err != nil {
		return domain.CartItem{}, err
	}

	return domain.CartItem{
		ID:            rec.ID,
		FilmID:        domain.FilmID(rec.FilmID),
		FilmTitle:     rec.FilmTitle,
		FilmPosterUrl: rec.FilmPosterUrl,
		UnitPrice:     rec.UnitPrice,
		Date:          rec.Date,
		Time:          rec.Time,
		SeatNames:     rec.SeatNames,
		Quantity:      rec.Quantity,
		TotalPrice:    rec.TotalPrice,
		CreatedAt:     rec.CreatedAt,
	}, nil
}

// List returns the user's items ordered by the time they were added.
func (r *RedisCartRepository) List(ctx context.Context, userID int) ([]domain.CartItem, error) {
	entries, err := r.client.HGetAll(ctx, cartKey(userID)).Result()
	if err != nil {
		return nil, err
	}

	items := make([]domain.CartItem, 0, len(entries))

	for id, data := range entries {
		item, err := decodeCartItem(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode cart item %s: %w", id, err)
		}

		items = append(items, item)
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].ID < items[j].ID
		}

		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})

	return items, nil
}

func (r *RedisCartRepository) Upsert(ctx context.Context, userID int, item domain.CartItem) error {
	data, err := encodeCartItem(item)
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, cartKey(userID), item.ID, data)
	pipe.Publish(ctx, cartEventsChannel(userID), changeMessage)

	_, err = pipe.Exec(ctx)

	return err
}

func (r *RedisCartRepository) Delete(ctx context.Context, userID int, itemID string) error {
	removed, err := r.client.HDel(ctx, cartKey(userID), itemID).Result()
	if err != nil {
		return err
	}

	if removed == 0 {
		return domain.ErrCartItemNotFound
	}

	return r.client.Publish(ctx, cartEventsChannel(userID), changeMessage).Err()
}

func (r *RedisCartRepository) Clear(ctx context.Context, userID int) error {
	pipe := r.client.TxPipeline()
	pipe.Del(ctx, cartKey(userID))
	pipe.Publish(ctx, cartEventsChannel(userID), changeMessage)

	_, err := pipe.Exec(ctx)

	return err
}

func (r *RedisCartRepository) Observe(ctx context.Context, userID int) (*domain.Feed[domain.CartSnapshot], error) {
	return watch(ctx, r.client, cartEventsChannel(userID), func(ctx context.Context) (domain.CartSnapshot, error) {
		items, err := r.List(ctx, userID)
		if err != nil {
			return domain.CartSnapshot{}, err
		}

		return domain.NewCartSnapshot(items), nil
	})
}
