package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CartItem struct {
	ID            string
	FilmID        FilmID
	FilmTitle     string
	FilmPosterUrl string
	UnitPrice     decimal.Decimal
	Date          string
	Time          string
	SeatNames     []string
	Quantity      int
	TotalPrice    decimal.Decimal
	CreatedAt     time.Time
}

// Priced returns a copy of the item with quantity taken from its seats, the
// total recomputed and an id assigned when it has none yet.
func (i CartItem) Priced(now time.Time) CartItem {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}

	if i.CreatedAt.IsZero() {
		i.CreatedAt = now
	}

	seats := make([]string, len(i.SeatNames))
	copy(seats, i.SeatNames)
	i.SeatNames = seats

	i.Quantity = len(seats)
	i.TotalPrice = i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))

	return i
}

// NewCartItemFromGrid turns the current selection of a seat grid into a cart item.
func NewCartItemFromGrid(film Film, grid SeatGrid) (CartItem, error) {
	selection := grid.Selection()
	if selection.Count == 0 {
		return CartItem{}, ErrEmptySelection
	}

	if grid.Date == "" || grid.Time == "" {
		return CartItem{}, ErrShowtimeRequired
	}

	item := CartItem{
		FilmID:        film.ID,
		FilmTitle:     film.Title,
		FilmPosterUrl: film.PosterUrl,
		UnitPrice:     film.Price,
		Date:          grid.Date,
		Time:          grid.Time,
		SeatNames:     selection.SeatNames,
	}

	return item, nil
}

type CartSnapshot struct {
	Items      []CartItem
	TotalPrice decimal.Decimal
}

func NewCartSnapshot(items []CartItem) CartSnapshot {
	if items == nil {
		items = []CartItem{}
	}

	return CartSnapshot{
		Items:      items,
		TotalPrice: GrandTotal(items),
	}
}

func GrandTotal(items []CartItem) decimal.Decimal {
	total := decimal.Zero

	for _, item := range items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return total
}

type CartRepository interface {
	List(ctx context.Context, userID int) ([]CartItem, error)
	Upsert(ctx context.Context, userID int, item CartItem) error
	Delete(ctx context.Context, userID int, itemID string) error
	Clear(ctx context.Context, userID int) error
	Observe(ctx context.Context, userID int) (*Feed[CartSnapshot], error)
}
