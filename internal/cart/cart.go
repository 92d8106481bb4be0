package cart

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/metinatakli/cinema-ticketing/internal/domain"
)

// Store is the per-user cart. Totals are always recomputed from unit price and
// seat count, so a caller cannot persist an inconsistent item.
type Store struct {
	repo   domain.CartRepository
	logger *slog.Logger
	now    func() time.Time
}

func NewStore(repo domain.CartRepository, logger *slog.Logger) *Store {
	return &Store{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

func (s *Store) AddItem(ctx context.Context, userID int, item domain.CartItem) (domain.CartItem, error) {
	if len(item.SeatNames) == 0 {
		return domain.CartItem{}, domain.ErrEmptySelection
	}

	if item.Date == "" || item.Time == "" {
		return domain.CartItem{}, domain.ErrShowtimeRequired
	}

	priced := item.Priced(s.now().UTC())

	err := s.repo.Upsert(ctx, userID, priced)
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("failed to store cart item: %w", err)
	}

	s.logger.Info("cart item added",
		"user_id", userID,
		"item_id", priced.ID,
		"film_id", priced.FilmID,
		"quantity", priced.Quantity,
		"total", priced.TotalPrice.String(),
	)

	return priced, nil
}

func (s *Store) RemoveItem(ctx context.Context, userID int, itemID string) error {
	err := s.repo.Delete(ctx, userID, itemID)
	if err != nil {
		if errors.Is(err, domain.ErrCartItemNotFound) {
			return err
		}

		return fmt.Errorf("failed to remove cart item: %w", err)
	}

	s.logger.Info("cart item removed", "user_id", userID, "item_id", itemID)

	return nil
}

func (s *Store) Clear(ctx context.Context, userID int) error {
	err := s.repo.Clear(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	s.logger.Info("cart cleared", "user_id", userID)

	return nil
}

func (s *Store) Snapshot(ctx context.Context, userID int) (domain.CartSnapshot, error) {
	items, err := s.repo.List(ctx, userID)
	if err != nil {
		return domain.CartSnapshot{}, fmt.Errorf("failed to list cart items: %w", err)
	}

	return domain.NewCartSnapshot(items), nil
}

// Observe streams a snapshot immediately and after every change until the feed
// is closed or ctx is done.
func (s *Store) Observe(ctx context.Context, userID int) (*domain.Feed[domain.CartSnapshot], error) {
	feed, err := s.repo.Observe(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to observe cart: %w", err)
	}

	return feed, nil
}
