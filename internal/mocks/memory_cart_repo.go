package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/metinatakli/cinema-ticketing/internal/domain"
)

// MemoryCartRepo is an in-memory domain.CartRepository whose feeds are notified
// synchronously on every write.
type MemoryCartRepo struct {
	mu       sync.Mutex
	items    map[int]map[string]domain.CartItem
	watchers map[int][]chan domain.CartSnapshot
}

func NewMemoryCartRepo() *MemoryCartRepo {
	return &MemoryCartRepo{
		items:    make(map[int]map[string]domain.CartItem),
		watchers: make(map[int][]chan domain.CartSnapshot),
	}
}

func (m *MemoryCartRepo) List(ctx context.Context, userID int) ([]domain.CartItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.listLocked(userID), nil
}

func (m *MemoryCartRepo) Upsert(ctx context.Context, userID int, item domain.CartItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.items[userID] == nil {
		m.items[userID] = make(map[string]domain.CartItem)
	}
	m.items[userID][item.ID] = item

	m.notifyLocked(userID)
	return nil
}

func (m *MemoryCartRepo) Delete(ctx context.Context, userID int, itemID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[userID][itemID]; !ok {
		return domain.ErrCartItemNotFound
	}
	delete(m.items[userID], itemID)

	m.notifyLocked(userID)
	return nil
}

func (m *MemoryCartRepo) Clear(ctx context.Context, userID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.items, userID)

	m.notifyLocked(userID)
	return nil
}

func (m *MemoryCartRepo) Observe(ctx context.Context, userID int) (*domain.Feed[domain.CartSnapshot], error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ch := make(chan domain.CartSnapshot, 1)
	ch <- domain.NewCartSnapshot(m.listLocked(userID))
	m.watchers[userID] = append(m.watchers[userID], ch)

	return domain.NewFeed(ch, func() error {
		m.mu.Lock()
		defer m.mu.Unlock()

		watchers := m.watchers[userID]
		for i, w := range watchers {
			if w == ch {
				m.watchers[userID] = append(watchers[:i], watchers[i+1:]...)
				close(ch)
				break
			}
		}

		return nil
	}), nil
}

func (m *MemoryCartRepo) listLocked(userID int) []domain.CartItem {
	items := make([]domain.CartItem, 0, len(m.items[userID]))
	for _, item := range m.items[userID] {
		items = append(items, item)
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].ID < items[j].ID
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})

	return items
}

func (m *MemoryCartRepo) notifyLocked(userID int) {
	snapshot := domain.NewCartSnapshot(m.listLocked(userID))

	for _, ch := range m.watchers[userID] {
		select {
		case <-ch:
		default:
		}
		ch <- snapshot
	}
}
