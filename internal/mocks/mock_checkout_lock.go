package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MockCheckoutLock is an in-process lock with the same semantics as the Redis
// one: a lock can only be released with the token that acquired it.
type MockCheckoutLock struct {
	mu      sync.Mutex
	holders map[int]string
	Err     error
}

func NewMockCheckoutLock() *MockCheckoutLock {
	return &MockCheckoutLock{
		holders: make(map[int]string),
	}
}

func (m *MockCheckoutLock) TryLock(ctx context.Context, userID int) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return "", false, m.Err
	}

	if _, held := m.holders[userID]; held {
		return "", false, nil
	}

	token := uuid.New().String()
	m.holders[userID] = token

	return token, true, nil
}

func (m *MockCheckoutLock) Unlock(ctx context.Context, userID int, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.holders[userID] == token {
		delete(m.holders, userID)
	}

	return nil
}

func (m *MockCheckoutLock) Held(userID int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, held := m.holders[userID]
	return held
}
