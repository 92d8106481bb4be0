package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var releaseLockScript = redis.NewScript(`
    -- KEYS[1] = lock key (e.g., checkout_lock:42)
    -- ARGV[1] = token of the holder

    if redis.call("GET", KEYS[1]) == ARGV[1] then
        return redis.call("DEL", KEYS[1])
    end

    return 0
`)

// RedisCheckoutLock allows one checkout per user across every API instance. The
// TTL bounds how long a crashed instance can block the user.
type RedisCheckoutLock struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewRedisCheckoutLock(client redis.UniversalClient, ttl time.Duration) *RedisCheckoutLock {
	return &RedisCheckoutLock{
		client: client,
		ttl:    ttl,
	}
}

func checkoutLockKey(userID int) string {
	return fmt.Sprintf("checkout_lock:%d", userID)
}

func (l *RedisCheckoutLock) TryLock(ctx context.Context, userID int) (string, bool, error) {
	token := uuid.New().String()

	acquired, err := l.client.SetNX(ctx, checkoutLockKey(userID), token, l.ttl).Result()
	if err != nil {
		return "", false, err
	}

	if !acquired {
		return "", false, nil
	}

	return token, true, nil
}

func (l *RedisCheckoutLock) Unlock(ctx context.Context, userID int, token string) error {
	return releaseLockScript.Run(ctx, l.client, []string{checkoutLockKey(userID)}, token).Err()
}
