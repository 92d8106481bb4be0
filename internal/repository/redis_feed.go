package repository

import (
	"context"
	"fmt"

	"github.com/metinatakli/cinema-ticketing/internal/domain"
	"github.com/redis/go-redis/v9"
)

const changeMessage = "changed"

// watch subscribes to channel and emits load's result once immediately and then
// after every notification. Only the latest snapshot is buffered, so a slow
// consumer skips intermediate states but always ends on the current one.
func watch[T any](
	ctx context.Context,
	client redis.UniversalClient,
	channel string,
	load func(context.Context) (T, error)) (*domain.Feed[T], error) {

	pubsub := client.Subscribe(ctx, channel)

	// wait for the subscription to be confirmed before loading, otherwise a
	// change published in between would be missed
	_, err := pubsub.Receive(ctx)
	if err != nil {
		pubsub.Close()
		return nil, err
	}

	initial, err := load(ctx)
	if err != nil {
		pubsub.Close()
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)

	updates := make(chan T, 1)
	updates <- initial

	done := make(chan struct{})
	var closeErr error

	feed := domain.NewFeed(updates, func() error {
		cancel()
		<-done

		return closeErr
	})

	go func() {
		defer close(done)
		defer close(updates)

		defer func() {
			closeErr = pubsub.Close()
		}()

		messages := pubsub.Channel()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-messages:
				if !ok {
					if ctx.Err() == nil {
						feed.Fail(fmt.Errorf("subscription to %s was closed", channel))
					}
					return
				}

				snapshot, err := load(ctx)
				if err != nil {
					if ctx.Err() == nil {
						feed.Fail(fmt.Errorf("failed to reload %s: %w", channel, err))
					}
					return
				}

				select {
				case <-updates:
				default:
				}

				updates <- snapshot
			}
		}
	}()

	return feed, nil
}
