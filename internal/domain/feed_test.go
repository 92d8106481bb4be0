package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFeedFailure(t *testing.T) {
	updates := make(chan int, 1)
	updates <- 7

	closeCalls := 0
	feed := NewFeed(updates, func() error {
		closeCalls++
		return nil
	})

	require.NoError(t, feed.Err())

	loadErr := errors.New("redis: connection pool timeout")
	feed.Fail(loadErr)
	feed.Fail(errors.New("later failure"))
	close(updates)

	require.Equal(t, 7, <-feed.Updates())

	_, ok := <-feed.Updates()
	require.False(t, ok)
	require.ErrorIs(t, feed.Err(), loadErr)

	require.NoError(t, feed.Close())
	require.NoError(t, feed.Close())
	require.Equal(t, 1, closeCalls)
}

func TestFeedClosedWithoutFailure(t *testing.T) {
	updates := make(chan string)
	feed := NewFeed(updates, func() error {
		close(updates)
		return nil
	})

	require.NoError(t, feed.Close())

	_, ok := <-feed.Updates()
	require.False(t, ok)
	require.NoError(t, feed.Err())
}
