package domain

import "sync"

// Feed is a live subscription to a store. Updates delivers the latest snapshot
// after every change and is closed once the feed stops. Consumers must call
// Close when they are no longer interested.
type Feed[T any] struct {
	updates <-chan T
	closeFn func() error

	once     sync.Once
	closeErr error

	mu      sync.Mutex
	failure error
}

func NewFeed[T any](updates <-chan T, closeFn func() error) *Feed[T] {
	return &Feed[T]{
		updates: updates,
		closeFn: closeFn,
	}
}

func (f *Feed[T]) Updates() <-chan T {
	return f.updates
}

// Fail records why the producer stopped. Producers call it before closing the
// updates channel so that consumers see the error once the channel is drained.
func (f *Feed[T]) Fail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failure == nil {
		f.failure = err
	}
}

// Err returns the error that ended the feed, or nil when it ended because it
// was closed.
func (f *Feed[T]) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.failure
}

func (f *Feed[T]) Close() error {
	f.once.Do(func() {
		if f.closeFn != nil {
			f.closeErr = f.closeFn()
		}
	})

	return f.closeErr
}
