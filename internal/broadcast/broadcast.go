// Package broadcast fans values out to subscribers that only care about the
// latest one.
package broadcast

import "sync"

// Latest delivers published values to every subscriber. Each subscriber has
// a single slot: a value that has not been read yet is replaced by a newer
// one, so Publish never blocks on a slow reader.
type Latest[T any] struct {
	mu     sync.Mutex
	subs   map[chan T]struct{}
	closed bool
}

// New creates an empty broadcaster.
func New[T any]() *Latest[T] {
	return &Latest[T]{subs: make(map[chan T]struct{})}
}

// Subscribe registers a subscriber whose channel already holds initial.
// The returned func unsubscribes and closes the channel; it is safe to call
// more than once.
func (b *Latest[T]) Subscribe(initial T) (<-chan T, func()) {
	ch := make(chan T, 1)
	ch <- initial

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	return ch, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if _, ok := b.subs[ch]; !ok {
			return
		}
		delete(b.subs, ch)
		close(ch)
	}
}

// Publish offers v to every subscriber.
func (b *Latest[T]) Publish(v T) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for ch := range b.subs {
		offer(ch, v)
	}
}

// Len returns the number of active subscribers.
func (b *Latest[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Close closes every subscriber channel. Later subscribers get a closed channel.
func (b *Latest[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for ch := range b.subs {
		delete(b.subs, ch)
		close(ch)
	}
	b.closed = true
}

// offer must be called with the broadcaster lock held, so it is the only sender.
func offer[T any](ch chan T, v T) {
	for {
		select {
		case ch <- v:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
