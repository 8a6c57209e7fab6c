// Package broadcast provides a single shared value fanned out to any number
// of subscribers. Subscriptions are scoped: the returned cancel function must
// be called on teardown and is safe to call more than once.
package broadcast

import "sync"

// Value holds the latest T and notifies subscribers on every Store.
type Value[T any] struct {
	mu      sync.RWMutex
	current T
	subs    map[uint64]func(T)
	nextID  uint64
}

// New creates a Value seeded with initial.
func New[T any](initial T) *Value[T] {
	return &Value[T]{
		current: initial,
		subs:    make(map[uint64]func(T)),
	}
}

// Load returns the latest stored value.
func (v *Value[T]) Load() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.current
}

// Store replaces the value and calls every subscriber with it.
// Subscribers run on the caller's goroutine, outside the lock.
func (v *Value[T]) Store(val T) {
	v.mu.Lock()
	v.current = val
	fns := make([]func(T), 0, len(v.subs))
	for _, fn := range v.subs {
		fns = append(fns, fn)
	}
	v.mu.Unlock()

	for _, fn := range fns {
		fn(val)
	}
}

// Subscribe registers fn and returns its cancel function.
func (v *Value[T]) Subscribe(fn func(T)) (cancel func()) {
	v.mu.Lock()
	id := v.nextID
	v.nextID++
	v.subs[id] = fn
	v.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			v.mu.Lock()
			delete(v.subs, id)
			v.mu.Unlock()
		})
	}
}

// Subscribers reports how many subscriptions are live.
func (v *Value[T]) Subscribers() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.subs)
}

// Latest returns a channel that always holds at most the newest value.
// Slow readers skip intermediate values instead of blocking Store.
func (v *Value[T]) Latest() (<-chan T, func()) {
	ch := make(chan T, 1)
	cancel := v.Subscribe(func(val T) {
		for {
			select {
			case ch <- val:
				return
			default:
			}
			select {
			case <-ch:
			default:
			}
		}
	})
	return ch, cancel
}
