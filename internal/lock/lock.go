// Package lock serializes booking attempts on the same slot.
package lock

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrLocked = errors.New("lock: slot is being booked")

type Locker interface {
	// Acquire waits until key is free or ctx is done. release is safe to call
	// more than once.
	Acquire(ctx context.Context, key string, ttl time.Duration) (release func(), err error)
}

// ======================================================
// In-process locker
// ======================================================

type LocalLocker struct {
	mu    sync.Mutex
	slots map[string]chan struct{}
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{slots: make(map[string]chan struct{})}
}

func (l *LocalLocker) Acquire(ctx context.Context, key string, _ time.Duration) (func(), error) {
	for {
		l.mu.Lock()
		held, busy := l.slots[key]
		if !busy {
			ch := make(chan struct{})
			l.slots[key] = ch
			l.mu.Unlock()
			return l.releaser(key, ch), nil
		}
		l.mu.Unlock()

		select {
		case <-held:
		case <-ctx.Done():
			return nil, ErrLocked
		}
	}
}

func (l *LocalLocker) releaser(key string, ch chan struct{}) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			if l.slots[key] == ch {
				delete(l.slots, key)
			}
			l.mu.Unlock()
			close(ch)
		})
	}
}
