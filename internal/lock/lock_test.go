package lock

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestLocalLocker_Exclusive(t *testing.T) {
	l := NewLocalLocker()
	var inside, maxInside int32
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := l.Acquire(context.Background(), "1|2025-06-03|10:00", time.Second)
			if err != nil {
				t.Errorf("Acquire: %v", err)
				return
			}
			n := atomic.AddInt32(&inside, 1)
			for {
				m := atomic.LoadInt32(&maxInside)
				if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inside, -1)
			release()
		}()
	}
	wg.Wait()

	if maxInside != 1 {
		t.Fatalf("max holders = %d, want 1", maxInside)
	}
}

func TestLocalLocker_TimesOut(t *testing.T) {
	l := NewLocalLocker()
	release, err := l.Acquire(context.Background(), "k", time.Second)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	defer release()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if _, err := l.Acquire(ctx, "k", time.Second); !errors.Is(err, ErrLocked) {
		t.Fatalf("err = %v, want ErrLocked", err)
	}
}

func TestLocalLocker_IndependentKeysAndDoubleRelease(t *testing.T) {
	l := NewLocalLocker()
	r1, _ := l.Acquire(context.Background(), "a", time.Second)
	r2, err := l.Acquire(context.Background(), "b", time.Second)
	if err != nil {
		t.Fatalf("other key blocked: %v", err)
	}
	r1()
	r1()
	r2()

	r3, err := l.Acquire(context.Background(), "a", time.Second)
	if err != nil {
		t.Fatalf("re-acquire: %v", err)
	}
	r3()
}

func TestNewRedisClient_BadURL(t *testing.T) {
	if _, err := NewRedisClient(context.Background(), "http://localhost:6379"); err == nil {
		t.Fatalf("expected scheme error")
	}
}
