package keylock_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"deliveryops/internal/pkg/keylock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocker_SerialisesSameKey(t *testing.T) {
	l := keylock.New()
	ctx := t.Context()

	var inside, maxInside int32
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := l.Lock(ctx, "order-1")
			if !assert.NoError(t, err) {
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
			unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInside)
	assert.Zero(t, l.Len())
}

func TestLocker_DifferentKeysDoNotBlock(t *testing.T) {
	l := keylock.New()
	ctx := t.Context()

	unlockA, err := l.Lock(ctx, "a")
	require.NoError(t, err)
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB, err := l.Lock(ctx, "b")
		if err == nil {
			unlockB()
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on b waited for a")
	}
}

func TestLocker_LockAllOverlappingSets(t *testing.T) {
	l := keylock.New()
	ctx := t.Context()

	var wg sync.WaitGroup
	for i := range 20 {
		keys := []string{"x", "y", "z"}
		if i%2 == 0 {
			keys = []string{"z", "y", "x", "x"}
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := l.LockAll(ctx, keys)
			if assert.NoError(t, err) {
				unlock()
			}
		}()
	}

	finished := make(chan struct{})
	go func() {
		wg.Wait()
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(5 * time.Second):
		t.Fatal("overlapping LockAll calls deadlocked")
	}
	assert.Zero(t, l.Len())
}

func TestLocker_ContextCancelled(t *testing.T) {
	l := keylock.New()

	unlock, err := l.Lock(t.Context(), "a")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(t.Context(), 20*time.Millisecond)
	defer cancel()

	_, err = l.LockAll(ctx, []string{"0", "a"})

	require.ErrorIs(t, err, context.DeadlineExceeded)
	unlock()
	assert.Zero(t, l.Len())

	again, err := l.Lock(t.Context(), "0")
	require.NoError(t, err)
	again()
}

func TestLocker_UnlockIsIdempotent(t *testing.T) {
	l := keylock.New()

	unlock, err := l.Lock(t.Context(), "a")
	require.NoError(t, err)

	unlock()
	unlock()

	assert.Zero(t, l.Len())
}
