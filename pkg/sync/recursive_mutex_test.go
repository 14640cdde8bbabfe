package sync_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/buildbarn/bb-unionfs/pkg/sync"
	"github.com/stretchr/testify/require"
)

func TestRecursiveMutexReentry(t *testing.T) {
	// A goroutine that already holds the mutex must be able to
	// acquire it again without blocking against itself.
	var m sync.RecursiveMutex
	m.Lock()
	m.Lock()
	m.Lock()
	m.Unlock()
	m.Unlock()
	m.Unlock()

	// After balanced unlocks the mutex must be free again, so that
	// another goroutine can acquire it immediately.
	acquired := make(chan struct{})
	go func() {
		m.Lock()
		m.Unlock()
		close(acquired)
	}()
	select {
	case <-acquired:
	case <-time.After(10 * time.Second):
		t.Fatal("Mutex was not released after balanced unlocks")
	}
}

func TestRecursiveMutexBlocksOtherGoroutines(t *testing.T) {
	var m sync.RecursiveMutex
	m.Lock()
	m.Lock()

	var acquired atomic.Bool
	released := make(chan struct{})
	go func() {
		m.Lock()
		acquired.Store(true)
		m.Unlock()
		close(released)
	}()

	// The second goroutine must remain blocked while the hold count
	// is still positive, no matter how long it gets to run.
	time.Sleep(100 * time.Millisecond)
	require.False(t, acquired.Load())

	m.Unlock()
	time.Sleep(100 * time.Millisecond)
	require.False(t, acquired.Load())

	// Dropping the final hold hands the mutex over.
	m.Unlock()
	select {
	case <-released:
	case <-time.After(10 * time.Second):
		t.Fatal("Second goroutine never acquired the mutex")
	}
	require.True(t, acquired.Load())
}

func TestRecursiveMutexUnlockByNonOwner(t *testing.T) {
	var m sync.RecursiveMutex
	m.Lock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		require.Panics(t, func() {
			m.Unlock()
		})
	}()
	<-done
	m.Unlock()

	require.Panics(t, func() {
		m.Unlock()
	})
}
