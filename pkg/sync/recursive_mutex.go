package sync

import (
	"sync"
	"sync/atomic"

	"github.com/silentred/gid"
)

// RecursiveMutex is a mutual exclusion lock that may be acquired
// multiple times by the goroutine already holding it, without
// deadlocking against itself. Each call to Lock() must be paired with
// exactly one call to Unlock(); the underlying exclusive lock is only
// released once the hold count returns to zero.
//
// Go deliberately doesn't ship a reentrant lock, as it tends to hide
// broken invariants. This package provides one anyway for call graphs
// that legitimately re-enter themselves, such as a path resolver whose
// copy-up step resolves ancestor directories through the same entry
// point. Callers that don't recurse should use plain sync.Mutex.
//
// Ownership is tracked by goroutine identity. The owner field is the
// single source of truth: it is only ever written while the inner
// mutex is held, and the hold count is only ever touched by the owning
// goroutine. A goroutine that observes itself as owner can therefore
// mutate the count without synchronization, while any other goroutine
// falls through to a regular blocking acquisition.
type RecursiveMutex struct {
	mutex     sync.Mutex
	owner     atomic.Int64
	holdCount uint64
}

// Lock acquires the mutex. If the calling goroutine already holds it,
// the hold count is incremented and the call returns immediately.
// Otherwise the call blocks until the current owner's hold count
// returns to zero.
func (m *RecursiveMutex) Lock() {
	me := gid.Get()
	if m.owner.Load() == me {
		// Reentrant acquisition. Only the owner can observe its
		// own identity in the owner field, so the count may be
		// updated without holding the inner mutex.
		m.holdCount++
		return
	}
	m.mutex.Lock()
	if !m.owner.CompareAndSwap(0, me) {
		panic("RecursiveMutex acquired while still owned by another goroutine")
	}
	m.holdCount = 1
}

// Unlock releases the mutex once. The underlying exclusive lock is
// released when the number of Unlock() calls matches the number of
// Lock() calls. Calling Unlock() from a goroutine that doesn't hold
// the mutex is a programming error and panics.
func (m *RecursiveMutex) Unlock() {
	if m.owner.Load() != gid.Get() {
		panic("RecursiveMutex unlocked by a goroutine that doesn't hold it")
	}
	m.holdCount--
	if m.holdCount == 0 {
		m.owner.Store(0)
		m.mutex.Unlock()
	}
}
