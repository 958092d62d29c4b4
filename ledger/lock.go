package ledger

import (
	"errors"
	"sync"
	"time"
)

// ErrLockTimeout is returned when the ledger lock could not be
// acquired within the caller's timeout.
var ErrLockTimeout = errors.New("timed out waiting for ledger access")

// DefaultLockTimeout bounds how long a writer waits for its turn.
const DefaultLockTimeout = 5 * time.Second

// FileLock serializes read-modify-write cycles against the ledger
// file within a single process. Waiters are queued and woken in FIFO
// order, so no writer is starved as long as every holder releases.
// It provides no protection across processes.
type FileLock struct {
	mu      sync.Mutex
	held    bool
	waiters []chan struct{}
}

func NewFileLock() *FileLock {
	return &FileLock{}
}

// Acquire blocks until the lock is free or timeout elapses. A
// timed-out waiter is removed from the queue and never holds the
// lock.
func (l *FileLock) Acquire(timeout time.Duration) error {
	l.mu.Lock()
	if !l.held {
		l.held = true
		l.mu.Unlock()
		return nil
	}

	turn := make(chan struct{})
	l.waiters = append(l.waiters, turn)
	l.mu.Unlock()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-turn:
		// Release handed the lock directly to us; held stays true.
		return nil
	case <-timer.C:
	}

	l.mu.Lock()
	for i, w := range l.waiters {
		if w == turn {
			l.waiters = append(l.waiters[:i], l.waiters[i+1:]...)
			l.mu.Unlock()
			return ErrLockTimeout
		}
	}
	l.mu.Unlock()

	// Release signalled us in the window between the timeout firing
	// and re-entering the critical section, so we now own the lock
	// and must pass it on before failing.
	l.Release()
	return ErrLockTimeout
}

// Release frees the lock, handing it to the oldest waiter if one is
// queued. Releasing a lock that is not held leaves the state
// unchanged.
func (l *FileLock) Release() {
	l.mu.Lock()
	if !l.held {
		l.mu.Unlock()
		return
	}
	if len(l.waiters) > 0 {
		turn := l.waiters[0]
		l.waiters = l.waiters[1:]
		l.mu.Unlock()
		close(turn)
		return
	}
	l.held = false
	l.mu.Unlock()
}

// WithLock runs fn while holding the lock and releases it on every
// exit path.
func (l *FileLock) WithLock(timeout time.Duration, fn func() error) error {
	if err := l.Acquire(timeout); err != nil {
		return err
	}
	defer l.Release()
	return fn()
}

// pendingWaiters reports how many acquirers are queued behind the
// current holder.
func (l *FileLock) pendingWaiters() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.waiters)
}
