package credentials

import (
	"sync"
	"time"

	"github.com/ledgerly/go-expense-tracker/internal/config"
)

// failureRecord tracks the failed attempts of a single account.
type failureRecord struct {
	count       int
	windowStart time.Time
	lockedUntil time.Time
}

// MemoryLockoutTracker is an in-memory, mutex-guarded [LockoutTracker].
//
// Policy: reaching MaxFailures failed attempts within Window locks the
// account for Duration. A failure outside the window restarts the count.
// Success resets the record entirely. State is process-local: lockout is
// advisory hardening, not a persisted entity.
type MemoryLockoutTracker struct {
	mu      sync.Mutex
	records map[string]*failureRecord

	maxFailures int
	window      time.Duration
	duration    time.Duration

	now func() time.Time
}

// NewMemoryLockoutTracker constructs a [MemoryLockoutTracker] with the
// policy from cfg.
func NewMemoryLockoutTracker(cfg config.Lockout) *MemoryLockoutTracker {
	return &MemoryLockoutTracker{
		records:     make(map[string]*failureRecord),
		maxFailures: cfg.MaxFailures,
		window:      cfg.Window,
		duration:    cfg.Duration,
		now:         time.Now,
	}
}

// RecordFailure implements [LockoutTracker]. It registers one failed attempt
// for key and returns true when the attempt crossed the lockout threshold
// or the account was already locked.
func (t *MemoryLockoutTracker) RecordFailure(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	rec, ok := t.records[key]
	if !ok {
		rec = &failureRecord{windowStart: now}
		t.records[key] = rec
	}

	if now.Before(rec.lockedUntil) {
		return true
	}

	if now.Sub(rec.windowStart) > t.window {
		rec.count = 0
		rec.windowStart = now
	}

	rec.count++
	if rec.count >= t.maxFailures {
		rec.lockedUntil = now.Add(t.duration)
		rec.count = 0
		rec.windowStart = now
		return true
	}

	return false
}

// IsLockedOut implements [LockoutTracker].
func (t *MemoryLockoutTracker) IsLockedOut(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	rec, ok := t.records[key]
	if !ok {
		return false
	}

	return t.now().Before(rec.lockedUntil)
}

// Reset implements [LockoutTracker].
func (t *MemoryLockoutTracker) Reset(key string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.records, key)
}

// Prune drops records that carry no live information: expired lockouts and
// failure windows that have already elapsed. Called periodically by the
// lockout janitor worker.
func (t *MemoryLockoutTracker) Prune() {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	for key, rec := range t.records {
		if now.Before(rec.lockedUntil) {
			continue
		}
		if rec.count > 0 && now.Sub(rec.windowStart) <= t.window {
			continue
		}
		delete(t.records, key)
	}
}
