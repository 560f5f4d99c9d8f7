package workers

import (
	"context"
	"time"

	"github.com/ledgerly/go-expense-tracker/internal/logger"
)

// prunable is the part of the lockout tracker the janitor needs.
type prunable interface {
	Prune()
}

// LockoutJanitor periodically removes stale failed-login records from the
// lockout tracker so that memory does not grow with the number of
// distinct emails ever attempted.
type LockoutJanitor struct {
	tracker  prunable
	interval time.Duration
	logger   *logger.Logger
}

// NewLockoutJanitor creates a janitor that prunes tracker every interval.
func NewLockoutJanitor(tracker prunable, interval time.Duration, logger *logger.Logger) *LockoutJanitor {
	return &LockoutJanitor{
		tracker:  tracker,
		interval: interval,
		logger:   logger,
	}
}

// Run starts the pruning loop in a background goroutine. The loop stops when
// ctx is cancelled.
func (j *LockoutJanitor) Run(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()

		j.logger.Info().Dur("interval", j.interval).Msg("lockout janitor started")

		for {
			select {
			case <-ctx.Done():
				j.logger.Info().Msg("lockout janitor stopped")
				return
			case <-ticker.C:
				j.tracker.Prune()
			}
		}
	}()
}
