package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/logger"

	"github.com/lib/pq"
)

const maxWriteAttempts = 3

// withRetry reruns a mutating store operation on transient write conflicts
// (serialization failure, deadlock) with a short linear backoff. Exhaustion
// surfaces as Conflict so the caller can retry the whole request.
func withRetry(ctx context.Context, op string, fn func() error) error {
	var err error
	for attempt := 1; attempt <= maxWriteAttempts; attempt++ {
		err = fn()
		if err == nil || !isTransient(err) {
			return err
		}
		logger.Warn("Transient write conflict, retrying", "op", op, "attempt", attempt, "error", err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * 25 * time.Millisecond):
		}
	}
	return fmt.Errorf("%w: %s did not commit after %d attempts: %v", domain.ErrConflict, op, maxWriteAttempts, err)
}

func isTransient(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	// 40001 serialization_failure, 40P01 deadlock_detected
	return pqErr.Code == "40001" || pqErr.Code == "40P01"
}
