// Package retry runs short ledger operations under a bounded exponential
// backoff policy, retrying only failures classified as transient.
package retry

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/fanforge/govledger-adapter/internal/clock"
	"github.com/fanforge/govledger-adapter/internal/faults"
)

const (
	defaultMaxAttempts = 4
	defaultBaseDelay   = time.Second
)

// Executor retries operations with exponential backoff. The executor sleeps
// only the calling context between attempts; unrelated operations keep
// running.
type Executor struct {
	logger      *zap.Logger
	metrics     Metrics
	sleep       clock.SleepFunc
	maxAttempts int
	baseDelay   time.Duration
}

// NewExecutor builds an Executor. Non-positive maxAttempts or baseDelay fall
// back to the defaults of 4 attempts and a 1s base delay.
func NewExecutor(maxAttempts int, baseDelay time.Duration, metrics Metrics, logger *zap.Logger) (*Executor, error) {
	if metrics == nil {
		return nil, errors.New("retry metrics is required")
	}
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if baseDelay <= 0 {
		baseDelay = defaultBaseDelay
	}

	return &Executor{
		logger:      logger,
		metrics:     metrics,
		sleep:       clock.SleepWithContext,
		maxAttempts: maxAttempts,
		baseDelay:   baseDelay,
	}, nil
}

// Do runs fn until it succeeds, fails fatally, or the attempt budget runs
// out. Exhaustion returns a *faults.OperationError wrapping the last attempt
// error. Fatal errors and context cancellation surface as-is.
func (e *Executor) Do(ctx context.Context, operation string, fn func(context.Context) error) error {
	started := time.Now()

	var lastErr error
	for attempt := 0; attempt < e.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			e.metrics.ObserveOperation(operation, err, attempt, started)
			return err
		}

		err := fn(ctx)
		e.metrics.ObserveAttempt(operation, err)
		if err == nil {
			e.metrics.ObserveOperation(operation, nil, attempt+1, started)
			return nil
		}
		lastErr = err

		retryable := Classify(err)
		e.metrics.ObserveClassification(operation, retryable)
		if !retryable {
			e.logger.Error("operation failed fatally",
				zap.String("operation", operation),
				zap.Int("attempt", attempt+1),
				zap.Error(err),
			)
			e.metrics.ObserveOperation(operation, err, attempt+1, started)
			return err
		}

		if attempt+1 == e.maxAttempts {
			break
		}

		delay := e.baseDelay << attempt
		e.logger.Warn("attempt failed, backing off",
			zap.String("operation", operation),
			zap.Int("attempt", attempt+1),
			zap.Duration("sleep", delay),
			zap.Error(err),
		)
		if sleepErr := e.sleep(ctx, delay); sleepErr != nil {
			e.metrics.ObserveOperation(operation, sleepErr, attempt+1, started)
			return sleepErr
		}
	}

	opErr := &faults.OperationError{Op: operation, Attempts: e.maxAttempts, Err: lastErr}
	e.metrics.ObserveOperation(operation, opErr, e.maxAttempts, started)
	return opErr
}
