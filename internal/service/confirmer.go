package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"

	"github.com/fanforge/govledger-adapter/pkg/batcher"
)

const (
	defaultConfirmTimeout = 30 * time.Second
	defaultPollInterval   = 2 * time.Second

	// The status RPC accepts at most 256 signatures per call.
	maxSignaturesPerPoll = 256

	// Ceiling on poll calls per second, reached only when size-triggered
	// flushes pile up on top of the interval ticks.
	pollRateLimit = 10
)

// waiter is one in-flight confirmation: a signature, its deadline and the
// channel its terminal outcome is delivered on.
type waiter struct {
	sig      solana.Signature
	deadline time.Time
	done     chan error
}

// Confirmer resolves submitted signatures by polling their statuses in
// batches. One poll serves every in-flight waiter; unresolved signatures
// stay queued until they confirm, fail or run out their deadline.
type Confirmer struct {
	logger  *zap.Logger
	client  LedgerClient
	metrics ConfirmerMetrics
	timeout time.Duration
	target  rpc.ConfirmationStatusType
	batch   *batcher.Batcher[*waiter]
}

// NewConfirmer builds the poller. Non-positive timeout or pollInterval fall
// back to 30s and 2s.
func NewConfirmer(
	client LedgerClient,
	commitment rpc.CommitmentType,
	timeout time.Duration,
	pollInterval time.Duration,
	metrics ConfirmerMetrics,
	logger *zap.Logger,
) (*Confirmer, error) {
	if client == nil {
		return nil, errors.New("ledger client is required")
	}
	if metrics == nil {
		return nil, errors.New("confirmer metrics is required")
	}
	if timeout <= 0 {
		timeout = defaultConfirmTimeout
	}
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}

	c := &Confirmer{
		logger:  logger,
		client:  client,
		metrics: metrics,
		timeout: timeout,
		target:  confirmationTarget(commitment),
	}
	c.batch = batcher.New(logger, c.poll, maxSignaturesPerPoll, pollInterval, pollRateLimit)
	return c, nil
}

// Start begins the background polling loop.
func (c *Confirmer) Start(ctx context.Context) {
	c.batch.Start(ctx)
}

// Stop stops the background polling loop.
func (c *Confirmer) Stop() {
	c.batch.Stop()
}

// Wait blocks until the signature reaches the target commitment, fails on
// the ledger, or exceeds the wait ceiling. A ceiling overrun returns a
// timeout error the retry classifier treats as transient.
func (c *Confirmer) Wait(ctx context.Context, sig solana.Signature) error {
	w := &waiter{
		sig:      sig,
		deadline: time.Now().Add(c.timeout),
		done:     make(chan error, 1),
	}
	if err := c.batch.Add(ctx, w); err != nil {
		return fmt.Errorf("enqueue confirmation wait: %w", err)
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-w.done:
		return err
	}
}

// poll is the batch flush callback: one status query for the whole buffer.
// Waiters without a terminal outcome are retained for the next flush.
func (c *Confirmer) poll(ctx context.Context, waiters []*waiter) ([]*waiter, error) {
	sigs := make([]solana.Signature, len(waiters))
	for i, w := range waiters {
		sigs[i] = w.sig
	}

	started := time.Now()
	out, err := c.client.GetSignatureStatuses(ctx, sigs...)
	c.metrics.ObservePoll(err, len(sigs), started)
	if err != nil {
		return c.expire(waiters), fmt.Errorf("get signature statuses: %w", err)
	}

	retained := waiters[:0]
	for i, w := range waiters {
		var st *rpc.SignatureStatusesResult
		if out != nil && i < len(out.Value) {
			st = out.Value[i]
		}

		switch {
		case st != nil && st.Err != nil:
			c.metrics.ObserveOutcome("failed")
			w.done <- fmt.Errorf("transaction %s failed on ledger: %v", w.sig, st.Err)

		case st != nil && confirmationRank(st.ConfirmationStatus) >= confirmationRank(c.target):
			c.metrics.ObserveOutcome("confirmed")
			w.done <- nil

		default:
			if time.Now().After(w.deadline) {
				c.metrics.ObserveOutcome("timeout")
				w.done <- fmt.Errorf("confirmation timed out for %s", w.sig)
				continue
			}
			retained = append(retained, w)
		}
	}
	return retained, nil
}

// expire drops only the waiters that ran out their deadline, keeping the
// rest queued so a transient poll failure does not lose them.
func (c *Confirmer) expire(waiters []*waiter) []*waiter {
	retained := waiters[:0]
	now := time.Now()
	for _, w := range waiters {
		if now.After(w.deadline) {
			c.metrics.ObserveOutcome("timeout")
			w.done <- fmt.Errorf("confirmation timed out for %s", w.sig)
			continue
		}
		retained = append(retained, w)
	}
	return retained
}

func confirmationTarget(commitment rpc.CommitmentType) rpc.ConfirmationStatusType {
	switch commitment {
	case rpc.CommitmentProcessed:
		return rpc.ConfirmationStatusProcessed
	case rpc.CommitmentFinalized:
		return rpc.ConfirmationStatusFinalized
	default:
		return rpc.ConfirmationStatusConfirmed
	}
}

func confirmationRank(status rpc.ConfirmationStatusType) int {
	switch status {
	case rpc.ConfirmationStatusProcessed:
		return 1
	case rpc.ConfirmationStatusConfirmed:
		return 2
	case rpc.ConfirmationStatusFinalized:
		return 3
	}
	return 0
}
