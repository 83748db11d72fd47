// Package rent caches the minimum reserve balance required to keep an
// account of a given size alive on the ledger.
package rent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"
)

// Cache memoizes reserve amounts by account byte size. Entries never expire:
// the minimum reserve for a given size does not change during normal
// operation, so the cache is append-only for the process lifetime.
type Cache struct {
	logger     *zap.Logger
	fetcher    BalanceFetcher
	metrics    Metrics
	commitment rpc.CommitmentType

	mu      sync.Mutex
	entries map[uint64]uint64
}

// NewCache builds an empty cache around the fetcher.
func NewCache(fetcher BalanceFetcher, commitment rpc.CommitmentType, metrics Metrics, logger *zap.Logger) (*Cache, error) {
	if fetcher == nil {
		return nil, errors.New("rent balance fetcher is required")
	}
	if metrics == nil {
		return nil, errors.New("rent metrics is required")
	}

	return &Cache{
		logger:     logger,
		fetcher:    fetcher,
		metrics:    metrics,
		commitment: commitment,
		entries:    make(map[uint64]uint64),
	}, nil
}

// ReserveFor returns the minimum reserve for the size, querying the ledger
// once per distinct size. Concurrent first requests for the same size may
// both fetch; they overwrite each other with the same value.
func (c *Cache) ReserveFor(ctx context.Context, sizeBytes uint64) (uint64, error) {
	c.mu.Lock()
	amount, ok := c.entries[sizeBytes]
	c.mu.Unlock()
	c.metrics.ObserveLookup(ok)
	if ok {
		return amount, nil
	}

	started := time.Now()
	amount, err := c.fetcher.GetMinimumBalanceForRentExemption(ctx, sizeBytes, c.commitment)
	c.metrics.ObserveFetch(err, started)
	if err != nil {
		return 0, fmt.Errorf("fetch minimum balance for size %d: %w", sizeBytes, err)
	}

	c.mu.Lock()
	c.entries[sizeBytes] = amount
	c.mu.Unlock()

	c.logger.Debug("reserve amount cached",
		zap.Uint64("size_bytes", sizeBytes),
		zap.Uint64("lamports", amount),
	)
	return amount, nil
}
