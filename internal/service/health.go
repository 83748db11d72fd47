package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"

	"github.com/fanforge/govledger-adapter/internal/clock"
	"github.com/fanforge/govledger-adapter/internal/model"
)

const defaultHealthInterval = 30 * time.Second

// Monitor probes the ledger endpoint on an interval. On a transition into
// Unhealthy it replaces the connection handle wholesale; calls already in
// flight finish on the handle they started with.
type Monitor struct {
	logger     *zap.Logger
	client     LedgerClient
	retrier    Retrier
	metrics    HealthMetrics
	commitment rpc.CommitmentType
	interval   time.Duration
	sleep      clock.SleepFunc

	mu    sync.Mutex
	state model.HealthStatus
}

// NewMonitor builds the health monitor. A non-positive interval falls back
// to 30s. keyLoaded reports whether the signing key decoded at startup.
func NewMonitor(
	client LedgerClient,
	retrier Retrier,
	cluster model.Cluster,
	commitment rpc.CommitmentType,
	interval time.Duration,
	keyLoaded bool,
	metrics HealthMetrics,
	logger *zap.Logger,
) (*Monitor, error) {
	if client == nil {
		return nil, errors.New("ledger client is required")
	}
	if retrier == nil {
		return nil, errors.New("retrier is required")
	}
	if metrics == nil {
		return nil, errors.New("health metrics is required")
	}
	if interval <= 0 {
		interval = defaultHealthInterval
	}

	return &Monitor{
		logger:     logger,
		client:     client,
		retrier:    retrier,
		metrics:    metrics,
		commitment: commitment,
		interval:   interval,
		sleep:      clock.SleepWithContext,
		state: model.HealthStatus{
			Cluster:   cluster,
			Endpoint:  client.Endpoint(),
			KeyLoaded: keyLoaded,
		},
	}, nil
}

// Run probes immediately and then on every interval until the context ends.
func (m *Monitor) Run(ctx context.Context) error {
	m.probe(ctx)
	for {
		if err := m.sleep(ctx, m.interval); err != nil {
			return err
		}
		m.probe(ctx)
	}
}

// Status returns the latest snapshot for the operational health surface.
func (m *Monitor) Status() model.HealthStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Monitor) probe(ctx context.Context) {
	started := time.Now()

	var slot uint64
	err := m.retrier.Do(ctx, "health_probe", func(ctx context.Context) error {
		status, err := m.client.GetHealth(ctx)
		if err != nil {
			return fmt.Errorf("get health: %w", err)
		}
		if status != rpc.HealthOk {
			return fmt.Errorf("node reports %s", status)
		}
		slot, err = m.client.GetSlot(ctx, m.commitment)
		if err != nil {
			return fmt.Errorf("get slot: %w", err)
		}
		return nil
	})
	m.metrics.ObserveProbe(err, started)

	// A probe cut short by shutdown says nothing about the endpoint.
	if ctx.Err() != nil {
		return
	}

	if err != nil {
		m.markUnhealthy(err)
		return
	}
	m.markHealthy(ctx, slot)
}

func (m *Monitor) markHealthy(ctx context.Context, slot uint64) {
	m.mu.Lock()
	wasHealthy := m.state.Healthy
	version := m.state.Version
	m.mu.Unlock()

	if version == "" {
		if out, err := m.client.GetVersion(ctx); err == nil {
			version = out.SolanaCore
			m.logger.Info("ledger node version",
				zap.String("endpoint", m.client.Endpoint()),
				zap.String("version", version),
			)
		}
	}

	m.mu.Lock()
	m.state.Healthy = true
	m.state.Slot = slot
	m.state.Version = version
	m.state.CheckedAt = time.Now()
	m.state.LastError = ""
	m.mu.Unlock()

	m.metrics.SetUp(true)
	m.metrics.SetSlot(slot)

	if !wasHealthy {
		m.logger.Info("ledger endpoint healthy",
			zap.String("endpoint", m.client.Endpoint()),
			zap.Uint64("slot", slot),
		)
	}
}

func (m *Monitor) markUnhealthy(probeErr error) {
	m.mu.Lock()
	wasHealthy := m.state.Healthy
	m.state.Healthy = false
	m.state.CheckedAt = time.Now()
	m.state.LastError = probeErr.Error()
	m.mu.Unlock()

	m.metrics.SetUp(false)

	if wasHealthy {
		m.logger.Warn("ledger endpoint unhealthy, replacing connection",
			zap.String("endpoint", m.client.Endpoint()),
			zap.Error(probeErr),
		)
		m.client.Replace()
		m.metrics.IncReconnect()
	}
}
