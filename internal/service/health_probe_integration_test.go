package service

import (
	"time"

	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"

	"github.com/fanforge/govledger-adapter/internal/metrics"
	"github.com/fanforge/govledger-adapter/internal/model"
)

func (s *LedgerSuite) TestHealthProbe() {
	monitor, err := NewMonitor(
		s.client,
		s.retrier,
		model.ClusterLocalnet,
		rpc.CommitmentConfirmed,
		time.Second,
		true,
		metrics.NewHealth(model.ClusterLocalnet),
		zap.NewNop(),
	)
	s.Require().NoError(err)

	monitor.probe(s.testCtx)

	status := monitor.Status()
	s.Require().True(status.Healthy)
	s.Require().NotZero(status.Slot)
	s.Require().NotEmpty(status.Version)
	s.Require().Equal(model.ClusterLocalnet, status.Cluster)
	s.Require().Equal(s.endpoint, status.Endpoint)
	s.Require().True(status.KeyLoaded)
	s.Require().Empty(status.LastError)
	s.Require().WithinDuration(time.Now(), status.CheckedAt, time.Minute)
}
