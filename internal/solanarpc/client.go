// Package solanarpc wraps the ledger RPC client with metrics
// instrumentation, client-side rate limiting and a replaceable connection
// handle.
package solanarpc

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/jsonrpc"
	"go.uber.org/ratelimit"
)

// Client is an instrumented ledger RPC client. The underlying handle is
// swapped wholesale on reconnect; calls already running keep the handle they
// started with.
type Client struct {
	endpoint string
	timeout  time.Duration
	handle   atomic.Pointer[rpc.Client]
	metrics  Metrics
	rl       ratelimit.Limiter
}

// NewClient constructs an instrumented client against the endpoint. A
// non-positive rps disables client-side rate limiting, a non-positive
// timeout leaves requests unbounded.
func NewClient(endpoint string, rps int, timeout time.Duration, metrics Metrics) *Client {
	c := &Client{
		endpoint: endpoint,
		timeout:  timeout,
		metrics:  metrics,
	}
	if rps > 0 {
		c.rl = ratelimit.New(rps)
	} else {
		c.rl = ratelimit.NewUnlimited()
	}
	c.handle.Store(c.newHandle())
	return c
}

func (c *Client) newHandle() *rpc.Client {
	if c.timeout <= 0 {
		return rpc.New(c.endpoint)
	}
	return rpc.NewWithCustomRPCClient(jsonrpc.NewClientWithOpts(c.endpoint, &jsonrpc.RPCClientOpts{
		HTTPClient: &http.Client{Timeout: c.timeout},
	}))
}

// Endpoint returns the RPC endpoint the client talks to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Replace swaps the connection handle for a fresh one against the same
// endpoint.
func (c *Client) Replace() {
	c.handle.Store(c.newHandle())
}

func (c *Client) get() *rpc.Client {
	c.rl.Take()
	return c.handle.Load()
}

// SendTransaction broadcasts a signed transaction.
func (c *Client) SendTransaction(ctx context.Context, tx *solana.Transaction, opts rpc.TransactionOpts) (sig solana.Signature, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("send_transaction", err, started)
	}()
	return c.get().SendTransactionWithOpts(ctx, tx, opts)
}

// GetLatestBlockhash returns the most recent blockhash at the commitment.
func (c *Client) GetLatestBlockhash(ctx context.Context, commitment rpc.CommitmentType) (out *rpc.GetLatestBlockhashResult, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_latest_blockhash", err, started)
	}()
	return c.get().GetLatestBlockhash(ctx, commitment)
}

// GetSignatureStatuses returns the processing status of the signatures.
func (c *Client) GetSignatureStatuses(ctx context.Context, sigs ...solana.Signature) (out *rpc.GetSignatureStatusesResult, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_signature_statuses", err, started)
	}()
	return c.get().GetSignatureStatuses(ctx, false, sigs...)
}

// GetMinimumBalanceForRentExemption returns the minimum balance that keeps
// an account of the given size alive.
func (c *Client) GetMinimumBalanceForRentExemption(ctx context.Context, sizeBytes uint64, commitment rpc.CommitmentType) (lamports uint64, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_minimum_balance_for_rent_exemption", err, started)
	}()
	return c.get().GetMinimumBalanceForRentExemption(ctx, sizeBytes, commitment)
}

// GetSlot returns the current slot at the commitment.
func (c *Client) GetSlot(ctx context.Context, commitment rpc.CommitmentType) (slot uint64, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_slot", err, started)
	}()
	return c.get().GetSlot(ctx, commitment)
}

// GetHealth reports the queried node's own health verdict.
func (c *Client) GetHealth(ctx context.Context) (out string, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_health", err, started)
	}()
	return c.get().GetHealth(ctx)
}

// GetVersion returns the node's software version.
func (c *Client) GetVersion(ctx context.Context) (out *rpc.GetVersionResult, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_version", err, started)
	}()
	return c.get().GetVersion(ctx)
}
