package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"

	"github.com/fanforge/govledger-adapter/internal/faults"
	"github.com/fanforge/govledger-adapter/internal/model"
	"github.com/fanforge/govledger-adapter/pkg/workerpool"
)

const defaultBatchWorkers = 4

// Recorder is the inbound facade: it applies the domain validation rules and
// hands each accepted event to the submitter, one ledger transaction per
// event. It keeps no state about recorded entities; lifecycle checks run
// against the caller-supplied current status.
type Recorder struct {
	logger    *zap.Logger
	submitter EventRecorder
	client    LedgerClient
	metrics   BatchMetrics
	workers   int
}

// NewRecorder builds the facade. A non-positive workers count falls back
// to 4.
func NewRecorder(submitter EventRecorder, client LedgerClient, workers int, metrics BatchMetrics, logger *zap.Logger) (*Recorder, error) {
	if submitter == nil {
		return nil, errors.New("submitter is required")
	}
	if client == nil {
		return nil, errors.New("ledger client is required")
	}
	if metrics == nil {
		return nil, errors.New("batch metrics is required")
	}
	if workers <= 0 {
		workers = defaultBatchWorkers
	}

	return &Recorder{
		logger:    logger,
		submitter: submitter,
		client:    client,
		metrics:   metrics,
		workers:   workers,
	}, nil
}

// CreateOrganization records a new organization.
func (r *Recorder) CreateOrganization(ctx context.Context, event model.OrganizationCreated) (*model.RecordResult, error) {
	if event.Name == "" {
		return nil, faults.NewValidation("name", "must not be empty")
	}
	return r.submitter.Record(ctx, event)
}

// CreateShareType records a new class of shares.
func (r *Recorder) CreateShareType(ctx context.Context, event model.ShareTypeCreated) (*model.RecordResult, error) {
	if event.Name == "" {
		return nil, faults.NewValidation("name", "must not be empty")
	}
	if event.Symbol == "" {
		return nil, faults.NewValidation("symbol", "must not be empty")
	}
	if event.TotalShares == 0 {
		return nil, faults.NewValidation("total_shares", "must be positive")
	}
	return r.submitter.Record(ctx, event)
}

// RecordShareIssuance records shares granted to a member.
func (r *Recorder) RecordShareIssuance(ctx context.Context, event model.ShareIssuanceRecorded) (*model.RecordResult, error) {
	if event.MemberRef == "" {
		return nil, faults.NewValidation("member_ref", "must not be empty")
	}
	if event.Quantity == 0 {
		return nil, faults.NewValidation("quantity", "must be positive")
	}
	return r.submitter.Record(ctx, event)
}

// RecordShareIssuanceBatch records many issuances through a bounded worker
// pool. Every input gets a result at its own index; one item failing does
// not stop the others.
func (r *Recorder) RecordShareIssuanceBatch(ctx context.Context, events []model.ShareIssuanceRecorded) []model.BatchItemResult {
	started := time.Now()

	results := workerpool.ProcessCollect(ctx, r.workers, events,
		func(ctx context.Context, event model.ShareIssuanceRecorded) (*model.RecordResult, error) {
			return r.RecordShareIssuance(ctx, event)
		})

	out := make([]model.BatchItemResult, len(results))
	var firstErr error
	failed := 0
	for i, res := range results {
		out[i] = model.BatchItemResult{Index: res.Index, Result: res.Value, Err: res.Err}
		if res.Err != nil {
			failed++
			if firstErr == nil {
				firstErr = res.Err
			}
		}
	}

	r.metrics.ObserveRun(firstErr, len(events), started)
	if failed > 0 {
		r.logger.Warn("batch issuance completed with failures",
			zap.Int("items", len(events)),
			zap.Int("failed", failed),
		)
	}
	return out
}

// CreateProposal records a governance proposal in its draft state.
func (r *Recorder) CreateProposal(ctx context.Context, event model.ProposalCreated) (*model.RecordResult, error) {
	if event.Title == "" {
		return nil, faults.NewValidation("title", "must not be empty")
	}
	if event.ContentHash == "" {
		return nil, faults.NewValidation("content_hash", "must not be empty")
	}
	if event.StartAt != nil && event.EndAt != nil && *event.StartAt >= *event.EndAt {
		return nil, faults.NewValidation("window", "start must precede end")
	}
	if event.QuorumBps != nil && *event.QuorumBps > model.MaxQuorumBps {
		return nil, faults.NewValidation("quorum_bps", "must not exceed %d", model.MaxQuorumBps)
	}
	return r.submitter.Record(ctx, event)
}

// UpdateProposalStatus records a lifecycle transition. The caller supplies
// the proposal's current status; only draft to open and open to closed are
// accepted here, finalization has its own operation.
func (r *Recorder) UpdateProposalStatus(ctx context.Context, current model.ProposalStatus, event model.ProposalStatusChanged) (*model.RecordResult, error) {
	if !current.Valid() {
		return nil, faults.NewValidation("current_status", "unknown status %q", current)
	}
	if !event.NewStatus.Valid() {
		return nil, faults.NewValidation("new_status", "unknown status %q", event.NewStatus)
	}
	if !current.CanTransitionTo(event.NewStatus) {
		return nil, faults.NewValidation("new_status", "cannot transition from %s to %s", current, event.NewStatus)
	}
	return r.submitter.Record(ctx, event)
}

// FinalizeProposal records the terminal transition of a closed proposal.
func (r *Recorder) FinalizeProposal(ctx context.Context, current model.ProposalStatus, event model.ProposalFinalized) (*model.RecordResult, error) {
	if current != model.ProposalStatusClosed {
		return nil, faults.NewValidation("current_status", "only a closed proposal can be finalized, got %q", current)
	}
	return r.submitter.Record(ctx, event)
}

// RecordVote records a single ballot.
func (r *Recorder) RecordVote(ctx context.Context, event model.VoteCast) (*model.RecordResult, error) {
	if event.OptionID == "" {
		return nil, faults.NewValidation("option_id", "must not be empty")
	}
	if event.VoterRef == "" {
		return nil, faults.NewValidation("voter_ref", "must not be empty")
	}
	if event.VotingPower == 0 {
		return nil, faults.NewValidation("voting_power", "must be positive")
	}
	return r.submitter.Record(ctx, event)
}

// CommitProposalResults records the tallied outcome of a closed proposal.
func (r *Recorder) CommitProposalResults(ctx context.Context, current model.ProposalStatus, event model.ResultsCommitted) (*model.RecordResult, error) {
	if current != model.ProposalStatusClosed {
		return nil, faults.NewValidation("current_status", "results can only be committed on a closed proposal, got %q", current)
	}
	if event.ResultsHash == "" {
		return nil, faults.NewValidation("results_hash", "must not be empty")
	}
	return r.submitter.Record(ctx, event)
}

// TransactionStatus looks up the ledger-side state of a signature. An
// unknown signature is not an error, it reports the unknown state.
func (r *Recorder) TransactionStatus(ctx context.Context, signature string) (*model.TxStatus, error) {
	sig, err := solana.SignatureFromBase58(signature)
	if err != nil {
		return nil, faults.NewValidation("signature", "malformed signature: %v", err)
	}

	out, err := r.client.GetSignatureStatuses(ctx, sig)
	if err != nil {
		return nil, fmt.Errorf("get signature status: %w", err)
	}

	status := &model.TxStatus{Signature: signature, State: model.TxStateUnknown}
	if out == nil || len(out.Value) == 0 || out.Value[0] == nil {
		return status, nil
	}

	st := out.Value[0]
	status.Slot = st.Slot
	status.Confirmations = st.Confirmations
	switch {
	case st.Err != nil:
		status.State = model.TxStateFailed
		status.Err = fmt.Sprintf("%v", st.Err)
	case st.ConfirmationStatus == rpc.ConfirmationStatusFinalized:
		status.State = model.TxStateFinalized
	case st.ConfirmationStatus == rpc.ConfirmationStatusConfirmed:
		status.State = model.TxStateConfirmed
	case st.ConfirmationStatus == rpc.ConfirmationStatusProcessed:
		status.State = model.TxStateProcessed
	}
	return status, nil
}
