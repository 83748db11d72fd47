package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"

	"github.com/fanforge/govledger-adapter/internal/faults"
	"github.com/fanforge/govledger-adapter/internal/memo"
	"github.com/fanforge/govledger-adapter/internal/model"
	"github.com/fanforge/govledger-adapter/internal/pda"
)

// SubmitterConfig carries the signing and submission parameters.
type SubmitterConfig struct {
	Signer        solana.PrivateKey
	MemoProgram   solana.PublicKey
	Commitment    rpc.CommitmentType
	SkipPreflight bool
}

// Submitter turns one domain event into one funded, memo-carrying ledger
// transaction and sees it through to confirmation. The derived address is
// deterministic, so re-recording the same event funds the same address
// instead of creating a duplicate.
type Submitter struct {
	logger   *zap.Logger
	client   LedgerClient
	deriver  *pda.Deriver
	reserver Reserver
	retrier  Retrier
	waiter   ConfirmationWaiter
	metrics  SubmitterMetrics
	cfg      SubmitterConfig
}

// NewSubmitter builds the submitter with the provided dependencies.
func NewSubmitter(
	client LedgerClient,
	deriver *pda.Deriver,
	reserver Reserver,
	retrier Retrier,
	waiter ConfirmationWaiter,
	cfg SubmitterConfig,
	metrics SubmitterMetrics,
	logger *zap.Logger,
) (*Submitter, error) {
	if client == nil {
		return nil, errors.New("ledger client is required")
	}
	if deriver == nil {
		return nil, errors.New("address deriver is required")
	}
	if reserver == nil {
		return nil, errors.New("reserver is required")
	}
	if retrier == nil {
		return nil, errors.New("retrier is required")
	}
	if waiter == nil {
		return nil, errors.New("confirmation waiter is required")
	}
	if metrics == nil {
		return nil, errors.New("submitter metrics is required")
	}
	if len(cfg.Signer) == 0 {
		return nil, errors.New("signer key is required")
	}
	if cfg.MemoProgram.IsZero() {
		return nil, errors.New("memo program id is required")
	}

	return &Submitter{
		logger:   logger,
		client:   client,
		deriver:  deriver,
		reserver: reserver,
		retrier:  retrier,
		waiter:   waiter,
		metrics:  metrics,
		cfg:      cfg,
	}, nil
}

// classifyEvent maps a domain event onto its record kind, the identifier
// that seeds its address, and the account byte size to reserve. Lifecycle
// events on an already funded record reserve at the zero-size floor.
func classifyEvent(event any) (model.RecordKind, string, uint64, error) {
	switch e := event.(type) {
	case model.OrganizationCreated:
		return model.RecordOrganization, e.OrganizationID, model.RecordOrganization.AccountSize(), nil
	case model.ShareTypeCreated:
		return model.RecordShareType, e.ShareTypeID, 0, nil
	case model.ShareIssuanceRecorded:
		return model.RecordShareIssuance, e.IssuanceID, 0, nil
	case model.ProposalCreated:
		return model.RecordProposal, e.ProposalID, model.RecordProposal.AccountSize(), nil
	case model.ProposalStatusChanged:
		return model.RecordProposal, e.ProposalID, 0, nil
	case model.VoteCast:
		return model.RecordVote, e.VoteID, 0, nil
	case model.ResultsCommitted:
		return model.RecordProposalResults, e.ProposalID, model.RecordProposalResults.AccountSize(), nil
	case model.ProposalFinalized:
		return model.RecordProposal, e.ProposalID, 0, nil
	}
	return "", "", 0, faults.NewValidation("event", "unsupported event type %T", event)
}

// Record validates and encodes the event, then signs, broadcasts and
// confirms the transaction under the retry policy. Validation failures
// surface before any network call.
func (s *Submitter) Record(ctx context.Context, event any) (result *model.RecordResult, err error) {
	started := time.Now()

	kind, domainID, sizeBytes, err := classifyEvent(event)
	if err != nil {
		return nil, err
	}
	defer func() {
		s.metrics.ObserveRecord(kind, err, started)
	}()

	payload, err := memo.Encode(event)
	if err != nil {
		return nil, err
	}
	s.metrics.ObservePayloadSize(kind, len(payload))

	address, _, err := s.deriver.Derive(kind, domainID)
	if err != nil {
		return nil, err
	}

	reserve, err := s.reserver.ReserveFor(ctx, sizeBytes)
	if err != nil {
		return nil, err
	}

	signerKey := s.cfg.Signer.PublicKey()
	instructions := []solana.Instruction{
		system.NewTransferInstruction(reserve, signerKey, address).Build(),
		solana.NewInstruction(s.cfg.MemoProgram, solana.AccountMetaSlice{
			solana.NewAccountMeta(signerKey, false, true),
		}, payload),
	}

	var sig solana.Signature
	err = s.retrier.Do(ctx, "record_"+string(kind), func(ctx context.Context) error {
		recent, err := s.client.GetLatestBlockhash(ctx, s.cfg.Commitment)
		if err != nil {
			return fmt.Errorf("get latest blockhash: %w", err)
		}

		tx, err := solana.NewTransaction(instructions, recent.Value.Blockhash, solana.TransactionPayer(signerKey))
		if err != nil {
			return fmt.Errorf("build transaction: %w", err)
		}

		if _, err := tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
			if key.Equals(signerKey) {
				return &s.cfg.Signer
			}
			return nil
		}); err != nil {
			return fmt.Errorf("sign transaction: %w", err)
		}

		sig, err = s.client.SendTransaction(ctx, tx, rpc.TransactionOpts{
			SkipPreflight:       s.cfg.SkipPreflight,
			PreflightCommitment: s.cfg.Commitment,
		})
		if err != nil {
			return fmt.Errorf("send transaction: %w", err)
		}

		return s.waiter.Wait(ctx, sig)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("event recorded",
		zap.String("kind", string(kind)),
		zap.String("signature", sig.String()),
		zap.String("address", address.String()),
	)

	return &model.RecordResult{
		Signature: sig.String(),
		Address:   address.String(),
	}, nil
}
