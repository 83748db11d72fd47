package service

import (
	"context"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/fanforge/govledger-adapter/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// LedgerClient is the slice of the RPC surface the services consume.
	LedgerClient interface {
		SendTransaction(ctx context.Context, tx *solana.Transaction, opts rpc.TransactionOpts) (solana.Signature, error)
		GetLatestBlockhash(ctx context.Context, commitment rpc.CommitmentType) (*rpc.GetLatestBlockhashResult, error)
		GetSignatureStatuses(ctx context.Context, sigs ...solana.Signature) (*rpc.GetSignatureStatusesResult, error)
		GetSlot(ctx context.Context, commitment rpc.CommitmentType) (uint64, error)
		GetHealth(ctx context.Context) (string, error)
		GetVersion(ctx context.Context) (*rpc.GetVersionResult, error)
		Replace()
		Endpoint() string
	}

	// Reserver prices the reserve that keeps an account of the given byte
	// size alive.
	Reserver interface {
		ReserveFor(ctx context.Context, sizeBytes uint64) (uint64, error)
	}

	// Retrier runs fn under the bounded backoff policy.
	Retrier interface {
		Do(ctx context.Context, operation string, fn func(context.Context) error) error
	}

	// ConfirmationWaiter blocks until the signature reaches the configured
	// commitment, fails on the ledger, or exceeds the wait ceiling.
	ConfirmationWaiter interface {
		Wait(ctx context.Context, sig solana.Signature) error
	}

	// EventRecorder submits one domain event as a ledger transaction and
	// waits for its confirmation.
	EventRecorder interface {
		Record(ctx context.Context, event any) (*model.RecordResult, error)
	}

	SubmitterMetrics interface {
		ObserveRecord(kind model.RecordKind, err error, started time.Time)
		ObservePayloadSize(kind model.RecordKind, sizeBytes int)
	}

	ConfirmerMetrics interface {
		ObservePoll(err error, signatures int, started time.Time)
		ObserveOutcome(outcome string)
	}

	HealthMetrics interface {
		ObserveProbe(err error, started time.Time)
		SetUp(healthy bool)
		SetSlot(slot uint64)
		IncReconnect()
	}

	BatchMetrics interface {
		ObserveRun(err error, items int, started time.Time)
	}
)
