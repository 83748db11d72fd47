package rent

import (
	"context"
	"time"

	"github.com/gagliardetto/solana-go/rpc"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// BalanceFetcher answers minimum balance queries against the ledger.
	BalanceFetcher interface {
		GetMinimumBalanceForRentExemption(ctx context.Context, sizeBytes uint64, commitment rpc.CommitmentType) (uint64, error)
	}

	// Metrics observes cache lookups and miss-path fetches.
	Metrics interface {
		ObserveLookup(hit bool)
		ObserveFetch(err error, started time.Time)
	}
)
