package transport

import (
	"context"
	"time"

	"github.com/fanforge/govledger-adapter/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// RecorderService is the recording facade the HTTP surface fronts.
	RecorderService interface {
		CreateOrganization(ctx context.Context, event model.OrganizationCreated) (*model.RecordResult, error)
		CreateShareType(ctx context.Context, event model.ShareTypeCreated) (*model.RecordResult, error)
		RecordShareIssuance(ctx context.Context, event model.ShareIssuanceRecorded) (*model.RecordResult, error)
		RecordShareIssuanceBatch(ctx context.Context, events []model.ShareIssuanceRecorded) []model.BatchItemResult
		CreateProposal(ctx context.Context, event model.ProposalCreated) (*model.RecordResult, error)
		UpdateProposalStatus(ctx context.Context, current model.ProposalStatus, event model.ProposalStatusChanged) (*model.RecordResult, error)
		FinalizeProposal(ctx context.Context, current model.ProposalStatus, event model.ProposalFinalized) (*model.RecordResult, error)
		RecordVote(ctx context.Context, event model.VoteCast) (*model.RecordResult, error)
		CommitProposalResults(ctx context.Context, current model.ProposalStatus, event model.ResultsCommitted) (*model.RecordResult, error)
		TransactionStatus(ctx context.Context, signature string) (*model.TxStatus, error)
	}

	// HealthReporter exposes the monitored state of the ledger endpoint.
	HealthReporter interface {
		Status() model.HealthStatus
	}

	// HandlerMetrics observes handled HTTP requests.
	HandlerMetrics interface {
		ObserveRequest(route, method string, status int, started time.Time)
	}
)
