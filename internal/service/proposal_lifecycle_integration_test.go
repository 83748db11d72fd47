package service

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fanforge/govledger-adapter/internal/model"
)

func (s *LedgerSuite) TestProposalLifecycle() {
	orgID := uuid.NewString()
	proposalID := uuid.NewString()

	_, err := s.recorder.CreateOrganization(s.testCtx, model.OrganizationCreated{
		OrganizationID: orgID,
		Name:           "Northside Rowing Collective",
	})
	s.Require().NoError(err)

	startAt := time.Now().Unix()
	endAt := time.Now().Add(time.Hour).Unix()
	quorum := uint16(2500)
	created, err := s.recorder.CreateProposal(s.testCtx, model.ProposalCreated{
		ProposalID:          proposalID,
		OrganizationID:      orgID,
		Title:               "Switch home kit to the 1987 colours",
		ContentHash:         strings.Repeat("4d", 32),
		StartAt:             &startAt,
		EndAt:               &endAt,
		EligibleVotingPower: 1200,
		QuorumBps:           &quorum,
	})
	s.Require().NoError(err)
	s.requireSettled(created.Signature)

	opened, err := s.recorder.UpdateProposalStatus(s.testCtx, model.ProposalStatusDraft, model.ProposalStatusChanged{
		ProposalID:     proposalID,
		OrganizationID: orgID,
		NewStatus:      model.ProposalStatusOpen,
	})
	s.Require().NoError(err)
	s.Require().Equal(created.Address, opened.Address)

	vote, err := s.recorder.RecordVote(s.testCtx, model.VoteCast{
		VoteID:         uuid.NewString(),
		ProposalID:     proposalID,
		OrganizationID: orgID,
		OptionID:       uuid.NewString(),
		VoterRef:       strings.Repeat("7e", 32),
		VotingPower:    40,
	})
	s.Require().NoError(err)
	s.requireSettled(vote.Signature)

	_, err = s.recorder.UpdateProposalStatus(s.testCtx, model.ProposalStatusOpen, model.ProposalStatusChanged{
		ProposalID:     proposalID,
		OrganizationID: orgID,
		NewStatus:      model.ProposalStatusClosed,
	})
	s.Require().NoError(err)

	results, err := s.recorder.CommitProposalResults(s.testCtx, model.ProposalStatusClosed, model.ResultsCommitted{
		ProposalID:     proposalID,
		OrganizationID: orgID,
		ResultsHash:    strings.Repeat("9c", 32),
		TotalVotesCast: 40,
		QuorumMet:      false,
	})
	s.Require().NoError(err)
	s.requireSettled(results.Signature)
	s.Require().NotEqual(created.Address, results.Address)

	finalized, err := s.recorder.FinalizeProposal(s.testCtx, model.ProposalStatusClosed, model.ProposalFinalized{
		ProposalID:     proposalID,
		OrganizationID: orgID,
	})
	s.Require().NoError(err)
	s.requireSettled(finalized.Signature)

	// Every lifecycle event anchors to the proposal record created above.
	s.Require().Equal(created.Address, finalized.Address)
}
