package service

import (
	"github.com/google/uuid"

	"github.com/fanforge/govledger-adapter/internal/model"
)

func (s *LedgerSuite) TestRecordOrganization() {
	event := model.OrganizationCreated{
		OrganizationID: uuid.NewString(),
		Name:           "Harbor Street Supporters Trust",
	}

	first, err := s.recorder.CreateOrganization(s.testCtx, event)
	s.Require().NoError(err)
	s.Require().NotEmpty(first.Signature)
	s.Require().NotEmpty(first.Address)
	s.requireSettled(first.Signature)

	reserve, err := s.reserver.ReserveFor(s.testCtx, model.RecordOrganization.AccountSize())
	s.Require().NoError(err)
	s.Require().Equal(reserve, s.ledgerBalance(first.Address))

	// Re-recording the same event lands on the same address with a fresh
	// transaction, so the reserve accumulates instead of duplicating records.
	second, err := s.recorder.CreateOrganization(s.testCtx, event)
	s.Require().NoError(err)
	s.requireSettled(second.Signature)

	s.Require().Equal(first.Address, second.Address)
	s.Require().NotEqual(first.Signature, second.Signature)
	s.Require().Equal(2*reserve, s.ledgerBalance(second.Address))
}
