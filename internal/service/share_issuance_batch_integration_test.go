package service

import (
	"strings"

	"github.com/google/uuid"

	"github.com/fanforge/govledger-adapter/internal/model"
)

func (s *LedgerSuite) TestShareIssuanceBatch() {
	orgID := uuid.NewString()
	shareTypeID := uuid.NewString()

	_, err := s.recorder.CreateOrganization(s.testCtx, model.OrganizationCreated{
		OrganizationID: orgID,
		Name:           "Velodrome Members Club",
	})
	s.Require().NoError(err)

	shareType, err := s.recorder.CreateShareType(s.testCtx, model.ShareTypeCreated{
		ShareTypeID:    shareTypeID,
		OrganizationID: orgID,
		Name:           "Founding Member Share",
		Symbol:         "VELO",
		TotalShares:    50000,
	})
	s.Require().NoError(err)
	s.requireSettled(shareType.Signature)

	events := make([]model.ShareIssuanceRecorded, 3)
	for i := range events {
		events[i] = model.ShareIssuanceRecorded{
			IssuanceID:     uuid.NewString(),
			ShareTypeID:    shareTypeID,
			OrganizationID: orgID,
			MemberRef:      strings.Repeat("a1", 32),
			Quantity:       uint64(100 * (i + 1)),
		}
	}

	results := s.recorder.RecordShareIssuanceBatch(s.testCtx, events)
	s.Require().Len(results, len(events))

	addresses := make(map[string]struct{})
	for i, item := range results {
		s.Require().Equal(i, item.Index)
		s.Require().NoError(item.Err)
		s.Require().NotNil(item.Result)
		s.requireSettled(item.Result.Signature)
		addresses[item.Result.Address] = struct{}{}
	}
	s.Require().Len(addresses, len(events))
}
