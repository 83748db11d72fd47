package model

// RecordKind names a category of on-ledger record. The kind selects the
// address derivation seed tag and the byte size used for reserve pricing.
type RecordKind string

const (
	RecordOrganization    RecordKind = "organization"
	RecordShareType       RecordKind = "share_type"
	RecordShareIssuance   RecordKind = "share_issuance"
	RecordProposal        RecordKind = "proposal"
	RecordVote            RecordKind = "vote"
	RecordProposalResults RecordKind = "proposal_results"
)

// Account byte sizes matching the on-chain program layouts, discriminator
// included. Kinds recorded as memo plus reserve transfer only carry no
// account data and price at the zero-size reserve floor.
const (
	OrganizationAccountSize    = 173
	ProposalAccountSize        = 355
	ProposalResultsAccountSize = 100
)

// SeedTag returns the byte string combined with the domain identifier when
// deriving the record's address.
func (k RecordKind) SeedTag() []byte {
	return []byte(k)
}

// AccountSize returns the on-ledger byte size reserved for the record kind.
func (k RecordKind) AccountSize() uint64 {
	switch k {
	case RecordOrganization:
		return OrganizationAccountSize
	case RecordProposal:
		return ProposalAccountSize
	case RecordProposalResults:
		return ProposalResultsAccountSize
	}
	return 0
}
