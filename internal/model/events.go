package model

// OrganizationCreated announces a new organization to record on the ledger.
type OrganizationCreated struct {
	OrganizationID string
	Name           string
}

// ShareTypeCreated announces a new class of shares within an organization.
type ShareTypeCreated struct {
	ShareTypeID    string
	OrganizationID string
	Name           string
	Symbol         string
	TotalShares    uint64
}

// ShareIssuanceRecorded announces shares granted to a member.
type ShareIssuanceRecorded struct {
	IssuanceID     string
	ShareTypeID    string
	OrganizationID string
	// MemberRef is an opaque reference to the member, typically a hash. The
	// adapter never receives or records personal data.
	MemberRef string
	Quantity  uint64
}

// MaxQuorumBps caps a quorum requirement at full participation.
const MaxQuorumBps uint16 = 10000

// ProposalCreated announces a governance proposal. StartAt and EndAt are unix
// seconds and stay nil while the proposal is a draft without a voting window.
type ProposalCreated struct {
	ProposalID          string
	OrganizationID      string
	Title               string
	ContentHash         string
	StartAt             *int64
	EndAt               *int64
	EligibleVotingPower uint64
	// QuorumBps is the required participation in basis points, nil when the
	// proposal carries no quorum requirement.
	QuorumBps *uint16
}

// ProposalStatusChanged announces a proposal lifecycle transition.
type ProposalStatusChanged struct {
	ProposalID     string
	OrganizationID string
	NewStatus      ProposalStatus
}

// VoteCast announces a single ballot on an open proposal.
type VoteCast struct {
	VoteID         string
	ProposalID     string
	OrganizationID string
	OptionID       string
	// VoterRef is an opaque reference to the voter, typically a hash.
	VoterRef    string
	VotingPower uint64
	// BallotHash commits to the full ballot contents kept off-chain. Optional.
	BallotHash string
}

// ResultsCommitted announces the tallied outcome of a closed proposal.
type ResultsCommitted struct {
	ProposalID     string
	OrganizationID string
	ResultsHash    string
	// WinningOptionID is empty when no option won, e.g. a tie or failed quorum.
	WinningOptionID string
	TotalVotesCast  uint64
	QuorumMet       bool
}

// ProposalFinalized announces that a closed proposal with committed results
// reached its terminal state.
type ProposalFinalized struct {
	ProposalID     string
	OrganizationID string
}

// RecordResult is returned by every recording operation: the signature of the
// submitted transaction and the derived address the record anchors to.
type RecordResult struct {
	Signature string
	Address   string
}

// BatchItemResult pairs one item of a batch recording with its outcome.
// Exactly one of Result and Err is set.
type BatchItemResult struct {
	Index  int
	Result *RecordResult
	Err    error
}
