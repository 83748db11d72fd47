package model

// ProposalStatus is the lifecycle state of a governance proposal.
type ProposalStatus string

const (
	// ProposalStatusDraft is the initial state, voting window not yet announced.
	ProposalStatusDraft ProposalStatus = "draft"
	// ProposalStatusOpen means the voting window is announced and votes are accepted.
	ProposalStatusOpen ProposalStatus = "open"
	// ProposalStatusClosed means voting ended and results may be committed.
	ProposalStatusClosed ProposalStatus = "closed"
	// ProposalStatusFinalized is the terminal state, reached only through finalization.
	ProposalStatusFinalized ProposalStatus = "finalized"
)

// Valid reports whether the status is one of the known lifecycle states.
func (s ProposalStatus) Valid() bool {
	switch s {
	case ProposalStatusDraft, ProposalStatusOpen, ProposalStatusClosed, ProposalStatusFinalized:
		return true
	}
	return false
}

// CanTransitionTo reports whether a status update may move the proposal from
// s to next. Finalized is excluded here: it is reachable only through the
// dedicated finalize operation, never a plain status update.
func (s ProposalStatus) CanTransitionTo(next ProposalStatus) bool {
	switch {
	case s == ProposalStatusDraft && next == ProposalStatusOpen:
		return true
	case s == ProposalStatusOpen && next == ProposalStatusClosed:
		return true
	}
	return false
}
