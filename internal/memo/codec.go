// Package memo builds the canonical JSON payloads recorded on the ledger
// through the memo program. Payloads are versioned, size-bounded and
// validated before any network call, so malformed input never costs a
// transaction fee.
package memo

import (
	"encoding/hex"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/gowebpki/jcs"

	"github.com/fanforge/govledger-adapter/internal/faults"
	"github.com/fanforge/govledger-adapter/internal/model"
)

const (
	// SchemaVersion is written into every payload under the "v" key.
	SchemaVersion = 1

	// MaxPayloadBytes is the serialized UTF-8 ceiling, sized to fit the
	// ledger's per-instruction data limit.
	MaxPayloadBytes = 566

	// maxTextChars caps free-text fields, ellipsis included.
	maxTextChars = 120

	ellipsis = "..."
)

var hashPattern = regexp.MustCompile(`^[a-f0-9]{64}$`)

// payload collects only the keys that carry a value, so empty fields never
// serialize.
type payload map[string]any

func (p payload) setString(key, val string) {
	if val != "" {
		p[key] = val
	}
}

// Encode serializes a domain event into its canonical memo form. It returns
// a *faults.ValidationError when an identifier or hash field is malformed or
// when the serialized payload exceeds MaxPayloadBytes.
func Encode(event any) ([]byte, error) {
	p := payload{"v": SchemaVersion}

	switch e := event.(type) {
	case model.OrganizationCreated:
		p["type"] = "organization"
		if err := p.setID("org", e.OrganizationID); err != nil {
			return nil, err
		}
		p.setString("name", Truncate(e.Name))

	case model.ShareTypeCreated:
		p["type"] = "share_type"
		if err := p.setID("st", e.ShareTypeID); err != nil {
			return nil, err
		}
		if err := p.setID("org", e.OrganizationID); err != nil {
			return nil, err
		}
		p.setString("name", Truncate(e.Name))
		p.setString("sym", e.Symbol)
		p["total"] = e.TotalShares

	case model.ShareIssuanceRecorded:
		p["type"] = "share_issuance"
		if err := p.setID("iss", e.IssuanceID); err != nil {
			return nil, err
		}
		if err := p.setID("st", e.ShareTypeID); err != nil {
			return nil, err
		}
		if err := p.setID("org", e.OrganizationID); err != nil {
			return nil, err
		}
		p.setString("mem", e.MemberRef)
		p["qty"] = e.Quantity

	case model.ProposalCreated:
		p["type"] = "proposal"
		if err := p.setID("prop", e.ProposalID); err != nil {
			return nil, err
		}
		if err := p.setID("org", e.OrganizationID); err != nil {
			return nil, err
		}
		p.setString("title", Truncate(e.Title))
		if err := p.setHash("hash", e.ContentHash); err != nil {
			return nil, err
		}
		if e.StartAt != nil {
			p["start"] = *e.StartAt
		}
		if e.EndAt != nil {
			p["end"] = *e.EndAt
		}
		p["power"] = e.EligibleVotingPower
		if e.QuorumBps != nil {
			p["qbps"] = *e.QuorumBps
		}

	case model.ProposalStatusChanged:
		p["type"] = "proposal_status"
		if err := p.setID("prop", e.ProposalID); err != nil {
			return nil, err
		}
		if err := p.setID("org", e.OrganizationID); err != nil {
			return nil, err
		}
		if !e.NewStatus.Valid() {
			return nil, faults.NewValidation("status", "unknown proposal status %q", e.NewStatus)
		}
		p["status"] = string(e.NewStatus)

	case model.VoteCast:
		p["type"] = "vote"
		if err := p.setID("vote", e.VoteID); err != nil {
			return nil, err
		}
		if err := p.setID("prop", e.ProposalID); err != nil {
			return nil, err
		}
		if err := p.setID("org", e.OrganizationID); err != nil {
			return nil, err
		}
		if err := p.setID("opt", e.OptionID); err != nil {
			return nil, err
		}
		p.setString("voter", e.VoterRef)
		p["power"] = e.VotingPower
		if e.BallotHash != "" {
			if err := p.setHash("ballot", e.BallotHash); err != nil {
				return nil, err
			}
		}

	case model.ResultsCommitted:
		p["type"] = "result"
		if err := p.setID("prop", e.ProposalID); err != nil {
			return nil, err
		}
		if err := p.setID("org", e.OrganizationID); err != nil {
			return nil, err
		}
		if err := p.setHash("hash", e.ResultsHash); err != nil {
			return nil, err
		}
		if e.WinningOptionID != "" {
			if err := p.setID("win", e.WinningOptionID); err != nil {
				return nil, err
			}
		}
		p["votes"] = e.TotalVotesCast
		p["qmet"] = e.QuorumMet

	case model.ProposalFinalized:
		p["type"] = "proposal_status"
		if err := p.setID("prop", e.ProposalID); err != nil {
			return nil, err
		}
		if err := p.setID("org", e.OrganizationID); err != nil {
			return nil, err
		}
		p["status"] = string(model.ProposalStatusFinalized)

	default:
		return nil, faults.NewValidation("event", "unsupported event type %T", event)
	}

	raw, err := json.Marshal(p)
	if err != nil {
		return nil, faults.NewValidation("event", "serialize payload: %v", err)
	}
	// Canonical form keeps the byte output stable for any consumer that
	// recomputes hashes from on-chain memos.
	canonical, err := jcs.Transform(raw)
	if err != nil {
		return nil, faults.NewValidation("event", "canonicalize payload: %v", err)
	}
	if len(canonical) > MaxPayloadBytes {
		return nil, faults.NewValidation("event", "payload is %d bytes, limit %d", len(canonical), MaxPayloadBytes)
	}
	return canonical, nil
}

func (p payload) setID(key, id string) error {
	canonical, err := CanonicalID(key, id)
	if err != nil {
		return err
	}
	p[key] = canonical
	return nil
}

func (p payload) setHash(key, raw string) error {
	normalized, err := NormalizeHash(key, raw)
	if err != nil {
		return err
	}
	p[key] = normalized
	return nil
}

// CanonicalID parses a domain identifier and returns it as 32 lowercase hex
// characters with separators removed.
func CanonicalID(field, id string) (string, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", faults.NewValidation(field, "malformed identifier %q", id)
	}
	return hex.EncodeToString(u[:]), nil
}

// NormalizeHash strips an optional 0x prefix, lowercases, and requires
// exactly 64 hex characters. Consumers reconstructing records from on-chain
// memos must apply this same rule before comparing hashes.
func NormalizeHash(field, raw string) (string, error) {
	s := raw
	if len(s) >= 2 && (s[:2] == "0x" || s[:2] == "0X") {
		s = s[2:]
	}
	s = strings.ToLower(s)
	if !hashPattern.MatchString(s) {
		return "", faults.NewValidation(field, "must be 64 hex characters after normalization, got %q", raw)
	}
	return s, nil
}

// Truncate caps free-text input at the maximum character count, ellipsis
// included, counting runes rather than bytes.
func Truncate(s string) string {
	r := []rune(s)
	if len(r) <= maxTextChars {
		return s
	}
	return string(r[:maxTextChars-len(ellipsis)]) + ellipsis
}
