// Package pda derives deterministic on-ledger addresses from domain
// identifiers. The same (record kind, identifier) pair always yields the
// same address, so retried submissions land on the same account and
// external callers can recompute the expected address offline.
package pda

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/google/uuid"

	"github.com/fanforge/govledger-adapter/internal/faults"
	"github.com/fanforge/govledger-adapter/internal/model"
)

// Deriver computes program-derived addresses under a fixed program namespace.
type Deriver struct {
	programID solana.PublicKey
}

// NewDeriver returns a Deriver scoped to the given on-chain program.
func NewDeriver(programID solana.PublicKey) *Deriver {
	return &Deriver{programID: programID}
}

// ProgramID returns the namespace the deriver is scoped to.
func (d *Deriver) ProgramID() solana.PublicKey {
	return d.programID
}

// Derive computes the address and bump seed for a record. The identifier is
// canonicalized to its 16 raw bytes, separators removed, so hyphenated and
// plain forms of the same UUID derive the same address.
func (d *Deriver) Derive(kind model.RecordKind, domainID string) (solana.PublicKey, uint8, error) {
	u, err := uuid.Parse(domainID)
	if err != nil {
		return solana.PublicKey{}, 0, faults.NewValidation(string(kind), "malformed identifier %q", domainID)
	}

	seeds := [][]byte{kind.SeedTag(), u[:]}
	addr, bump, err := solana.FindProgramAddress(seeds, d.programID)
	if err != nil {
		return solana.PublicKey{}, 0, fmt.Errorf("find program address for %s %s: %w", kind, domainID, err)
	}
	return addr, bump, nil
}
