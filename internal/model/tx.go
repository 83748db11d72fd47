package model

import "time"

// TxState is the observed ledger-side state of a submitted transaction.
type TxState string

const (
	TxStateUnknown   TxState = "unknown"
	TxStateProcessed TxState = "processed"
	TxStateConfirmed TxState = "confirmed"
	TxStateFinalized TxState = "finalized"
	TxStateFailed    TxState = "failed"
)

// TxStatus is a point-in-time status snapshot for one transaction signature.
// Confirmations is nil once the transaction is rooted.
type TxStatus struct {
	Signature     string
	State         TxState
	Slot          uint64
	Confirmations *uint64
	Err           string
}

// HealthStatus is the monitor's snapshot for the operational health surface.
type HealthStatus struct {
	Healthy   bool
	Cluster   Cluster
	Endpoint  string
	Slot      uint64
	Version   string
	KeyLoaded bool
	CheckedAt time.Time
	LastError string
}
