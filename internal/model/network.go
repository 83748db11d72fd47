package model

// Cluster identifies a Solana cluster the adapter records to.
type Cluster string

const (
	// ClusterDevnet is the public development cluster.
	ClusterDevnet Cluster = "devnet"
	// ClusterTestnet is the public test cluster.
	ClusterTestnet Cluster = "testnet"
	// ClusterMainnetBeta is the production cluster.
	ClusterMainnetBeta Cluster = "mainnet-beta"
	// ClusterLocalnet is a local test validator.
	ClusterLocalnet Cluster = "localnet"
	// ClusterCustom carries no default endpoint and requires an explicit RPC URL.
	ClusterCustom Cluster = "custom"
)

// Valid reports whether the cluster is one of the known values.
func (c Cluster) Valid() bool {
	switch c {
	case ClusterDevnet, ClusterTestnet, ClusterMainnetBeta, ClusterLocalnet, ClusterCustom:
		return true
	}
	return false
}

// Commitment is the confirmation depth used for RPC queries and
// transaction submission.
type Commitment string

const (
	// CommitmentProcessed means the transaction was seen by the queried node.
	CommitmentProcessed Commitment = "processed"
	// CommitmentConfirmed means a supermajority of the cluster voted on the block.
	CommitmentConfirmed Commitment = "confirmed"
	// CommitmentFinalized means the block is rooted and will not be rolled back.
	CommitmentFinalized Commitment = "finalized"
)

// Valid reports whether the commitment is one of the known levels.
func (c Commitment) Valid() bool {
	switch c {
	case CommitmentProcessed, CommitmentConfirmed, CommitmentFinalized:
		return true
	}
	return false
}
