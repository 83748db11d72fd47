// Package config declares the adapter's runtime configuration and the
// validation and key-loading helpers the service binary uses at startup.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/jessevdk/go-flags"

	"github.com/fanforge/govledger-adapter/internal/model"
)

// DefaultMemoProgramID is the SPL memo program carried by every public
// cluster.
const DefaultMemoProgramID = "MemoSq4gqABAXKb96qnH8TysNcWxMyWCqXgDLGmfcHr"

// Config is the full runtime configuration of the adapter binary.
type Config struct {
	Cluster       model.Cluster    `long:"cluster" env:"ADAPTER_CLUSTER" description:"ledger cluster name" default:"devnet"`
	RPCURL        string           `long:"rpc-url" env:"ADAPTER_RPC_URL" description:"ledger RPC URL, overrides the cluster default"`
	ProgramID     string           `long:"program-id" env:"ADAPTER_PROGRAM_ID" description:"governance program id" required:"true"`
	MemoProgramID string           `long:"memo-program-id" env:"ADAPTER_MEMO_PROGRAM_ID" description:"memo program id" default:"MemoSq4gqABAXKb96qnH8TysNcWxMyWCqXgDLGmfcHr"`
	KeypairFile   string           `long:"keypair-file" env:"ADAPTER_KEYPAIR_FILE" description:"path to the signer keypair file"`
	Keypair       string           `long:"keypair" env:"ADAPTER_KEYPAIR" description:"signer private key, base58"`
	Commitment    model.Commitment `long:"commitment" env:"ADAPTER_COMMITMENT" description:"confirmation depth for queries and submissions" default:"confirmed"`

	ListenAddr  string        `long:"listen-addr" env:"ADAPTER_LISTEN_ADDR" description:"address for the HTTP API" default:":8080"`
	MetricsAddr string        `long:"metrics-addr" env:"ADAPTER_METRICS_ADDR" description:"address for the metrics server" default:":2112"`
	HTTPTimeout time.Duration `long:"http-timeout" env:"ADAPTER_HTTP_TIMEOUT" description:"HTTP timeout for RPC requests" default:"30s"`
	LogDev      bool          `long:"log-dev" env:"ADAPTER_LOG_DEV" description:"use the development log encoder"`

	RetryAttempts  int           `long:"retry-attempts" env:"ADAPTER_RETRY_ATTEMPTS" description:"max attempts per ledger operation" default:"4"`
	RetryBaseDelay time.Duration `long:"retry-base-delay" env:"ADAPTER_RETRY_BASE_DELAY" description:"base backoff delay between attempts" default:"1s"`
	ConfirmTimeout time.Duration `long:"confirm-timeout" env:"ADAPTER_CONFIRM_TIMEOUT" description:"ceiling for a confirmation wait" default:"30s"`
	PollInterval   time.Duration `long:"poll-interval" env:"ADAPTER_POLL_INTERVAL" description:"signature status poll interval" default:"2s"`
	HealthInterval time.Duration `long:"health-interval" env:"ADAPTER_HEALTH_INTERVAL" description:"health probe interval" default:"30s"`
	RPCRPS         int           `long:"rpc-rps" env:"ADAPTER_RPC_RPS" description:"client-side RPC requests per second" default:"10"`
	BatchWorkers   int           `long:"batch-workers" env:"ADAPTER_BATCH_WORKERS" description:"concurrent workers for batch recording" default:"4"`
	SkipPreflight  bool          `long:"skip-preflight" env:"ADAPTER_SKIP_PREFLIGHT" description:"skip preflight simulation on submit"`
}

// Parse fills a Config from command-line arguments and the environment.
func Parse(args []string) (Config, error) {
	cfg := Config{}
	if _, err := flags.ParseArgs(&cfg, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints that tag parsing cannot express.
func (c Config) Validate() error {
	if !c.Cluster.Valid() {
		return fmt.Errorf("unknown cluster %q", c.Cluster)
	}
	if !c.Commitment.Valid() {
		return fmt.Errorf("unknown commitment %q", c.Commitment)
	}
	if c.Cluster == model.ClusterCustom && c.RPCURL == "" {
		return errors.New("rpc-url is required for the custom cluster")
	}
	if _, err := solana.PublicKeyFromBase58(c.ProgramID); err != nil {
		return fmt.Errorf("malformed program id %q: %w", c.ProgramID, err)
	}
	if _, err := solana.PublicKeyFromBase58(c.MemoProgramID); err != nil {
		return fmt.Errorf("malformed memo program id %q: %w", c.MemoProgramID, err)
	}
	if (c.KeypairFile == "") == (c.Keypair == "") {
		return errors.New("exactly one of keypair-file and keypair must be set")
	}
	return nil
}

// Endpoint returns the RPC URL to connect to: the explicit override when
// set, otherwise the cluster default.
func (c Config) Endpoint() string {
	if c.RPCURL != "" {
		return c.RPCURL
	}
	switch c.Cluster {
	case model.ClusterMainnetBeta:
		return rpc.MainNetBeta_RPC
	case model.ClusterTestnet:
		return rpc.TestNet_RPC
	case model.ClusterLocalnet:
		return rpc.LocalNet_RPC
	default:
		return rpc.DevNet_RPC
	}
}

// CommitmentType maps the configured commitment onto the RPC client's type.
func (c Config) CommitmentType() rpc.CommitmentType {
	switch c.Commitment {
	case model.CommitmentProcessed:
		return rpc.CommitmentProcessed
	case model.CommitmentFinalized:
		return rpc.CommitmentFinalized
	default:
		return rpc.CommitmentConfirmed
	}
}

// ProgramKey returns the governance program id as a key. Call Validate
// first; malformed input reports an error here too.
func (c Config) ProgramKey() (solana.PublicKey, error) {
	return solana.PublicKeyFromBase58(c.ProgramID)
}

// MemoProgramKey returns the memo program id as a key.
func (c Config) MemoProgramKey() (solana.PublicKey, error) {
	return solana.PublicKeyFromBase58(c.MemoProgramID)
}

// LoadKeypair loads the signing key from the configured source.
func (c Config) LoadKeypair() (solana.PrivateKey, error) {
	switch {
	case c.KeypairFile != "":
		key, err := solana.PrivateKeyFromSolanaKeygenFile(c.KeypairFile)
		if err != nil {
			return nil, fmt.Errorf("load keypair file %s: %w", c.KeypairFile, err)
		}
		return key, nil
	case c.Keypair != "":
		key, err := solana.PrivateKeyFromBase58(c.Keypair)
		if err != nil {
			return nil, fmt.Errorf("parse inline keypair: %w", err)
		}
		return key, nil
	default:
		return nil, errors.New("no keypair configured")
	}
}
