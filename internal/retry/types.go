package retry

import "time"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics observes attempts, classifications and whole-operation outcomes.
	Metrics interface {
		ObserveAttempt(operation string, err error)
		ObserveClassification(operation string, retryable bool)
		ObserveOperation(operation string, err error, attempts int, started time.Time)
	}
)
