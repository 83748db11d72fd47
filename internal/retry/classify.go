package retry

import (
	"context"
	"errors"
	"net"
	"strings"
)

// retryableMarkers is the substring list matched against attempt errors.
// Matching free text is brittle across client versions, so the whole rule
// lives in Classify and nowhere else.
var retryableMarkers = []string{
	"timeout",
	"timed out",
	"deadline exceeded",
	"connection refused",
	"connection reset",
	"no such host",
	"temporary failure in name resolution",
	"eof",
	"too many requests",
	"429",
	"service unavailable",
	"503",
	"gateway timeout",
	"504",
	"blockhash not found",
	"node is behind",
}

// Classify reports whether an attempt error is transient and worth retrying.
// Structured checks run first; anything unmatched falls through to the
// substring list.
func Classify(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, marker := range retryableMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
