package grafana

import (
	"errors"
	"strings"
	"time"

	"github.com/grafctl/grafctl/internal/ui"
)

const (
	defaultMaxRetries   = 3
	defaultInitialDelay = 1 * time.Second
)

// retryWithBackoff executes fn with exponential backoff on transient errors.
// HTTP status errors (*APIError) are never retried: the server answered,
// retrying the same request would answer the same way.
func retryWithBackoff(maxRetries int, fn func() error) error {
	var lastErr error
	delay := defaultInitialDelay

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			ui.Debug("retrying after %v (attempt %d/%d)", delay, attempt+1, maxRetries+1)
			time.Sleep(delay)
			delay *= 2
		}

		lastErr = fn()
		if lastErr == nil {
			return nil
		}

		if !isTransientError(lastErr) {
			return lastErr
		}
	}

	return lastErr
}

// isTransientError reports whether an error is worth retrying
func isTransientError(err error) bool {
	if err == nil {
		return false
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return false
	}

	errStr := strings.ToLower(err.Error())

	transientPatterns := []string{
		"eof",
		"timeout",
		"connection refused",
		"connection reset",
		"broken pipe",
		"temporary failure",
		"no such host",
		"network is unreachable",
	}

	for _, pattern := range transientPatterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}

	return false
}
