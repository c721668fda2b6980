package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/openai/openai-go/v3"

	"github.com/voicejournal/voicejournal-backend/internal/domain"
)

// mapAPIError converts openai-go errors to domain errors.
// API errors carry a status code: 429 → ErrRateLimited, 5xx → ErrServiceUnavailable,
// anything else → ErrRequestFailed. Transport failures and request timeouts
// (the SDK wraps the per-request deadline) → ErrServiceUnavailable.
// Upstream messages are not propagated into the sentinel wrap — the caller
// logs them separately so user-facing text never leaks API internals.
func mapAPIError(err error, op string) error {
	if err == nil {
		return nil
	}

	var apierr *openai.Error
	if errors.As(err, &apierr) {
		switch {
		case apierr.StatusCode == http.StatusTooManyRequests:
			return fmt.Errorf("%s: %w", op, domain.ErrRateLimited)
		case apierr.StatusCode >= 500:
			return fmt.Errorf("%s: %w", op, domain.ErrServiceUnavailable)
		default:
			return fmt.Errorf("%s: %w", op, domain.ErrRequestFailed)
		}
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, domain.ErrServiceUnavailable)
	}

	// No structured API error: treat as a connectivity problem.
	return fmt.Errorf("%s: %w", op, domain.ErrServiceUnavailable)
}
