package review

import (
	"errors"
	"fmt"
)

// ErrNotConfigured indicates OPENROUTER_API_KEY is absent; /analyze is disabled.
var ErrNotConfigured = errors.New("OPENROUTER_API_KEY is not configured")

// ErrCodeRequired indicates an empty code field.
var ErrCodeRequired = errors.New("code is required")

// ErrCodeTooShort indicates the trimmed code is below MinCodeLength.
var ErrCodeTooShort = fmt.Errorf("code must be at least %d characters", MinCodeLength)

// ErrUpstreamTimeout indicates the provider did not answer within the per-call cap.
var ErrUpstreamTimeout = errors.New("upstream request timed out")

// UpstreamError preserves the provider's HTTP status and body.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned status %d: %s", e.StatusCode, e.Body)
}

// IsValidation reports whether err should map to a 400 response.
func IsValidation(err error) bool {
	return errors.Is(err, ErrCodeRequired) || errors.Is(err, ErrCodeTooShort)
}
