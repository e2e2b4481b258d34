package llm

import "errors"

var (
	// ErrMissingAPIKey indicates no API credential is configured.
	// Raised before any network call is attempted.
	ErrMissingAPIKey = errors.New("generation api key not configured")

	// ErrUnavailable indicates the generation API endpoint is unreachable.
	ErrUnavailable = errors.New("generation api unavailable")

	// ErrTimeout indicates the generation request exceeded its timeout.
	ErrTimeout = errors.New("generation request timed out")

	// ErrInvalidOutput indicates the response could not be repaired and
	// parsed into the expected structured format.
	ErrInvalidOutput = errors.New("invalid generation output format")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("generation retry attempts exhausted")
)

// IsTransport reports whether err is a transport-level failure the caller
// may retry, as opposed to a configuration or content error.
func IsTransport(err error) bool {
	return errors.Is(err, ErrUnavailable) ||
		errors.Is(err, ErrTimeout) ||
		errors.Is(err, ErrRetryExhausted)
}
