package errors

import "errors"

// Sentinel errors for common failure modes.
var (
	ErrEmptyBody        = errors.New("Request body is required")
	ErrInvalidJSON      = errors.New("Invalid JSON format")
	ErrAPIUnreachable   = errors.New("API server is unreachable")
	ErrInvalidResponse  = errors.New("response body is not valid JSON")
	ErrResponseTooLarge = errors.New("response body too large")
	ErrRequestInFlight  = errors.New("a request is already in flight")
)

// ValidationError represents user input that was rejected before use. Field
// is left empty for the request body so the message reads on its own.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// Unwrap returns the sentinel behind the validation failure, if any.
func (e ValidationError) Unwrap() error {
	return e.Err
}
