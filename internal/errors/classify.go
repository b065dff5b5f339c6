package errors

import (
	"context"
	"errors"
)

// ErrorSeverity indicates the severity of an error for UI presentation.
type ErrorSeverity int

const (
	SeverityInfo    ErrorSeverity = iota // User should know, not blocking
	SeverityWarning                      // Degraded functionality
	SeverityError                        // Operation failed, can retry
	SeverityFatal                        // Application must exit
)

// UIError wraps an error with UI-friendly presentation metadata.
type UIError struct {
	Err      error
	Severity ErrorSeverity
	Title    string   // Short user-facing title
	Message  string   // Detailed user-facing message
	Recovery []string // Suggested actions (bullet points)
	Details  string   // Technical details (collapsed by default)
}

func (e UIError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Title
}

// Unwrap returns the underlying error.
func (e UIError) Unwrap() error {
	return e.Err
}

// ClassifyError converts a standard error into a UIError with appropriate
// severity, title, message, and recovery suggestions.
func ClassifyError(err error) *UIError {
	if err == nil {
		return nil
	}

	var uiErr *UIError
	if errors.As(err, &uiErr) {
		return uiErr
	}

	// Validation errors come first: they wrap the body sentinels.
	var validationErr ValidationError
	if errors.As(err, &validationErr) {
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Validation Error",
			Message:  validationErr.Message,
			Recovery: []string{"Correct the request body and try again"},
			Details:  validationErr.Error(),
		}
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Request Timeout",
			Message:  "The API server took too long to respond.",
			Recovery: []string{"Try again", "Increase the request timeout in Preferences"},
			Details:  err.Error(),
		}

	case errors.Is(err, context.Canceled):
		return &UIError{
			Err:      err,
			Severity: SeverityInfo,
			Title:    "Request Cancelled",
			Message:  "The operation was cancelled.",
			Recovery: []string{},
		}

	case errors.Is(err, ErrEmptyBody), errors.Is(err, ErrInvalidJSON):
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Validation Error",
			Message:  err.Error(),
			Recovery: []string{"Correct the request body and try again"},
		}

	case errors.Is(err, ErrAPIUnreachable):
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Connection Failed",
			Message:  "Unable to reach the feature API.",
			Recovery: []string{
				"Check that the API server is running",
				"Verify it listens on the configured address",
			},
			Details: err.Error(),
		}

	case errors.Is(err, ErrInvalidResponse):
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Invalid Response",
			Message:  "The API server answered with something other than JSON.",
			Recovery: []string{"Check the API server logs"},
			Details:  err.Error(),
		}

	case errors.Is(err, ErrResponseTooLarge):
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Response Too Large",
			Message:  "The API server answered with a body too large to display.",
			Recovery: []string{"Request fewer rows or features"},
			Details:  err.Error(),
		}

	case errors.Is(err, ErrRequestInFlight):
		return &UIError{
			Err:      err,
			Severity: SeverityInfo,
			Title:    "Request In Progress",
			Message:  "Wait for the current request to finish.",
			Recovery: []string{},
		}
	}

	return &UIError{
		Err:      err,
		Severity: SeverityError,
		Title:    "Unexpected Error",
		Message:  "An unexpected error occurred.",
		Recovery: []string{"Try again"},
		Details:  err.Error(),
	}
}
