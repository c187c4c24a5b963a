package auth

import "fmt"

// AuthenticationError represents a terminal failure of one authentication
// attempt. It is never retried within the attempt; the caller decides
// whether to retry the whole application operation.
type AuthenticationError struct {
	Domain  string
	Message string
	Cause   error
}

func (e *AuthenticationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("authentication failed for %s: %s: %v", e.Domain, e.Message, e.Cause)
	}
	return fmt.Sprintf("authentication failed for %s: %s", e.Domain, e.Message)
}

func (e *AuthenticationError) Unwrap() error {
	return e.Cause
}
