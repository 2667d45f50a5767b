package llm

import "fmt"

// ServiceError wraps any failure contacting the external model service:
// network, auth, quota, or a malformed response. The router converts it to a
// fixed localized apology; the wrapped cause is for operator logs only and
// must never reach the end user.
type ServiceError struct {
	Provider string
	Err      error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s service error: %v", e.Provider, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}
