package billing

import "errors"

var (
	// ErrBackendRequired marks actions that cannot run without a real
	// billing backend; the dashboard shows it as a demo-environment notice.
	ErrBackendRequired = errors.New("this action requires a billing backend server")

	// ErrNoFallbackLink means demo mode has no registered checkout link
	// for the requested price.
	ErrNoFallbackLink = errors.New("no fallback checkout link for this price ID")
)
