package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNoContent marks a zero-result news lookup. It is a valid outcome,
	// not an upstream fault.
	ErrNoContent = errors.New("no news content found")

	ErrAuthFailure         = errors.New("invalid credentials")
	ErrDelivery            = errors.New("podcast delivery failed")
	ErrCandidateSetExpired = errors.New("candidate set not found or expired")
)

// UpstreamStatusError is a non-2xx response from a remote API.
type UpstreamStatusError struct {
	Upstream string
	Status   int
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.Upstream, e.Status)
}

// UpstreamShapeError is a remote API response missing the expected structure.
type UpstreamShapeError struct {
	Upstream string
	Reason   string
}

func (e *UpstreamShapeError) Error() string {
	return fmt.Sprintf("unexpected %s response: %s", e.Upstream, e.Reason)
}

// InvalidSelectionError rejects an empty, out-of-range or expired story
// selection. Reason is safe to show to the user.
type InvalidSelectionError struct {
	Reason string
}

func (e *InvalidSelectionError) Error() string {
	return "invalid selection: " + e.Reason
}

// ConfigurationError is a missing required secret, fatal at startup or at
// first use depending on the component.
type ConfigurationError struct {
	Name string
}

func (e *ConfigurationError) Error() string {
	return e.Name + " is not set"
}
