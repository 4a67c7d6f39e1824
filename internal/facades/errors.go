package facades

import "errors"

var (
	// ErrUpstreamStatus is returned when an upstream API answers with a non-2xx status.
	ErrUpstreamStatus = errors.New("unexpected upstream status")
	// ErrNotConfigured is returned when a required credential is missing.
	ErrNotConfigured = errors.New("upstream credentials not configured")
)
