package services

import "errors"

var (
	// ErrUpstreamCallFailed wraps any failure of the outbound completion call.
	ErrUpstreamCallFailed = errors.New("upstream call failed")
	// ErrUpstreamUnavailable wraps an outbound call that ran out of time.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)
