package client

import "errors"

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("not your press kit")
	ErrNotFound     = errors.New("not found")
	// ErrRejected wraps the server's explanation for invalid input or an
	// unusable token.
	ErrRejected = errors.New("rejected")
)
