// Package handlers defines HTTP-layer error codes used across all API
// endpoints.
//
// These symbolic constants are mapped to HTTP responses (via the fail()
// helper in this package) and give clients a stable, machine-readable error
// taxonomy alongside the human-readable message. Handlers never pick codes
// ad hoc: failures flow through the classifier chain in errmap.go, which
// selects the code and message for each error class.
package handlers

const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeNotFound         = "not_found"
	ErrCodeRateLimited      = "too_many_requests"
	ErrCodeInternal         = "internal_error"
	ErrCodeMethodNotAllowed = "method_not_allowed"
)
