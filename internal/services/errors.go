// Package services defines the business logic for topics, articles,
// comments, and users. This file centralizes common service-level error
// values so that they can be consistently returned by service methods and
// checked by callers.
//
// These errors are intended for internal use by the service layer and
// translation into user-facing messages or HTTP status codes should be
// performed at the handler layer (see handlers/errmap.go). Store-level
// constraint violations are not classified here: accessors let them bubble
// so the central error mapper can translate them.
package services

import "errors"

var (
	// ErrArticleNotFound indicates that the requested article id does not
	// exist in the store.
	ErrArticleNotFound = errors.New("article not found")

	// ErrTopicNotFound indicates that a topic filter referenced a slug with
	// no topic row. An existing topic with zero articles does not produce
	// this error.
	ErrTopicNotFound = errors.New("topic not found")

	// ErrCommentNotFound indicates that the requested comment id does not
	// exist in the store.
	ErrCommentNotFound = errors.New("comment not found")

	// ErrInvalidOrder is returned when an order token is not one of
	// "asc" or "desc".
	ErrInvalidOrder = errors.New("invalid order query")

	// ErrInvalidSort is returned when a sort_by value is not in the
	// article sort allow-list.
	ErrInvalidSort = errors.New("invalid sort query")

	// ErrMissingField is returned when a required request field is absent
	// at insert time.
	ErrMissingField = errors.New("missing required information")
)
