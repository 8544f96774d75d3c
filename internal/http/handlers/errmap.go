// Central error mapper.
//
// Every failure that reaches a handler is translated to an HTTP response by
// a prioritized chain of classifiers: an ordered list of (predicate,
// response) pairs tried top to bottom, first match wins, with a generic 500
// as the final fallback. The chain covers three failure families:
//
//  1. malformed input detected while parsing identifiers (strconv errors),
//  2. store-reported constraint violations that bubbled through the
//     service layer (not-null, foreign-key, numeric range),
//  3. typed service failures that carry their own meaning (not-found,
//     invalid order/sort, missing field).
//
// Order matters: driver classification runs before the typed sentinels so a
// constraint violation is never misreported as a generic server error, and
// the numeric-range case deliberately reuses the "Comment not found"
// message: an id too large for the column is indistinguishable from an
// absent row as far as clients are concerned.
package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-news-backend/internal/services"
)

// classifier pairs an error predicate with the HTTP response to emit when
// it matches.
type classifier struct {
	match   func(error) bool
	status  int
	code    string
	message string
}

// errorChain is evaluated in order; the first matching classifier responds.
var errorChain = []classifier{
	{isInvalidLiteral, 400, ErrCodeBadRequest, "Invalid input"},
	{isMissingField, 400, ErrCodeBadRequest, "Missing required information"},
	{isUnknownUsername, 404, ErrCodeNotFound, "Username not found"},
	{isNumericRange, 404, ErrCodeNotFound, "Comment not found"},
	{sentinel(services.ErrArticleNotFound), 404, ErrCodeNotFound, "ID not found"},
	{sentinel(services.ErrTopicNotFound), 404, ErrCodeNotFound, "Topic not found"},
	{sentinel(services.ErrCommentNotFound), 404, ErrCodeNotFound, "Comment not found"},
	{sentinel(services.ErrInvalidOrder), 400, ErrCodeBadRequest, "Invalid order query"},
	{sentinel(services.ErrInvalidSort), 400, ErrCodeBadRequest, "Invalid sort query"},
}

// respondError walks the classifier chain and emits the first match, or a
// generic 500 when nothing matches.
func respondError(c *gin.Context, err error) {
	for _, cl := range errorChain {
		if cl.match(err) {
			fail(c, cl.status, cl.code, cl.message)
			return
		}
	}
	fail(c, 500, ErrCodeInternal, "internal server error")
}

// sentinel adapts errors.Is to a classifier predicate.
func sentinel(target error) func(error) bool {
	return func(err error) bool { return errors.Is(err, target) }
}

// containsAny reports whether the lowercased error text contains any of the
// given fragments. Driver errors carry no stable Go type across backends,
// so classification falls back to message text, covering both the SQLite
// and Postgres phrasings.
func containsAny(err error, fragments ...string) bool {
	msg := strings.ToLower(err.Error())
	for _, f := range fragments {
		if strings.Contains(msg, f) {
			return true
		}
	}
	return false
}

// isInvalidLiteral matches a value that could not be parsed as the expected
// type: a non-numeric path id (strconv.ErrSyntax) or a store-level invalid
// text representation (SQLSTATE 22P02).
func isInvalidLiteral(err error) bool {
	return errors.Is(err, strconv.ErrSyntax) ||
		containsAny(err, "invalid input syntax", "sqlstate 22p02")
}

// isMissingField matches a required field absent at insert time, either
// caught by service validation or reported by the store as a not-null
// violation (SQLSTATE 23502).
func isMissingField(err error) bool {
	return errors.Is(err, services.ErrMissingField) ||
		containsAny(err, "not null constraint", "not-null constraint", "sqlstate 23502")
}

// isUnknownUsername matches a comment insert whose author references no
// user row: the store rejects it with a foreign-key violation
// (SQLSTATE 23503). Article references are pre-checked by the service, so
// the only FK that can fire on this API's writes is the author one.
func isUnknownUsername(err error) bool {
	return containsAny(err, "foreign key constraint", "sqlstate 23503")
}

// isNumericRange matches an identifier outside the representable range,
// whether caught while parsing (strconv.ErrRange) or by the store
// (SQLSTATE 22003).
func isNumericRange(err error) bool {
	return errors.Is(err, strconv.ErrRange) ||
		containsAny(err, "out of range", "sqlstate 22003")
}
