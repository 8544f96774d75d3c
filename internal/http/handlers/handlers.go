// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the service contracts consumed by the transport layer
// and the Handlers aggregate that binds them. Handlers are transport-thin:
// they parse path, query, and body parameters, call application services,
// and translate results into HTTP responses. Failures are never handled
// inline; every error funnels through the classifier chain in errmap.go.
package handlers

import (
	"context"

	"github.com/tbourn/go-news-backend/internal/domain"
)

// TopicService defines topic read operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type TopicService interface {
	// List returns all topics.
	List(ctx context.Context) ([]domain.Topic, error)
}

// ArticleService defines article read and vote-update operations.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type ArticleService interface {
	// List returns articles, optionally filtered by topic and ordered by an
	// allow-listed column and direction.
	List(ctx context.Context, topic, sortBy, order string) ([]domain.Article, error)
	// Get returns a single article by id.
	Get(ctx context.Context, id int64) (*domain.Article, error)
	// IncrementVotes applies votes += delta and returns the updated row.
	IncrementVotes(ctx context.Context, id int64, delta int) (*domain.Article, error)
}

// CommentService defines comment operations scoped to articles.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type CommentService interface {
	// ListForArticle returns an article's comments, most recent first.
	ListForArticle(ctx context.Context, articleID int64) ([]domain.Comment, error)
	// Create posts a comment on an article and returns the persisted row.
	Create(ctx context.Context, articleID int64, username, body string) (*domain.Comment, error)
	// Delete removes a comment by id.
	Delete(ctx context.Context, id int64) error
}

// UserService defines user read operations consumed by HTTP handlers.
type UserService interface {
	// List returns all users.
	List(ctx context.Context) ([]domain.User, error)
}

// Handlers groups the HTTP endpoints for topics, articles, comments, and
// users. It depends on abstract service interfaces to keep transport
// concerns separate from business logic.
type Handlers struct {
	topicSvc   TopicService
	articleSvc ArticleService
	commentSvc CommentService
	userSvc    UserService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(topicSvc TopicService, articleSvc ArticleService, commentSvc CommentService, userSvc UserService) *Handlers {
	return &Handlers{
		topicSvc:   topicSvc,
		articleSvc: articleSvc,
		commentSvc: commentSvc,
		userSvc:    userSvc,
	}
}
