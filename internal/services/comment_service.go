// Package services – CommentService
//
// This file implements the CommentService, which governs listing the
// comments of an article, posting a new comment, and deleting a comment by
// id. Article existence is checked before dependent operations so a missing
// parent surfaces as a 404 rather than an opaque constraint error. An
// unknown comment author is left to the store's foreign-key check; the
// violation bubbles up for the handler-level error mapper to classify.
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tbourn/go-news-backend/internal/domain"
	"github.com/tbourn/go-news-backend/internal/repo"
)

// CommentRepo defines the repository contract required by CommentService.
type CommentRepo interface {
	// ListArticleComments returns an article's comments, most recent first.
	ListArticleComments(ctx context.Context, db *gorm.DB, articleID int64) ([]domain.Comment, error)

	// CreateComment inserts a comment row and returns it with generated
	// fields populated.
	CreateComment(ctx context.Context, db *gorm.DB, articleID int64, username, body string) (*domain.Comment, error)

	// DeleteComment removes a comment by id, repo.ErrNotFound when absent.
	DeleteComment(ctx context.Context, db *gorm.DB, id int64) error

	// ArticleExists returns repo.ErrNotFound when articleID has no row.
	ArticleExists(ctx context.Context, db *gorm.DB, id int64) error
}

// CommentService provides comment operations scoped to articles.
type CommentService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the comment repository used by this service.
	Repo CommentRepo
}

// NewCommentService constructs a CommentService.
func NewCommentService(db *gorm.DB, r CommentRepo) *CommentService {
	return &CommentService{DB: db, Repo: r}
}

// ListForArticle returns the comments of an article, most recent first.
// The article's existence is verified first: a missing article yields
// ErrArticleNotFound, while an existing article with no comments returns
// an empty slice.
func (s *CommentService) ListForArticle(ctx context.Context, articleID int64) ([]domain.Comment, error) {
	if err := s.Repo.ArticleExists(ctx, s.DB, articleID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return s.Repo.ListArticleComments(ctx, s.DB, articleID)
}

// Create posts a comment on an article and returns the persisted row with
// its generated id, timestamp, and default vote count.
//
// Semantics and validation:
//   - username and body are required; a blank value yields ErrMissingField.
//   - articleID must exist; otherwise ErrArticleNotFound.
//   - username must reference an existing user; the store's foreign-key
//     check rejects unknown authors and the raw violation is propagated.
//
// The existence check and the insert are two independent round-trips;
// existence is a precondition here, not a multi-row invariant, so no
// transaction spans them.
func (s *CommentService) Create(ctx context.Context, articleID int64, username, body string) (*domain.Comment, error) {
	if username == "" || body == "" {
		return nil, ErrMissingField
	}
	if err := s.Repo.ArticleExists(ctx, s.DB, articleID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return s.Repo.CreateComment(ctx, s.DB, articleID, username, body)
}

// Delete removes a comment by id, returning ErrCommentNotFound when no row
// was deleted.
func (s *CommentService) Delete(ctx context.Context, id int64) error {
	if err := s.Repo.DeleteComment(ctx, s.DB, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	return nil
}
