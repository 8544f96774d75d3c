// Package services – ArticleService
//
// This file implements the ArticleService, which covers article listing
// (with optional topic filter and client-selected ordering), single-article
// retrieval, and the vote increment operation. Listing parameters are
// validated against the repository allow-lists before any query is built,
// so unsupported sort columns or order tokens never reach the store.
//
// Service-level errors (e.g. ErrInvalidSort, ErrTopicNotFound) are returned
// for predictable cases so handlers can map them to HTTP results
// consistently.
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tbourn/go-news-backend/internal/domain"
	"github.com/tbourn/go-news-backend/internal/repo"
)

// ArticleRepo defines the repository contract required by ArticleService.
type ArticleRepo interface {
	// ListArticles returns articles with comment counts, optionally filtered
	// by topic and ordered by an allow-listed column and direction.
	ListArticles(ctx context.Context, db *gorm.DB, topic, sortBy, order string) ([]domain.Article, error)

	// GetArticle fetches a single article (with comment count) by id.
	GetArticle(ctx context.Context, db *gorm.DB, id int64) (*domain.Article, error)

	// IncrementVotes atomically applies votes += delta and returns the row.
	IncrementVotes(ctx context.Context, db *gorm.DB, id int64, delta int) (*domain.Article, error)

	// TopicExists returns repo.ErrNotFound when slug has no topic row.
	TopicExists(ctx context.Context, db *gorm.DB, slug string) error
}

// ArticleService provides read and vote-update operations on articles.
type ArticleService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the article repository used by this service.
	Repo ArticleRepo
}

// NewArticleService constructs an ArticleService.
func NewArticleService(db *gorm.DB, r ArticleRepo) *ArticleService {
	return &ArticleService{DB: db, Repo: r}
}

// List returns articles filtered and ordered per the request parameters.
//
// Validation happens before any query is issued: an order token outside
// asc|desc yields ErrInvalidOrder and a sort column outside the allow-list
// yields ErrInvalidSort. When a topic filter is present the topic's
// existence is checked first, so an unknown slug yields ErrTopicNotFound
// while an existing topic with no articles returns an empty slice.
func (s *ArticleService) List(ctx context.Context, topic, sortBy, order string) ([]domain.Article, error) {
	if order != "" && !repo.ValidOrder(order) {
		return nil, ErrInvalidOrder
	}
	if sortBy != "" && !repo.ValidSortColumn(sortBy) {
		return nil, ErrInvalidSort
	}
	if topic != "" {
		if err := s.Repo.TopicExists(ctx, s.DB, topic); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return nil, ErrTopicNotFound
			}
			return nil, err
		}
	}
	return s.Repo.ListArticles(ctx, s.DB, topic, sortBy, order)
}

// Get returns the article with the given id, or ErrArticleNotFound.
func (s *ArticleService) Get(ctx context.Context, id int64) (*domain.Article, error) {
	a, err := s.Repo.GetArticle(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return a, nil
}

// IncrementVotes applies votes += delta to the article and returns the
// updated row. Delta may be negative and repeated calls keep accumulating;
// the operation is deliberately not idempotent. Returns ErrArticleNotFound
// when the id has no row.
func (s *ArticleService) IncrementVotes(ctx context.Context, id int64, delta int) (*domain.Article, error) {
	a, err := s.Repo.IncrementVotes(ctx, s.DB, id, delta)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return a, nil
}
