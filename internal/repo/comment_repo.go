// Package repo implements the data persistence layer for the news content
// model, backed by GORM. This file provides repository functions for the
// Comment model.
//
// Error semantics match the rest of the package: zero rows where one is
// required surfaces as ErrNotFound, and store-level constraint violations
// (e.g. an insert referencing a missing username) propagate as the raw
// driver error for the service layer to classify.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-news-backend/internal/domain"
)

// ListArticleComments returns the comments for an article, most recent
// first. It returns an empty slice when the article has no comments;
// callers must check article existence separately (see ArticleExists).
func ListArticleComments(ctx context.Context, db *gorm.DB, articleID int64) ([]domain.Comment, error) {
	out := []domain.Comment{}
	err := db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order("created_at DESC, comment_id DESC").
		Find(&out).Error
	return out, err
}

// CreateComment inserts a comment row for articleID authored by username and
// returns the persisted row, including the generated comment_id, the UTC
// creation timestamp, and the default vote count of zero. The store rejects
// the insert with a foreign-key violation when username does not reference
// an existing user.
func CreateComment(ctx context.Context, db *gorm.DB, articleID int64, username, body string) (*domain.Comment, error) {
	c := &domain.Comment{
		ArticleID: articleID,
		Author:    username,
		Body:      body,
		Votes:     0,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteComment removes a comment by id. If no rows are affected, it
// returns ErrNotFound.
func DeleteComment(ctx context.Context, db *gorm.DB, id int64) error {
	res := db.WithContext(ctx).
		Where("comment_id = ?", id).
		Delete(&domain.Comment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
