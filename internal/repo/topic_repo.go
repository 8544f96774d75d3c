// Package repo implements the data persistence layer for the news content
// model, backed by GORM. This file provides repository functions for the
// Topic model.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-news-backend/internal/domain"
)

// ListTopics returns all topics ordered by slug.
func ListTopics(ctx context.Context, db *gorm.DB) ([]domain.Topic, error) {
	out := []domain.Topic{}
	err := db.WithContext(ctx).Order("slug ASC").Find(&out).Error
	return out, err
}

// TopicExists reports whether a topic row exists for slug. It returns
// ErrNotFound when absent, letting callers distinguish "topic has no
// articles" from "no such topic".
func TopicExists(ctx context.Context, db *gorm.DB, slug string) error {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.Topic{}).
		Where("slug = ?", slug).
		Count(&n).Error
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
