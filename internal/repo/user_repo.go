// Package repo implements the data persistence layer for the news content
// model, backed by GORM. This file provides repository functions for the
// User model. Users are read-only through the API.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-news-backend/internal/domain"
)

// ListUsers returns all users ordered by username.
func ListUsers(ctx context.Context, db *gorm.DB) ([]domain.User, error) {
	out := []domain.User{}
	err := db.WithContext(ctx).Order("username ASC").Find(&out).Error
	return out, err
}
