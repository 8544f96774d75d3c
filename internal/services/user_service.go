// Package services – UserService
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-news-backend/internal/domain"
	"github.com/tbourn/go-news-backend/internal/repo"
)

// UserService exposes read access to users. Accounts are provisioned out of
// band, so the service is a thin pass-through over the repository.
type UserService struct {
	// DB is the database handle used for all user reads.
	DB *gorm.DB
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return repo.ListUsers(ctx, s.DB)
}
