// Package services – TopicService
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-news-backend/internal/domain"
	"github.com/tbourn/go-news-backend/internal/repo"
)

// TopicService exposes read access to topics. Topics are immutable through
// the API, so the service is a thin pass-through over the repository.
type TopicService struct {
	// DB is the database handle used for all topic reads.
	DB *gorm.DB
}

// List returns all topics.
func (s *TopicService) List(ctx context.Context) ([]domain.Topic, error) {
	return repo.ListTopics(ctx, s.DB)
}
