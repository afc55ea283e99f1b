package service

import (
	"context"
	"errors"

	"narration-server/internal/models"
	"narration-server/internal/repository"

	"go.uber.org/zap"
)

// StoryService defines read access to the story library.
type StoryService interface {
	// ListStories returns a page of story summaries ordered by title plus
	// pagination metadata with the exact total.
	ListStories(ctx context.Context, page, pageSize int, sort models.SortOrder) ([]models.StorySummary, models.PaginationMeta, error)
	// GetStoryBySlug returns the story or (nil, nil) when no story matches.
	GetStoryBySlug(ctx context.Context, slug string) (*models.Story, error)
}

type storyServiceImpl struct {
	storyRepo repository.StoryRepository
	logger    *zap.Logger
}

// NewStoryService creates a new instance of StoryService.
func NewStoryService(storyRepo repository.StoryRepository, logger *zap.Logger) StoryService {
	return &storyServiceImpl{
		storyRepo: storyRepo,
		logger:    logger.Named("StoryService"),
	}
}

func (s *storyServiceImpl) ListStories(ctx context.Context, page, pageSize int, sort models.SortOrder) ([]models.StorySummary, models.PaginationMeta, error) {
	log := s.logger.With(zap.Int("page", page), zap.Int("pageSize", pageSize), zap.String("sort", string(sort)))

	offset := (page - 1) * pageSize
	meta := models.PaginationMeta{Page: page, PageSize: pageSize}

	total, err := s.storyRepo.Count(ctx)
	if err != nil {
		log.Error("Failed to count stories", zap.Error(err))
		return nil, meta, models.ErrInternalServer
	}
	meta.Total = total

	stories, err := s.storyRepo.List(ctx, pageSize, offset, sort)
	if err != nil {
		log.Error("Failed to list stories", zap.Error(err))
		return nil, meta, models.ErrInternalServer
	}

	log.Debug("Listed stories", zap.Int("count", len(stories)), zap.Int("total", total))
	return stories, meta, nil
}

func (s *storyServiceImpl) GetStoryBySlug(ctx context.Context, slug string) (*models.Story, error) {
	story, err := s.storyRepo.GetBySlug(ctx, slug)
	if err != nil {
		// Absence is a valid outcome here, not an error.
		if errors.Is(err, models.ErrStoryNotFound) {
			return nil, nil
		}
		s.logger.Error("Failed to get story by slug", zap.Error(err), zap.String("slug", slug))
		return nil, models.ErrInternalServer
	}
	return story, nil
}
