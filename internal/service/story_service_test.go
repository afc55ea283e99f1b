package service

import (
	"context"
	"errors"
	"testing"

	"narration-server/internal/models"
	"narration-server/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStoryService_ListStories(t *testing.T) {
	ctx := context.Background()

	t.Run("returns page with exact total", func(t *testing.T) {
		storyRepo := new(mocks.StoryRepository)
		svc := NewStoryService(storyRepo, zap.NewNop())

		summaries := []models.StorySummary{
			{Title: "Bear in the Forest", Slug: "bear-in-the-forest"},
		}
		storyRepo.On("Count", ctx).Return(3, nil)
		// page=2, pageSize=1 means offset 1
		storyRepo.On("List", ctx, 1, 1, models.SortDesc).Return(summaries, nil)

		stories, meta, err := svc.ListStories(ctx, 2, 1, models.SortDesc)

		require.NoError(t, err)
		assert.Equal(t, summaries, stories)
		assert.Equal(t, models.PaginationMeta{Page: 2, PageSize: 1, Total: 3}, meta)
		storyRepo.AssertExpectations(t)
	})

	t.Run("count failure collapses to internal error", func(t *testing.T) {
		storyRepo := new(mocks.StoryRepository)
		svc := NewStoryService(storyRepo, zap.NewNop())

		storyRepo.On("Count", ctx).Return(0, errors.New("connection reset"))

		_, _, err := svc.ListStories(ctx, 1, 10, models.SortAsc)

		assert.ErrorIs(t, err, models.ErrInternalServer)
		storyRepo.AssertNotCalled(t, "List")
	})

	t.Run("list failure collapses to internal error", func(t *testing.T) {
		storyRepo := new(mocks.StoryRepository)
		svc := NewStoryService(storyRepo, zap.NewNop())

		storyRepo.On("Count", ctx).Return(5, nil)
		storyRepo.On("List", ctx, 10, 0, models.SortAsc).Return(nil, errors.New("boom"))

		_, _, err := svc.ListStories(ctx, 1, 10, models.SortAsc)

		assert.ErrorIs(t, err, models.ErrInternalServer)
	})
}

func TestStoryService_GetStoryBySlug(t *testing.T) {
	ctx := context.Background()

	t.Run("returns story when found", func(t *testing.T) {
		storyRepo := new(mocks.StoryRepository)
		svc := NewStoryService(storyRepo, zap.NewNop())

		story := &models.Story{Title: "Honey Pot", Slug: "honey-pot"}
		storyRepo.On("GetBySlug", ctx, "honey-pot").Return(story, nil)

		got, err := svc.GetStoryBySlug(ctx, "honey-pot")

		require.NoError(t, err)
		assert.Equal(t, story, got)
	})

	t.Run("missing slug returns nil without error", func(t *testing.T) {
		storyRepo := new(mocks.StoryRepository)
		svc := NewStoryService(storyRepo, zap.NewNop())

		storyRepo.On("GetBySlug", ctx, "no-such-story").Return(nil, models.ErrStoryNotFound)

		got, err := svc.GetStoryBySlug(ctx, "no-such-story")

		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("store failure collapses to internal error", func(t *testing.T) {
		storyRepo := new(mocks.StoryRepository)
		svc := NewStoryService(storyRepo, zap.NewNop())

		storyRepo.On("GetBySlug", ctx, "honey-pot").Return(nil, errors.New("timeout"))

		got, err := svc.GetStoryBySlug(ctx, "honey-pot")

		assert.Nil(t, got)
		assert.ErrorIs(t, err, models.ErrInternalServer)
	})
}
