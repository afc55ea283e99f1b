package service

import (
	"context"
	"errors"
	"testing"

	"narration-server/internal/models"
	"narration-server/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newGenerationServiceWithMocks() (StoryGenerationService, *mocks.StoryGenerationRepository, *mocks.StoryRepository, *mocks.GenerationLogRepository) {
	generationRepo := new(mocks.StoryGenerationRepository)
	storyRepo := new(mocks.StoryRepository)
	logRepo := new(mocks.GenerationLogRepository)
	svc := NewStoryGenerationService(generationRepo, storyRepo, logRepo, zap.NewNop())
	return svc, generationRepo, storyRepo, logRepo
}

func TestStoryGenerationService_Initiate(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	storyID := uuid.New()

	t.Run("creates pending generation and logs request", func(t *testing.T) {
		svc, generationRepo, storyRepo, logRepo := newGenerationServiceWithMocks()

		storyRepo.On("Exists", ctx, storyID).Return(true, nil)
		generationRepo.On("Create", ctx, mock.MatchedBy(func(g *models.StoryGeneration) bool {
			return g.StoryID == storyID && g.UserID == userID &&
				g.Status == models.GenerationStatusPending && g.Progress == 0
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*models.StoryGeneration).ID = uuid.New()
		}).Return(nil)
		logRepo.On("Append", ctx, mock.Anything, EventGenerationRequested).Return(nil)

		gen, err := svc.Initiate(ctx, userID, storyID)

		require.NoError(t, err)
		assert.Equal(t, models.GenerationStatusPending, gen.Status)
		assert.Equal(t, 0, gen.Progress)
		generationRepo.AssertExpectations(t)
		logRepo.AssertExpectations(t)
	})

	t.Run("missing story", func(t *testing.T) {
		svc, generationRepo, storyRepo, _ := newGenerationServiceWithMocks()

		storyRepo.On("Exists", ctx, storyID).Return(false, nil)

		_, err := svc.Initiate(ctx, userID, storyID)

		assert.ErrorIs(t, err, models.ErrStoryNotFound)
		generationRepo.AssertNotCalled(t, "Create")
	})

	t.Run("log append failure does not fail the request", func(t *testing.T) {
		svc, generationRepo, storyRepo, logRepo := newGenerationServiceWithMocks()

		storyRepo.On("Exists", ctx, storyID).Return(true, nil)
		generationRepo.On("Create", ctx, mock.Anything).Return(nil)
		logRepo.On("Append", ctx, mock.Anything, EventGenerationRequested).Return(errors.New("log table locked"))

		_, err := svc.Initiate(ctx, userID, storyID)

		assert.NoError(t, err)
	})
}

func TestStoryGenerationService_List(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("passes status filter and builds meta", func(t *testing.T) {
		svc, generationRepo, _, _ := newGenerationServiceWithMocks()

		status := models.GenerationStatusCompleted
		rows := []models.StoryGeneration{{ID: uuid.New(), Status: status}}
		generationRepo.On("List", ctx, userID, 10, 10, &status).Return(rows, 11, nil)

		generations, meta, err := svc.List(ctx, userID, 2, 10, &status)

		require.NoError(t, err)
		assert.Equal(t, rows, generations)
		assert.Equal(t, models.PaginationMeta{Page: 2, PageSize: 10, Total: 11}, meta)
	})

	t.Run("store failure collapses to internal error", func(t *testing.T) {
		svc, generationRepo, _, _ := newGenerationServiceWithMocks()

		generationRepo.On("List", ctx, userID, 10, 0, (*models.GenerationStatus)(nil)).
			Return(nil, 0, errors.New("boom"))

		_, _, err := svc.List(ctx, userID, 1, 10, nil)

		assert.ErrorIs(t, err, models.ErrInternalServer)
	})
}

func TestStoryGenerationService_GetByID(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	generationID := uuid.New()

	t.Run("not owned surfaces as not found", func(t *testing.T) {
		svc, generationRepo, _, _ := newGenerationServiceWithMocks()

		generationRepo.On("GetByID", ctx, generationID, userID).Return(nil, models.ErrGenerationNotFound)

		_, err := svc.GetByID(ctx, userID, generationID)

		assert.ErrorIs(t, err, models.ErrGenerationNotFound)
	})
}

func TestStoryGenerationService_Remove(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	generationID := uuid.New()

	t.Run("deletes completed generation", func(t *testing.T) {
		svc, generationRepo, _, _ := newGenerationServiceWithMocks()

		gen := &models.StoryGeneration{ID: generationID, UserID: userID, Status: models.GenerationStatusCompleted}
		generationRepo.On("GetByID", ctx, generationID, userID).Return(gen, nil).Once()
		generationRepo.On("DeleteIfNotInProgress", ctx, generationID, userID).Return(true, nil)

		err := svc.Remove(ctx, userID, generationID)

		assert.NoError(t, err)
		generationRepo.AssertExpectations(t)
	})

	t.Run("refuses to delete in-progress generation", func(t *testing.T) {
		svc, generationRepo, _, _ := newGenerationServiceWithMocks()

		gen := &models.StoryGeneration{ID: generationID, UserID: userID, Status: models.GenerationStatusInProgress}
		generationRepo.On("GetByID", ctx, generationID, userID).Return(gen, nil)

		err := svc.Remove(ctx, userID, generationID)

		assert.ErrorIs(t, err, models.ErrGenerationInProgress)
		generationRepo.AssertNotCalled(t, "DeleteIfNotInProgress")
	})

	t.Run("missing generation", func(t *testing.T) {
		svc, generationRepo, _, _ := newGenerationServiceWithMocks()

		generationRepo.On("GetByID", ctx, generationID, userID).Return(nil, models.ErrGenerationNotFound)

		err := svc.Remove(ctx, userID, generationID)

		assert.ErrorIs(t, err, models.ErrGenerationNotFound)
	})

	t.Run("lost race against worker transition reports conflict", func(t *testing.T) {
		svc, generationRepo, _, _ := newGenerationServiceWithMocks()

		pending := &models.StoryGeneration{ID: generationID, UserID: userID, Status: models.GenerationStatusPending}
		running := &models.StoryGeneration{ID: generationID, UserID: userID, Status: models.GenerationStatusInProgress}
		generationRepo.On("GetByID", ctx, generationID, userID).Return(pending, nil).Once()
		generationRepo.On("DeleteIfNotInProgress", ctx, generationID, userID).Return(false, nil)
		generationRepo.On("GetByID", ctx, generationID, userID).Return(running, nil).Once()

		err := svc.Remove(ctx, userID, generationID)

		assert.ErrorIs(t, err, models.ErrGenerationInProgress)
	})

	t.Run("row gone after failed delete reports not found", func(t *testing.T) {
		svc, generationRepo, _, _ := newGenerationServiceWithMocks()

		pending := &models.StoryGeneration{ID: generationID, UserID: userID, Status: models.GenerationStatusPending}
		generationRepo.On("GetByID", ctx, generationID, userID).Return(pending, nil).Once()
		generationRepo.On("DeleteIfNotInProgress", ctx, generationID, userID).Return(false, nil)
		generationRepo.On("GetByID", ctx, generationID, userID).Return(nil, models.ErrGenerationNotFound).Once()

		err := svc.Remove(ctx, userID, generationID)

		assert.ErrorIs(t, err, models.ErrGenerationNotFound)
	})
}
