package service

import (
	"context"
	"errors"

	"narration-server/internal/models"
	"narration-server/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EventGenerationRequested is the log event appended when a narration job is
// requested. The worker appends the rest of the lifecycle events.
const EventGenerationRequested = "generation_requested"

// StoryGenerationService manages the narration job lifecycle on behalf of the
// requesting user. Status transitions past pending belong to the worker; this
// service creates jobs, lists them and guards deletion.
type StoryGenerationService interface {
	// Initiate verifies the story exists and inserts a pending generation
	// owned by userID. The inserted row is the worker's work item.
	Initiate(ctx context.Context, userID, storyID uuid.UUID) (*models.StoryGeneration, error)
	// List returns a page of the user's generations, newest first, optionally
	// filtered by status.
	List(ctx context.Context, userID uuid.UUID, page, pageSize int, status *models.GenerationStatus) ([]models.StoryGeneration, models.PaginationMeta, error)
	// GetByID returns the generation scoped to id and owner.
	GetByID(ctx context.Context, userID, generationID uuid.UUID) (*models.StoryGeneration, error)
	// Remove deletes the generation unless it is in progress.
	Remove(ctx context.Context, userID, generationID uuid.UUID) error
}

type storyGenerationServiceImpl struct {
	generationRepo repository.StoryGenerationRepository
	storyRepo      repository.StoryRepository
	logRepo        repository.GenerationLogRepository
	logger         *zap.Logger
}

// NewStoryGenerationService creates a new instance of StoryGenerationService.
func NewStoryGenerationService(
	generationRepo repository.StoryGenerationRepository,
	storyRepo repository.StoryRepository,
	logRepo repository.GenerationLogRepository,
	logger *zap.Logger,
) StoryGenerationService {
	return &storyGenerationServiceImpl{
		generationRepo: generationRepo,
		storyRepo:      storyRepo,
		logRepo:        logRepo,
		logger:         logger.Named("StoryGenerationService"),
	}
}

func (s *storyGenerationServiceImpl) Initiate(ctx context.Context, userID, storyID uuid.UUID) (*models.StoryGeneration, error) {
	log := s.logger.With(zap.String("userID", userID.String()), zap.String("storyID", storyID.String()))

	exists, err := s.storyRepo.Exists(ctx, storyID)
	if err != nil {
		log.Error("Failed to verify story existence", zap.Error(err))
		return nil, models.ErrInternalServer
	}
	if !exists {
		log.Warn("Story not found for generation request")
		return nil, models.ErrStoryNotFound
	}

	gen := &models.StoryGeneration{
		StoryID:  storyID,
		UserID:   userID,
		Status:   models.GenerationStatusPending,
		Progress: 0,
	}
	if err := s.generationRepo.Create(ctx, gen); err != nil {
		log.Error("Failed to create story generation", zap.Error(err))
		return nil, models.ErrInternalServer
	}

	// Best effort: the job itself is the inserted row, the log entry is
	// bookkeeping for operators.
	if err := s.logRepo.Append(ctx, gen.ID, EventGenerationRequested); err != nil {
		log.Warn("Failed to append generation_requested log", zap.Error(err), zap.String("generationID", gen.ID.String()))
	}

	log.Info("Story generation initiated", zap.String("generationID", gen.ID.String()))
	return gen, nil
}

func (s *storyGenerationServiceImpl) List(ctx context.Context, userID uuid.UUID, page, pageSize int, status *models.GenerationStatus) ([]models.StoryGeneration, models.PaginationMeta, error) {
	log := s.logger.With(zap.String("userID", userID.String()), zap.Int("page", page), zap.Int("pageSize", pageSize))

	offset := (page - 1) * pageSize
	meta := models.PaginationMeta{Page: page, PageSize: pageSize}

	generations, total, err := s.generationRepo.List(ctx, userID, pageSize, offset, status)
	if err != nil {
		log.Error("Failed to list story generations", zap.Error(err))
		return nil, meta, models.ErrInternalServer
	}
	meta.Total = total

	log.Debug("Listed story generations", zap.Int("count", len(generations)), zap.Int("total", total))
	return generations, meta, nil
}

func (s *storyGenerationServiceImpl) GetByID(ctx context.Context, userID, generationID uuid.UUID) (*models.StoryGeneration, error) {
	gen, err := s.generationRepo.GetByID(ctx, generationID, userID)
	if err != nil {
		if errors.Is(err, models.ErrGenerationNotFound) {
			return nil, models.ErrGenerationNotFound
		}
		s.logger.Error("Failed to get story generation", zap.Error(err), zap.String("generationID", generationID.String()))
		return nil, models.ErrInternalServer
	}
	return gen, nil
}

func (s *storyGenerationServiceImpl) Remove(ctx context.Context, userID, generationID uuid.UUID) error {
	log := s.logger.With(zap.String("userID", userID.String()), zap.String("generationID", generationID.String()))

	gen, err := s.generationRepo.GetByID(ctx, generationID, userID)
	if err != nil {
		if errors.Is(err, models.ErrGenerationNotFound) {
			return models.ErrGenerationNotFound
		}
		log.Error("Failed to fetch generation before delete", zap.Error(err))
		return models.ErrInternalServer
	}
	if gen.Status == models.GenerationStatusInProgress {
		log.Warn("Refusing to delete in-progress generation")
		return models.ErrGenerationInProgress
	}

	deleted, err := s.generationRepo.DeleteIfNotInProgress(ctx, generationID, userID)
	if err != nil {
		log.Error("Failed to delete generation", zap.Error(err))
		return models.ErrInternalServer
	}
	if !deleted {
		// The delete statement excludes in_progress rows, so losing the race
		// against a worker transition surfaces here, not as a silent delete.
		if _, err := s.generationRepo.GetByID(ctx, generationID, userID); err == nil {
			log.Warn("Generation moved to in_progress before delete")
			return models.ErrGenerationInProgress
		}
		return models.ErrGenerationNotFound
	}

	log.Info("Story generation removed")
	return nil
}
