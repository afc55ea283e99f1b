package service

import (
	"context"

	"narration-server/internal/models"
	"narration-server/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GenerationLogService reads worker events for a generation. It performs no
// ownership checks; callers must confirm the generation belongs to the
// requester first.
type GenerationLogService interface {
	// GetLogsByGenerationID returns a page of log entries ordered by
	// occurred_at ascending. An empty page is a valid outcome.
	GetLogsByGenerationID(ctx context.Context, generationID uuid.UUID, page, pageSize int) ([]models.GenerationLog, models.PaginationMeta, error)
	// Append records a worker event for the generation.
	Append(ctx context.Context, generationID uuid.UUID, event string) error
}

type generationLogServiceImpl struct {
	logRepo repository.GenerationLogRepository
	logger  *zap.Logger
}

// NewGenerationLogService creates a new instance of GenerationLogService.
func NewGenerationLogService(logRepo repository.GenerationLogRepository, logger *zap.Logger) GenerationLogService {
	return &generationLogServiceImpl{
		logRepo: logRepo,
		logger:  logger.Named("GenerationLogService"),
	}
}

func (s *generationLogServiceImpl) GetLogsByGenerationID(ctx context.Context, generationID uuid.UUID, page, pageSize int) ([]models.GenerationLog, models.PaginationMeta, error) {
	log := s.logger.With(zap.String("generationID", generationID.String()), zap.Int("page", page), zap.Int("pageSize", pageSize))

	offset := (page - 1) * pageSize
	meta := models.PaginationMeta{Page: page, PageSize: pageSize}

	logs, total, err := s.logRepo.ListByGenerationID(ctx, generationID, pageSize, offset)
	if err != nil {
		log.Error("Failed to fetch generation logs", zap.Error(err))
		return nil, meta, models.ErrInternalServer
	}
	meta.Total = total

	log.Debug("Fetched generation logs", zap.Int("count", len(logs)), zap.Int("total", total))
	return logs, meta, nil
}

func (s *generationLogServiceImpl) Append(ctx context.Context, generationID uuid.UUID, event string) error {
	if err := s.logRepo.Append(ctx, generationID, event); err != nil {
		s.logger.Error("Failed to append generation log", zap.Error(err), zap.String("generationID", generationID.String()))
		return models.ErrInternalServer
	}
	return nil
}
