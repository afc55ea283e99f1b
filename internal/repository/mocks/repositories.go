package mocks

import (
	"context"

	"narration-server/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Mock StoryRepository
type StoryRepository struct {
	mock.Mock
}

func (m *StoryRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
func (m *StoryRepository) List(ctx context.Context, limit, offset int, sort models.SortOrder) ([]models.StorySummary, error) {
	args := m.Called(ctx, limit, offset, sort)
	summaries, _ := args.Get(0).([]models.StorySummary)
	return summaries, args.Error(1)
}
func (m *StoryRepository) GetBySlug(ctx context.Context, slug string) (*models.Story, error) {
	args := m.Called(ctx, slug)
	story, _ := args.Get(0).(*models.Story)
	return story, args.Error(1)
}
func (m *StoryRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// Mock StoryGenerationRepository
type StoryGenerationRepository struct {
	mock.Mock
}

func (m *StoryGenerationRepository) Create(ctx context.Context, gen *models.StoryGeneration) error {
	args := m.Called(ctx, gen)
	return args.Error(0)
}
func (m *StoryGenerationRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.StoryGeneration, error) {
	args := m.Called(ctx, id, userID)
	gen, _ := args.Get(0).(*models.StoryGeneration)
	return gen, args.Error(1)
}
func (m *StoryGenerationRepository) List(ctx context.Context, userID uuid.UUID, limit, offset int, status *models.GenerationStatus) ([]models.StoryGeneration, int, error) {
	args := m.Called(ctx, userID, limit, offset, status)
	generations, _ := args.Get(0).([]models.StoryGeneration)
	return generations, args.Int(1), args.Error(2)
}
func (m *StoryGenerationRepository) DeleteIfNotInProgress(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, id, userID)
	return args.Bool(0), args.Error(1)
}

// Mock GenerationLogRepository
type GenerationLogRepository struct {
	mock.Mock
}

func (m *GenerationLogRepository) ListByGenerationID(ctx context.Context, generationID uuid.UUID, limit, offset int) ([]models.GenerationLog, int, error) {
	args := m.Called(ctx, generationID, limit, offset)
	logs, _ := args.Get(0).([]models.GenerationLog)
	return logs, args.Int(1), args.Error(2)
}
func (m *GenerationLogRepository) Append(ctx context.Context, generationID uuid.UUID, event string) error {
	args := m.Called(ctx, generationID, event)
	return args.Error(0)
}

// Mock VoiceSampleRepository
type VoiceSampleRepository struct {
	mock.Mock
}

func (m *VoiceSampleRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.VoiceSample, error) {
	args := m.Called(ctx, userID)
	sample, _ := args.Get(0).(*models.VoiceSample)
	return sample, args.Error(1)
}
func (m *VoiceSampleRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.VoiceSample, error) {
	args := m.Called(ctx, id)
	sample, _ := args.Get(0).(*models.VoiceSample)
	return sample, args.Error(1)
}
func (m *VoiceSampleRepository) Create(ctx context.Context, sample *models.VoiceSample) error {
	args := m.Called(ctx, sample)
	return args.Error(0)
}
func (m *VoiceSampleRepository) UpdateVerified(ctx context.Context, id uuid.UUID, verified bool) (*models.VoiceSample, error) {
	args := m.Called(ctx, id, verified)
	sample, _ := args.Get(0).(*models.VoiceSample)
	return sample, args.Error(1)
}
