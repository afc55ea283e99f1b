package mocks

import (
	"context"

	"narration-server/internal/models"
	"narration-server/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Mock StoryService
type StoryService struct {
	mock.Mock
}

func (m *StoryService) ListStories(ctx context.Context, page, pageSize int, sort models.SortOrder) ([]models.StorySummary, models.PaginationMeta, error) {
	args := m.Called(ctx, page, pageSize, sort)
	stories, _ := args.Get(0).([]models.StorySummary)
	meta, _ := args.Get(1).(models.PaginationMeta)
	return stories, meta, args.Error(2)
}
func (m *StoryService) GetStoryBySlug(ctx context.Context, slug string) (*models.Story, error) {
	args := m.Called(ctx, slug)
	story, _ := args.Get(0).(*models.Story)
	return story, args.Error(1)
}

// Mock StoryGenerationService
type StoryGenerationService struct {
	mock.Mock
}

func (m *StoryGenerationService) Initiate(ctx context.Context, userID, storyID uuid.UUID) (*models.StoryGeneration, error) {
	args := m.Called(ctx, userID, storyID)
	gen, _ := args.Get(0).(*models.StoryGeneration)
	return gen, args.Error(1)
}
func (m *StoryGenerationService) List(ctx context.Context, userID uuid.UUID, page, pageSize int, status *models.GenerationStatus) ([]models.StoryGeneration, models.PaginationMeta, error) {
	args := m.Called(ctx, userID, page, pageSize, status)
	generations, _ := args.Get(0).([]models.StoryGeneration)
	meta, _ := args.Get(1).(models.PaginationMeta)
	return generations, meta, args.Error(2)
}
func (m *StoryGenerationService) GetByID(ctx context.Context, userID, generationID uuid.UUID) (*models.StoryGeneration, error) {
	args := m.Called(ctx, userID, generationID)
	gen, _ := args.Get(0).(*models.StoryGeneration)
	return gen, args.Error(1)
}
func (m *StoryGenerationService) Remove(ctx context.Context, userID, generationID uuid.UUID) error {
	args := m.Called(ctx, userID, generationID)
	return args.Error(0)
}

// Mock GenerationLogService
type GenerationLogService struct {
	mock.Mock
}

func (m *GenerationLogService) GetLogsByGenerationID(ctx context.Context, generationID uuid.UUID, page, pageSize int) ([]models.GenerationLog, models.PaginationMeta, error) {
	args := m.Called(ctx, generationID, page, pageSize)
	logs, _ := args.Get(0).([]models.GenerationLog)
	meta, _ := args.Get(1).(models.PaginationMeta)
	return logs, meta, args.Error(2)
}
func (m *GenerationLogService) Append(ctx context.Context, generationID uuid.UUID, event string) error {
	args := m.Called(ctx, generationID, event)
	return args.Error(0)
}

// Mock VoiceSampleService
type VoiceSampleService struct {
	mock.Mock
}

func (m *VoiceSampleService) GetRandomPhrase() string {
	args := m.Called()
	return args.String(0)
}
func (m *VoiceSampleService) CreateVoiceSample(ctx context.Context, userID uuid.UUID, cmd service.CreateVoiceSampleCommand) (*models.VoiceSample, error) {
	args := m.Called(ctx, userID, cmd)
	sample, _ := args.Get(0).(*models.VoiceSample)
	return sample, args.Error(1)
}
func (m *VoiceSampleService) VerifyVoiceSample(ctx context.Context, userID, sampleID uuid.UUID, verified bool) (*models.VoiceSample, error) {
	args := m.Called(ctx, userID, sampleID, verified)
	sample, _ := args.Get(0).(*models.VoiceSample)
	return sample, args.Error(1)
}
