package repository

import (
	"context"

	"narration-server/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX abstracts the pgx query surface so repositories accept either a
// *pgxpool.Pool or a pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// StoryRepository reads the story library.
type StoryRepository interface {
	// Count returns the total number of stories.
	Count(ctx context.Context) (int, error)
	// List returns a window of story summaries ordered by title.
	List(ctx context.Context, limit, offset int, sort models.SortOrder) ([]models.StorySummary, error)
	// GetBySlug returns the story with the given slug or models.ErrStoryNotFound.
	GetBySlug(ctx context.Context, slug string) (*models.Story, error)
	// Exists reports whether a story with the given id exists.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// StoryGenerationRepository manages narration job rows. All reads and writes
// except Create are scoped to the owning user.
type StoryGenerationRepository interface {
	Create(ctx context.Context, gen *models.StoryGeneration) error
	// GetByID returns the generation scoped to id and owner, or
	// models.ErrGenerationNotFound.
	GetByID(ctx context.Context, id, userID uuid.UUID) (*models.StoryGeneration, error)
	// List returns a window of the user's generations ordered by created_at
	// descending, optionally filtered by status, plus the exact total.
	List(ctx context.Context, userID uuid.UUID, limit, offset int, status *models.GenerationStatus) ([]models.StoryGeneration, int, error)
	// DeleteIfNotInProgress deletes the generation unless its status is
	// in_progress. Returns false when no row was deleted, either because the
	// row is absent or because the status predicate did not hold.
	DeleteIfNotInProgress(ctx context.Context, id, userID uuid.UUID) (bool, error)
}

// GenerationLogRepository reads and appends worker events. Log rows are never
// updated or deleted.
type GenerationLogRepository interface {
	// ListByGenerationID returns a window of log rows ordered by occurred_at
	// ascending, plus the exact total. An empty window is not an error.
	ListByGenerationID(ctx context.Context, generationID uuid.UUID, limit, offset int) ([]models.GenerationLog, int, error)
	Append(ctx context.Context, generationID uuid.UUID, event string) error
}

// VoiceSampleRepository manages cloned voice registrations.
type VoiceSampleRepository interface {
	// GetByUserID returns the user's sample or models.ErrVoiceSampleNotFound.
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.VoiceSample, error)
	// GetByID returns the sample with the given id regardless of owner, or
	// models.ErrVoiceSampleNotFound. Ownership is the service's concern.
	GetByID(ctx context.Context, id uuid.UUID) (*models.VoiceSample, error)
	// Create inserts the sample. A concurrent insert for the same user trips
	// the user_id uniqueness constraint and maps to models.ErrVoiceSampleExists.
	Create(ctx context.Context, sample *models.VoiceSample) error
	// UpdateVerified sets the verified flag and returns the updated sample, or
	// models.ErrVoiceSampleNotFound.
	UpdateVerified(ctx context.Context, id uuid.UUID, verified bool) (*models.VoiceSample, error)
}
