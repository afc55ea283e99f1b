package repository

import (
	"context"
	"errors"
	"fmt"

	"narration-server/internal/models"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// Compile-time check to ensure pgStoryRepository implements StoryRepository
var _ StoryRepository = (*pgStoryRepository)(nil)

type pgStoryRepository struct {
	db     DBTX
	logger *zap.Logger
}

// NewPgStoryRepository creates a new PostgreSQL-backed StoryRepository.
func NewPgStoryRepository(db DBTX, logger *zap.Logger) StoryRepository {
	return &pgStoryRepository{
		db:     db,
		logger: logger.Named("PgStoryRepo"),
	}
}

func (r *pgStoryRepository) Count(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM stories`
	var count int
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.logger.Error("Failed to count stories", zap.Error(err))
		return 0, fmt.Errorf("failed to count stories: %w", err)
	}
	return count, nil
}

func (r *pgStoryRepository) List(ctx context.Context, limit, offset int, sort models.SortOrder) ([]models.StorySummary, error) {
	direction := "ASC"
	if sort == models.SortDesc {
		direction = "DESC"
	}
	// direction is derived from the SortOrder enum, never from raw input.
	query := fmt.Sprintf(`SELECT id, title, slug FROM stories ORDER BY title %s LIMIT $1 OFFSET $2`, direction)
	r.logger.Debug("Executing query", zap.String("query", query), zap.Int("limit", limit), zap.Int("offset", offset))

	summaries := make([]models.StorySummary, 0, limit)
	if err := pgxscan.Select(ctx, r.db, &summaries, query, limit, offset); err != nil {
		r.logger.Error("Failed to list stories", zap.Error(err))
		return nil, fmt.Errorf("failed to list stories: %w", err)
	}
	return summaries, nil
}

func (r *pgStoryRepository) GetBySlug(ctx context.Context, slug string) (*models.Story, error) {
	query := `SELECT id, title, slug, content, version, updated_at FROM stories WHERE slug = $1`
	story := &models.Story{}
	err := r.db.QueryRow(ctx, query, slug).Scan(&story.ID, &story.Title, &story.Slug, &story.Content, &story.Version, &story.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug("Story not found by slug", zap.String("slug", slug))
			return nil, models.ErrStoryNotFound
		}
		r.logger.Error("Failed to get story by slug", zap.Error(err), zap.String("slug", slug))
		return nil, fmt.Errorf("failed to get story by slug: %w", err)
	}
	return story, nil
}

func (r *pgStoryRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM stories WHERE id = $1)`
	var exists bool
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		r.logger.Error("Failed to check story existence", zap.Error(err), zap.String("storyID", id.String()))
		return false, fmt.Errorf("failed to check story existence: %w", err)
	}
	return exists, nil
}
