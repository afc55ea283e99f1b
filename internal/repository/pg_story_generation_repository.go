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

// Compile-time check to ensure pgStoryGenerationRepository implements StoryGenerationRepository
var _ StoryGenerationRepository = (*pgStoryGenerationRepository)(nil)

type pgStoryGenerationRepository struct {
	db     DBTX
	logger *zap.Logger
}

// NewPgStoryGenerationRepository creates a new PostgreSQL-backed StoryGenerationRepository.
func NewPgStoryGenerationRepository(db DBTX, logger *zap.Logger) StoryGenerationRepository {
	return &pgStoryGenerationRepository{
		db:     db,
		logger: logger.Named("PgStoryGenerationRepo"),
	}
}

func (r *pgStoryGenerationRepository) Create(ctx context.Context, gen *models.StoryGeneration) error {
	query := `INSERT INTO story_generations (story_id, user_id, status, progress, metadata)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id, created_at, updated_at`
	r.logger.Debug("Executing query", zap.String("query", query), zap.String("storyID", gen.StoryID.String()), zap.String("userID", gen.UserID.String()))
	err := r.db.QueryRow(ctx, query, gen.StoryID, gen.UserID, gen.Status, gen.Progress, gen.Metadata).
		Scan(&gen.ID, &gen.CreatedAt, &gen.UpdatedAt)
	if err != nil {
		r.logger.Error("Failed to create story generation", zap.Error(err), zap.String("storyID", gen.StoryID.String()))
		return fmt.Errorf("failed to create story generation: %w", err)
	}
	r.logger.Info("Story generation created", zap.String("generationID", gen.ID.String()), zap.String("userID", gen.UserID.String()))
	return nil
}

func (r *pgStoryGenerationRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.StoryGeneration, error) {
	query := `SELECT id, story_id, user_id, status, progress, result_url, metadata, created_at, updated_at
	          FROM story_generations WHERE id = $1 AND user_id = $2`
	gen := &models.StoryGeneration{}
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&gen.ID, &gen.StoryID, &gen.UserID, &gen.Status, &gen.Progress,
		&gen.ResultURL, &gen.Metadata, &gen.CreatedAt, &gen.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug("Generation not found or not owned", zap.String("generationID", id.String()), zap.String("userID", userID.String()))
			return nil, models.ErrGenerationNotFound
		}
		r.logger.Error("Failed to get generation by id", zap.Error(err), zap.String("generationID", id.String()))
		return nil, fmt.Errorf("failed to get generation by id: %w", err)
	}
	return gen, nil
}

func (r *pgStoryGenerationRepository) List(ctx context.Context, userID uuid.UUID, limit, offset int, status *models.GenerationStatus) ([]models.StoryGeneration, int, error) {
	countQuery := `SELECT COUNT(*) FROM story_generations WHERE user_id = $1`
	listQuery := `SELECT id, story_id, user_id, status, progress, result_url, metadata, created_at, updated_at
	              FROM story_generations WHERE user_id = $1`
	countArgs := []any{userID}
	listArgs := []any{userID}

	if status != nil {
		countQuery += ` AND status = $2`
		listQuery += ` AND status = $2`
		countArgs = append(countArgs, *status)
		listArgs = append(listArgs, *status)
	}
	listQuery += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(listArgs)+1, len(listArgs)+2)
	listArgs = append(listArgs, limit, offset)

	var total int
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.logger.Error("Failed to count generations", zap.Error(err), zap.String("userID", userID.String()))
		return nil, 0, fmt.Errorf("failed to count generations: %w", err)
	}

	generations := make([]models.StoryGeneration, 0, limit)
	if err := pgxscan.Select(ctx, r.db, &generations, listQuery, listArgs...); err != nil {
		r.logger.Error("Failed to list generations", zap.Error(err), zap.String("userID", userID.String()))
		return nil, 0, fmt.Errorf("failed to list generations: %w", err)
	}
	return generations, total, nil
}

// DeleteIfNotInProgress deletes with the status predicate in the statement so
// a concurrent transition to in_progress cannot slip between check and delete.
func (r *pgStoryGenerationRepository) DeleteIfNotInProgress(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	query := `DELETE FROM story_generations WHERE id = $1 AND user_id = $2 AND status <> $3`
	tag, err := r.db.Exec(ctx, query, id, userID, models.GenerationStatusInProgress)
	if err != nil {
		r.logger.Error("Failed to delete generation", zap.Error(err), zap.String("generationID", id.String()))
		return false, fmt.Errorf("failed to delete generation: %w", err)
	}
	deleted := tag.RowsAffected() > 0
	if deleted {
		r.logger.Info("Story generation deleted", zap.String("generationID", id.String()), zap.String("userID", userID.String()))
	}
	return deleted, nil
}
