package repository

import (
	"context"
	"fmt"

	"narration-server/internal/models"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Compile-time check to ensure pgGenerationLogRepository implements GenerationLogRepository
var _ GenerationLogRepository = (*pgGenerationLogRepository)(nil)

type pgGenerationLogRepository struct {
	db     DBTX
	logger *zap.Logger
}

// NewPgGenerationLogRepository creates a new PostgreSQL-backed GenerationLogRepository.
func NewPgGenerationLogRepository(db DBTX, logger *zap.Logger) GenerationLogRepository {
	return &pgGenerationLogRepository{
		db:     db,
		logger: logger.Named("PgGenerationLogRepo"),
	}
}

func (r *pgGenerationLogRepository) ListByGenerationID(ctx context.Context, generationID uuid.UUID, limit, offset int) ([]models.GenerationLog, int, error) {
	countQuery := `SELECT COUNT(*) FROM generation_logs WHERE generation_id = $1`
	var total int
	if err := r.db.QueryRow(ctx, countQuery, generationID).Scan(&total); err != nil {
		r.logger.Error("Failed to count generation logs", zap.Error(err), zap.String("generationID", generationID.String()))
		return nil, 0, fmt.Errorf("failed to count generation logs: %w", err)
	}

	listQuery := `SELECT id, generation_id, event, occurred_at
	              FROM generation_logs WHERE generation_id = $1
	              ORDER BY occurred_at ASC LIMIT $2 OFFSET $3`
	logs := make([]models.GenerationLog, 0, limit)
	if err := pgxscan.Select(ctx, r.db, &logs, listQuery, generationID, limit, offset); err != nil {
		r.logger.Error("Failed to list generation logs", zap.Error(err), zap.String("generationID", generationID.String()))
		return nil, 0, fmt.Errorf("failed to list generation logs: %w", err)
	}
	return logs, total, nil
}

func (r *pgGenerationLogRepository) Append(ctx context.Context, generationID uuid.UUID, event string) error {
	query := `INSERT INTO generation_logs (generation_id, event) VALUES ($1, $2)`
	if _, err := r.db.Exec(ctx, query, generationID, event); err != nil {
		r.logger.Error("Failed to append generation log", zap.Error(err), zap.String("generationID", generationID.String()), zap.String("event", event))
		return fmt.Errorf("failed to append generation log: %w", err)
	}
	r.logger.Debug("Generation log appended", zap.String("generationID", generationID.String()), zap.String("event", event))
	return nil
}
