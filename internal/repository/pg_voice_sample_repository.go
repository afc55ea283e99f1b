package repository

import (
	"context"
	"errors"
	"fmt"

	"narration-server/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// Compile-time check to ensure pgVoiceSampleRepository implements VoiceSampleRepository
var _ VoiceSampleRepository = (*pgVoiceSampleRepository)(nil)

type pgVoiceSampleRepository struct {
	db     DBTX
	logger *zap.Logger
}

// NewPgVoiceSampleRepository creates a new PostgreSQL-backed VoiceSampleRepository.
func NewPgVoiceSampleRepository(db DBTX, logger *zap.Logger) VoiceSampleRepository {
	return &pgVoiceSampleRepository{
		db:     db,
		logger: logger.Named("PgVoiceSampleRepo"),
	}
}

const voiceSampleColumns = `id, user_id, elevenlabs_voice_id, verification_phrase, verified, created_at`

func (r *pgVoiceSampleRepository) scanSample(row pgx.Row) (*models.VoiceSample, error) {
	sample := &models.VoiceSample{}
	err := row.Scan(&sample.ID, &sample.UserID, &sample.ElevenLabsVoiceID, &sample.VerificationPhrase, &sample.Verified, &sample.CreatedAt)
	if err != nil {
		return nil, err
	}
	return sample, nil
}

func (r *pgVoiceSampleRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.VoiceSample, error) {
	query := `SELECT ` + voiceSampleColumns + ` FROM voice_samples WHERE user_id = $1`
	sample, err := r.scanSample(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrVoiceSampleNotFound
		}
		r.logger.Error("Failed to get voice sample by user", zap.Error(err), zap.String("userID", userID.String()))
		return nil, fmt.Errorf("failed to get voice sample by user: %w", err)
	}
	return sample, nil
}

func (r *pgVoiceSampleRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.VoiceSample, error) {
	query := `SELECT ` + voiceSampleColumns + ` FROM voice_samples WHERE id = $1`
	sample, err := r.scanSample(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug("Voice sample not found", zap.String("sampleID", id.String()))
			return nil, models.ErrVoiceSampleNotFound
		}
		r.logger.Error("Failed to get voice sample by id", zap.Error(err), zap.String("sampleID", id.String()))
		return nil, fmt.Errorf("failed to get voice sample by id: %w", err)
	}
	return sample, nil
}

func (r *pgVoiceSampleRepository) Create(ctx context.Context, sample *models.VoiceSample) error {
	query := `INSERT INTO voice_samples (user_id, elevenlabs_voice_id, verification_phrase, verified)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id, created_at`
	err := r.db.QueryRow(ctx, query, sample.UserID, sample.ElevenLabsVoiceID, sample.VerificationPhrase, sample.Verified).
		Scan(&sample.ID, &sample.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505 is unique_violation: the voice_samples_user_id_key constraint
		// holds the one-sample-per-user invariant even under concurrent inserts.
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			r.logger.Warn("Attempted to create duplicate voice sample", zap.String("userID", sample.UserID.String()), zap.String("constraint", pgErr.ConstraintName))
			return models.ErrVoiceSampleExists
		}
		r.logger.Error("Failed to create voice sample", zap.Error(err), zap.String("userID", sample.UserID.String()))
		return fmt.Errorf("failed to create voice sample: %w", err)
	}
	r.logger.Info("Voice sample created", zap.String("sampleID", sample.ID.String()), zap.String("userID", sample.UserID.String()))
	return nil
}

func (r *pgVoiceSampleRepository) UpdateVerified(ctx context.Context, id uuid.UUID, verified bool) (*models.VoiceSample, error) {
	query := `UPDATE voice_samples SET verified = $2 WHERE id = $1 RETURNING ` + voiceSampleColumns
	sample, err := r.scanSample(r.db.QueryRow(ctx, query, id, verified))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrVoiceSampleNotFound
		}
		r.logger.Error("Failed to update voice sample verification", zap.Error(err), zap.String("sampleID", id.String()))
		return nil, fmt.Errorf("failed to update voice sample verification: %w", err)
	}
	r.logger.Info("Voice sample verification updated", zap.String("sampleID", id.String()), zap.Bool("verified", verified))
	return sample, nil
}
