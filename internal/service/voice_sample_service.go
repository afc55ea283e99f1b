package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"narration-server/internal/clients"
	"narration-server/internal/models"
	"narration-server/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// verificationPhrases are read aloud by users to prove voice-sample
// ownership. Chosen to cover a variety of phonemes.
var verificationPhrases = []string{
	"Jestem misiem o bardzo małym rozumku.",
	"Im bardziej Puchatek zaglądał do środka, tym bardziej Prosiaczka tam nie było.",
	"Czy mógłbyś podać mi trochę miodu?",
	"Dzień bez przyjaciela to jak garnek bez kropli miodu.",
	"Obietnice się nie liczą, jeśli ktoś nie zamierza ich dotrzymać.",
	"Najlepiej jest tam, gdzie nas nie ma.",
	"Prosiaczku, czy masz może coś do jedzenia?",
	"Zawsze warto poczekać na przyjaciela.",
}

// CreateVoiceSampleCommand carries the validated input for a new sample.
type CreateVoiceSampleCommand struct {
	AudioURL           string
	VerificationPhrase string
}

// VoiceSampleService manages cloned voice registration and verification.
type VoiceSampleService interface {
	// GetRandomPhrase returns one verification phrase drawn uniformly at
	// random from the fixed list.
	GetRandomPhrase() string
	// CreateVoiceSample registers the user's voice with the cloning provider
	// and stores the sample unverified. A user owns at most one sample.
	CreateVoiceSample(ctx context.Context, userID uuid.UUID, cmd CreateVoiceSampleCommand) (*models.VoiceSample, error)
	// VerifyVoiceSample sets the verified flag on the user's own sample.
	VerifyVoiceSample(ctx context.Context, userID, sampleID uuid.UUID, verified bool) (*models.VoiceSample, error)
}

type voiceSampleServiceImpl struct {
	sampleRepo repository.VoiceSampleRepository
	voiceClone clients.VoiceCloningClient
	randIntn   func(n int) int
	logger     *zap.Logger
}

// NewVoiceSampleService creates a new instance of VoiceSampleService.
// randIntn may be nil, in which case math/rand is used; tests inject a
// deterministic source.
func NewVoiceSampleService(
	sampleRepo repository.VoiceSampleRepository,
	voiceClone clients.VoiceCloningClient,
	randIntn func(n int) int,
	logger *zap.Logger,
) VoiceSampleService {
	if randIntn == nil {
		randIntn = rand.Intn
	}
	return &voiceSampleServiceImpl{
		sampleRepo: sampleRepo,
		voiceClone: voiceClone,
		randIntn:   randIntn,
		logger:     logger.Named("VoiceSampleService"),
	}
}

func (s *voiceSampleServiceImpl) GetRandomPhrase() string {
	return verificationPhrases[s.randIntn(len(verificationPhrases))]
}

func (s *voiceSampleServiceImpl) CreateVoiceSample(ctx context.Context, userID uuid.UUID, cmd CreateVoiceSampleCommand) (*models.VoiceSample, error) {
	log := s.logger.With(zap.String("userID", userID.String()))

	// Friendly pre-check; the user_id uniqueness constraint is the actual
	// guarantee against concurrent creates.
	_, err := s.sampleRepo.GetByUserID(ctx, userID)
	if err == nil {
		log.Warn("Voice sample already exists for user")
		return nil, models.ErrVoiceSampleExists
	}
	if !errors.Is(err, models.ErrVoiceSampleNotFound) {
		log.Error("Failed to check existing voice sample", zap.Error(err))
		return nil, models.ErrInternalServer
	}

	name := fmt.Sprintf("user_%.8s", userID.String())
	voiceID, err := s.voiceClone.CreateVoiceModel(ctx, cmd.AudioURL, name)
	if err != nil {
		log.Error("Voice cloning provider call failed", zap.Error(err))
		return nil, models.ErrVoiceServiceUnavailable
	}

	sample := &models.VoiceSample{
		UserID:             userID,
		ElevenLabsVoiceID:  voiceID,
		VerificationPhrase: cmd.VerificationPhrase,
		Verified:           false,
	}
	if err := s.sampleRepo.Create(ctx, sample); err != nil {
		if errors.Is(err, models.ErrVoiceSampleExists) {
			log.Warn("Concurrent voice sample creation detected")
			return nil, models.ErrVoiceSampleExists
		}
		log.Error("Failed to insert voice sample", zap.Error(err))
		return nil, models.ErrInternalServer
	}

	log.Info("Voice sample created", zap.String("sampleID", sample.ID.String()))
	return sample, nil
}

func (s *voiceSampleServiceImpl) VerifyVoiceSample(ctx context.Context, userID, sampleID uuid.UUID, verified bool) (*models.VoiceSample, error) {
	log := s.logger.With(zap.String("userID", userID.String()), zap.String("sampleID", sampleID.String()))

	sample, err := s.sampleRepo.GetByID(ctx, sampleID)
	if err != nil {
		if errors.Is(err, models.ErrVoiceSampleNotFound) {
			return nil, models.ErrVoiceSampleNotFound
		}
		log.Error("Failed to fetch voice sample", zap.Error(err))
		return nil, models.ErrInternalServer
	}
	if sample.UserID != userID {
		log.Warn("Voice sample verification attempted by non-owner")
		return nil, models.ErrVoiceSampleUnauthorized
	}

	updated, err := s.sampleRepo.UpdateVerified(ctx, sampleID, verified)
	if err != nil {
		if errors.Is(err, models.ErrVoiceSampleNotFound) {
			return nil, models.ErrVoiceSampleNotFound
		}
		log.Error("Failed to update voice sample verification", zap.Error(err))
		return nil, models.ErrInternalServer
	}

	log.Info("Voice sample verification updated", zap.Bool("verified", updated.Verified))
	return updated, nil
}
