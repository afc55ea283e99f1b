package handler

import (
	"time"

	"narration-server/internal/models"

	"github.com/google/uuid"
)

// ErrorResponse is the error body for story and generation endpoints.
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

// MessageResponse is the error body for voice-sample endpoints.
type MessageResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError points a validation message at the offending field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type storyListResponse struct {
	Data []models.StorySummary `json:"data"`
	Meta models.PaginationMeta `json:"meta"`
}

type generationListResponse struct {
	Data []models.StoryGeneration `json:"data"`
	Meta models.PaginationMeta    `json:"meta"`
}

type logsResponse struct {
	Logs []models.GenerationLog `json:"logs"`
	Meta models.PaginationMeta  `json:"meta"`
}

type initiateGenerationRequest struct {
	StoryID string `json:"story_id"`
}

type initiateGenerationResponse struct {
	ID       uuid.UUID               `json:"id"`
	Status   models.GenerationStatus `json:"status"`
	Progress int                     `json:"progress"`
}

type createVoiceSampleRequest struct {
	AudioURL           string `json:"audio_url"`
	VerificationPhrase string `json:"verification_phrase"`
}

type voiceSampleResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"created_at"`
}

type verifyVoiceSampleRequest struct {
	Verified *bool `json:"verified"`
}

type verifyVoiceSampleResponse struct {
	ID       uuid.UUID `json:"id"`
	Verified bool      `json:"verified"`
}

type phraseResponse struct {
	Phrase string `json:"phrase"`
}
