package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// GenerationStatus is the lifecycle status of a story generation. Statuses
// only move forward: pending -> in_progress -> completed | failed. The
// transitions themselves are driven by the narration worker; this service
// creates pending rows and guards deletion.
type GenerationStatus string

const (
	GenerationStatusPending    GenerationStatus = "pending"
	GenerationStatusInProgress GenerationStatus = "in_progress"
	GenerationStatusCompleted  GenerationStatus = "completed"
	GenerationStatusFailed     GenerationStatus = "failed"
)

// IsValid reports whether s is one of the four known statuses.
func (s GenerationStatus) IsValid() bool {
	switch s {
	case GenerationStatusPending, GenerationStatusInProgress, GenerationStatusCompleted, GenerationStatusFailed:
		return true
	}
	return false
}

// StoryGeneration is a requested story-to-audio narration job. A generation
// belongs to exactly one story and one user.
type StoryGeneration struct {
	ID        uuid.UUID        `json:"id" db:"id"`
	StoryID   uuid.UUID        `json:"story_id" db:"story_id"`
	UserID    uuid.UUID        `json:"-" db:"user_id"`
	Status    GenerationStatus `json:"status" db:"status"`
	Progress  int              `json:"progress" db:"progress"`
	ResultURL *string          `json:"result_url" db:"result_url"`
	Metadata  json.RawMessage  `json:"metadata,omitempty" db:"metadata"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt time.Time        `json:"updated_at" db:"updated_at"`
}

// GenerationLog is a single worker event attached to a generation.
// Log rows are append-only.
type GenerationLog struct {
	ID           uuid.UUID `json:"-" db:"id"`
	GenerationID uuid.UUID `json:"-" db:"generation_id"`
	Event        string    `json:"event" db:"event"`
	OccurredAt   time.Time `json:"occurred_at" db:"occurred_at"`
}
