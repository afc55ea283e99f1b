package models

import (
	"time"

	"github.com/google/uuid"
)

// VoiceSample is a user's registered voice clone. A user owns at most one
// sample; the store enforces this with a uniqueness constraint on user_id.
type VoiceSample struct {
	ID                 uuid.UUID `json:"id" db:"id"`
	UserID             uuid.UUID `json:"user_id" db:"user_id"`
	ElevenLabsVoiceID  string    `json:"-" db:"elevenlabs_voice_id"`
	VerificationPhrase string    `json:"-" db:"verification_phrase"`
	Verified           bool      `json:"verified" db:"verified"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
}

// Profile anchors a user identity. Profiles are created by the identity
// provider and never mutated here.
type Profile struct {
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
