package models

import "errors"

// Application-wide standard errors
var (
	// Story library
	ErrStoryNotFound = errors.New("story not found")

	// Story generations
	ErrGenerationNotFound   = errors.New("generation not found")
	ErrGenerationInProgress = errors.New("cannot delete in-progress generation")

	// Voice samples
	ErrVoiceSampleExists       = errors.New("voice sample already exists for this user")
	ErrVoiceSampleNotFound     = errors.New("voice sample not found")
	ErrVoiceSampleUnauthorized = errors.New("voice sample does not belong to this user")
	ErrVoiceServiceUnavailable = errors.New("voice service unavailable")

	// Authentication
	ErrUnauthorized   = errors.New("unauthorized")
	ErrTokenInvalid   = errors.New("token is invalid")
	ErrTokenMalformed = errors.New("token is malformed")
	ErrTokenExpired   = errors.New("token has expired")

	// General request/server errors
	ErrInternalServer = errors.New("internal server error")
	ErrInvalidInput   = errors.New("invalid input data")
)
