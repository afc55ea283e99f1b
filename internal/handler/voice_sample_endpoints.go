package handler

import (
	"net/http"

	"narration-server/internal/clients"
	"narration-server/internal/models"
	"narration-server/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetVerificationPhrase handles GET /voice-sample/phrase.
func (h *NarrationHandler) GetVerificationPhrase(c *gin.Context) {
	c.JSON(http.StatusOK, phraseResponse{Phrase: h.voiceService.GetRandomPhrase()})
}

// CreateVoiceSample handles POST /voice-sample.
func (h *NarrationHandler) CreateVoiceSample(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		handleVoiceSampleError(c, models.ErrUnauthorized)
		return
	}

	var req createVoiceSampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
		return
	}

	var errs []FieldError
	if req.AudioURL == "" {
		errs = append(errs, FieldError{Field: "audio_url", Message: "audio_url is required"})
	} else if !clients.ValidateAudioURL(req.AudioURL) {
		errs = append(errs, FieldError{Field: "audio_url", Message: "audio_url must be a valid https URL"})
	}
	if req.VerificationPhrase == "" {
		errs = append(errs, FieldError{Field: "verification_phrase", Message: "verification_phrase is required"})
	}
	if len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, MessageResponse{Message: "Validation failed", Errors: errs})
		return
	}

	sample, err := h.voiceService.CreateVoiceSample(c.Request.Context(), userID, service.CreateVoiceSampleCommand{
		AudioURL:           req.AudioURL,
		VerificationPhrase: req.VerificationPhrase,
	})
	if err != nil {
		voiceModelFailuresTotal.Inc()
		handleVoiceSampleError(c, err)
		return
	}

	voiceModelsCreatedTotal.Inc()
	c.JSON(http.StatusCreated, voiceSampleResponse{
		ID:        sample.ID,
		UserID:    sample.UserID,
		Verified:  sample.Verified,
		CreatedAt: sample.CreatedAt,
	})
}

// VerifyVoiceSample handles PATCH /voice-sample/:id/verify.
func (h *NarrationHandler) VerifyVoiceSample(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		handleVoiceSampleError(c, models.ErrUnauthorized)
		return
	}

	sampleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, MessageResponse{
			Message: "Validation failed",
			Errors:  []FieldError{{Field: "id", Message: "id must be a valid UUID"}},
		})
		return
	}

	var req verifyVoiceSampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
		return
	}
	if req.Verified == nil {
		c.JSON(http.StatusUnprocessableEntity, MessageResponse{
			Message: "Validation failed",
			Errors:  []FieldError{{Field: "verified", Message: "verified is required"}},
		})
		return
	}

	sample, err := h.voiceService.VerifyVoiceSample(c.Request.Context(), userID, sampleID, *req.Verified)
	if err != nil {
		handleVoiceSampleError(c, err)
		return
	}

	c.JSON(http.StatusOK, verifyVoiceSampleResponse{ID: sample.ID, Verified: sample.Verified})
}
