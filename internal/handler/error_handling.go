package handler

import (
	"errors"
	"net/http"

	"narration-server/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// handleServiceError maps domain errors from story and generation services to
// HTTP responses.
func handleServiceError(c *gin.Context, err error) {
	var statusCode int
	var errResp ErrorResponse

	switch {
	case errors.Is(err, models.ErrStoryNotFound):
		statusCode = http.StatusNotFound
		errResp = ErrorResponse{Error: "Story not found"}
	case errors.Is(err, models.ErrGenerationNotFound):
		statusCode = http.StatusNotFound
		errResp = ErrorResponse{Error: "Generation not found"}
	case errors.Is(err, models.ErrGenerationInProgress):
		statusCode = http.StatusConflict
		errResp = ErrorResponse{Error: "Cannot delete a generation that is in progress"}
	case errors.Is(err, models.ErrTokenInvalid), errors.Is(err, models.ErrTokenMalformed):
		statusCode = http.StatusUnauthorized
		errResp = ErrorResponse{Error: "Token is invalid or malformed"}
	case errors.Is(err, models.ErrTokenExpired):
		statusCode = http.StatusUnauthorized
		errResp = ErrorResponse{Error: "Token has expired"}
	case errors.Is(err, models.ErrUnauthorized):
		statusCode = http.StatusUnauthorized
		errResp = ErrorResponse{Error: "Authentication required"}
	default:
		zap.L().Error("Unhandled internal error in handleServiceError", zap.Error(err))
		statusCode = http.StatusInternalServerError
		errResp = ErrorResponse{Error: "Internal server error"}
	}

	c.AbortWithStatusJSON(statusCode, errResp)
}

// handleVoiceSampleError maps voice-sample domain errors to HTTP responses.
// Not-found and unauthorized deliberately share one body so callers cannot
// probe for other users' samples.
func handleVoiceSampleError(c *gin.Context, err error) {
	var statusCode int
	var errResp MessageResponse

	switch {
	case errors.Is(err, models.ErrVoiceSampleExists):
		statusCode = http.StatusConflict
		errResp = MessageResponse{Message: "Voice sample already exists"}
	case errors.Is(err, models.ErrVoiceSampleNotFound), errors.Is(err, models.ErrVoiceSampleUnauthorized):
		statusCode = http.StatusNotFound
		errResp = MessageResponse{Message: "Voice sample not found"}
	case errors.Is(err, models.ErrVoiceServiceUnavailable):
		statusCode = http.StatusBadGateway
		errResp = MessageResponse{Message: "Voice service is currently unavailable"}
	case errors.Is(err, models.ErrTokenInvalid), errors.Is(err, models.ErrTokenMalformed), errors.Is(err, models.ErrTokenExpired), errors.Is(err, models.ErrUnauthorized):
		statusCode = http.StatusUnauthorized
		errResp = MessageResponse{Message: "Authentication required"}
	default:
		zap.L().Error("Unhandled internal error in handleVoiceSampleError", zap.Error(err))
		statusCode = http.StatusInternalServerError
		errResp = MessageResponse{Message: "Internal server error"}
	}

	c.AbortWithStatusJSON(statusCode, errResp)
}
