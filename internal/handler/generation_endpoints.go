package handler

import (
	"net/http"

	"narration-server/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InitiateGeneration handles POST /story-generations.
func (h *NarrationHandler) InitiateGeneration(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		handleServiceError(c, models.ErrUnauthorized)
		return
	}

	var req initiateGenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}
	storyID, err := uuid.Parse(req.StoryID)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Details: []FieldError{{Field: "story_id", Message: "story_id must be a valid UUID"}},
		})
		return
	}

	gen, err := h.generationService.Initiate(c.Request.Context(), userID, storyID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	generationsInitiatedTotal.Inc()
	c.JSON(http.StatusAccepted, initiateGenerationResponse{
		ID:       gen.ID,
		Status:   gen.Status,
		Progress: gen.Progress,
	})
}

// ListGenerations handles GET /story-generations.
func (h *NarrationHandler) ListGenerations(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		handleServiceError(c, models.ErrUnauthorized)
		return
	}

	params, errs := parseGenerationListParams(c)
	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters", Details: errs})
		return
	}

	generations, meta, err := h.generationService.List(c.Request.Context(), userID, params.Page, params.PageSize, params.Status)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if generations == nil {
		generations = []models.StoryGeneration{}
	}

	c.JSON(http.StatusOK, generationListResponse{Data: generations, Meta: meta})
}

// GetGeneration handles GET /story-generations/:id.
func (h *NarrationHandler) GetGeneration(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		handleServiceError(c, models.ErrUnauthorized)
		return
	}
	generationID, ok := parseUUIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid generation id",
			Details: []FieldError{{Field: "id", Message: "id must be a valid UUID"}},
		})
		return
	}

	gen, err := h.generationService.GetByID(c.Request.Context(), userID, generationID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gen)
}

// DeleteGeneration handles DELETE /story-generations/:id.
func (h *NarrationHandler) DeleteGeneration(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		handleServiceError(c, models.ErrUnauthorized)
		return
	}
	generationID, ok := parseUUIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid generation id",
			Details: []FieldError{{Field: "id", Message: "id must be a valid UUID"}},
		})
		return
	}

	if err := h.generationService.Remove(c.Request.Context(), userID, generationID); err != nil {
		handleServiceError(c, err)
		return
	}

	generationsDeletedTotal.Inc()
	c.Status(http.StatusNoContent)
}

// GetGenerationLogs handles GET /story-generations/:id/logs. Ownership is
// confirmed against the generation before any log rows are read.
func (h *NarrationHandler) GetGenerationLogs(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		handleServiceError(c, models.ErrUnauthorized)
		return
	}
	generationID, ok := parseUUIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid generation id",
			Details: []FieldError{{Field: "id", Message: "id must be a valid UUID"}},
		})
		return
	}

	params, errs := parseLogListParams(c)
	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters", Details: errs})
		return
	}

	if _, err := h.generationService.GetByID(c.Request.Context(), userID, generationID); err != nil {
		handleServiceError(c, err)
		return
	}

	logs, meta, err := h.logService.GetLogsByGenerationID(c.Request.Context(), generationID, params.Page, params.PageSize)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if logs == nil {
		logs = []models.GenerationLog{}
	}

	c.JSON(http.StatusOK, logsResponse{Logs: logs, Meta: meta})
}
