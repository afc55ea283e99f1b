package handler

import (
	"net/http"

	"narration-server/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListStories handles GET /stories.
func (h *NarrationHandler) ListStories(c *gin.Context) {
	params, errs := parseStoryListParams(c)
	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters", Details: errs})
		return
	}

	stories, meta, err := h.storyService.ListStories(c.Request.Context(), params.Page, params.PageSize, params.Sort)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if stories == nil {
		stories = []models.StorySummary{}
	}

	c.JSON(http.StatusOK, storyListResponse{Data: stories, Meta: meta})
}

// GetStoryBySlug handles GET /stories/:slug.
func (h *NarrationHandler) GetStoryBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if !isValidSlug(slug) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid slug",
			Details: []FieldError{{Field: "slug", Message: "slug must match ^[a-z0-9]+(-[a-z0-9]+)*$"}},
		})
		return
	}

	story, err := h.storyService.GetStoryBySlug(c.Request.Context(), slug)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if story == nil {
		h.logger.Debug("Story not found", zap.String("slug", slug))
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Story not found"})
		return
	}

	c.JSON(http.StatusOK, story)
}
