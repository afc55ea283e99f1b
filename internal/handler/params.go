package handler

import (
	"regexp"
	"strconv"

	"narration-server/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

type storyListParams struct {
	Page     int
	PageSize int
	Sort     models.SortOrder
}

type generationListParams struct {
	Page     int
	PageSize int
	Status   *models.GenerationStatus
}

type logListParams struct {
	Page     int
	PageSize int
}

// parsePositiveInt coerces a string query parameter into a positive integer.
// An absent parameter yields the default; anything non-numeric or < 1 is a
// field error.
func parsePositiveInt(raw string, def int, field string, errs *[]FieldError) int {
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		*errs = append(*errs, FieldError{Field: field, Message: field + " must be a positive integer"})
		return def
	}
	return v
}

func parseStoryListParams(c *gin.Context) (storyListParams, []FieldError) {
	var errs []FieldError
	params := storyListParams{Sort: models.SortAsc}

	params.Page = parsePositiveInt(c.Query("page"), 1, "page", &errs)
	params.PageSize = parsePositiveInt(c.Query("pageSize"), 10, "pageSize", &errs)
	if params.PageSize > 100 {
		errs = append(errs, FieldError{Field: "pageSize", Message: "pageSize cannot exceed 100"})
	}

	switch c.Query("sort") {
	case "", "asc":
		params.Sort = models.SortAsc
	case "desc":
		params.Sort = models.SortDesc
	default:
		errs = append(errs, FieldError{Field: "sort", Message: "sort must be asc or desc"})
	}

	return params, errs
}

func parseGenerationListParams(c *gin.Context) (generationListParams, []FieldError) {
	var errs []FieldError
	var params generationListParams

	params.Page = parsePositiveInt(c.Query("page"), 1, "page", &errs)
	params.PageSize = parsePositiveInt(c.Query("pageSize"), 10, "pageSize", &errs)
	// Known defect carried over from the original API: the effective cap is
	// 20 while the message claims 100. Clients depend on the message text.
	if params.PageSize > 20 {
		errs = append(errs, FieldError{Field: "pageSize", Message: "pageSize cannot exceed 100"})
	}

	if raw := c.Query("status"); raw != "" {
		status := models.GenerationStatus(raw)
		if !status.IsValid() {
			errs = append(errs, FieldError{Field: "status", Message: "status must be one of pending, in_progress, completed, failed"})
		} else {
			params.Status = &status
		}
	}

	return params, errs
}

func parseLogListParams(c *gin.Context) (logListParams, []FieldError) {
	var errs []FieldError
	var params logListParams

	params.Page = parsePositiveInt(c.Query("page"), 1, "page", &errs)
	params.PageSize = parsePositiveInt(c.Query("pageSize"), 50, "pageSize", &errs)
	if params.PageSize > 100 {
		errs = append(errs, FieldError{Field: "pageSize", Message: "pageSize cannot exceed 100"})
	}

	return params, errs
}

// parseUUIDParam parses a UUID path parameter.
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func isValidSlug(slug string) bool {
	return slugRegex.MatchString(slug)
}
