package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"narration-server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListStories(t *testing.T) {
	t.Run("returns data with meta", func(t *testing.T) {
		router, m := newTestRouter(t)

		summaries := []models.StorySummary{{Title: "Honey Pot", Slug: "honey-pot"}}
		meta := models.PaginationMeta{Page: 2, PageSize: 1, Total: 3}
		m.storyService.On("ListStories", mock.Anything, 2, 1, models.SortDesc).Return(summaries, meta, nil)

		req := httptest.NewRequest(http.MethodGet, "/stories?page=2&pageSize=1&sort=desc", nil)
		w := performRequest(router, req)

		require.Equal(t, http.StatusOK, w.Code)
		var body storyListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Len(t, body.Data, 1)
		assert.Equal(t, meta, body.Meta)
		m.storyService.AssertExpectations(t)
	})

	t.Run("defaults applied when params absent", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.storyService.On("ListStories", mock.Anything, 1, 10, models.SortAsc).
			Return([]models.StorySummary{}, models.PaginationMeta{Page: 1, PageSize: 10}, nil)

		req := httptest.NewRequest(http.MethodGet, "/stories", nil)
		w := performRequest(router, req)

		assert.Equal(t, http.StatusOK, w.Code)
		m.storyService.AssertExpectations(t)
	})

	t.Run("non-numeric page is a validation error", func(t *testing.T) {
		router, m := newTestRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/stories?page=abc", nil)
		w := performRequest(router, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var body ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body.Details, 1)
		assert.Equal(t, "page", body.Details[0].Field)
		m.storyService.AssertNotCalled(t, "ListStories")
	})

	t.Run("pageSize above 100 is rejected", func(t *testing.T) {
		router, _ := newTestRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/stories?pageSize=101", nil)
		w := performRequest(router, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid sort is rejected", func(t *testing.T) {
		router, _ := newTestRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/stories?sort=sideways", nil)
		w := performRequest(router, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetStoryBySlug(t *testing.T) {
	t.Run("returns story", func(t *testing.T) {
		router, m := newTestRouter(t)

		story := &models.Story{Title: "Honey Pot", Slug: "honey-pot"}
		m.storyService.On("GetStoryBySlug", mock.Anything, "honey-pot").Return(story, nil)

		req := httptest.NewRequest(http.MethodGet, "/stories/honey-pot", nil)
		w := performRequest(router, req)

		require.Equal(t, http.StatusOK, w.Code)
		var body models.Story
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "honey-pot", body.Slug)
	})

	t.Run("missing story is 404", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.storyService.On("GetStoryBySlug", mock.Anything, "no-such-story").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/stories/no-such-story", nil)
		w := performRequest(router, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		var body ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Story not found", body.Error)
	})

	t.Run("uppercase slug is rejected before service call", func(t *testing.T) {
		router, m := newTestRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/stories/Honey-Pot", nil)
		w := performRequest(router, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		m.storyService.AssertNotCalled(t, "GetStoryBySlug")
	})
}
