package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"narration-server/internal/models"
	"narration-server/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetVerificationPhrase(t *testing.T) {
	router, m := newTestRouter(t)

	m.voiceService.On("GetRandomPhrase").Return("Jestem misiem o bardzo małym rozumku.")

	req := httptest.NewRequest(http.MethodGet, "/voice-sample/phrase", nil)
	w := performRequest(router, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body phraseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Phrase)
}

func TestCreateVoiceSample(t *testing.T) {
	userID := uuid.New()
	validBody := `{"audio_url": "https://cdn.example.com/sample.mp3", "verification_phrase": "Czy mógłbyś podać mi trochę miodu?"}`

	t.Run("created", func(t *testing.T) {
		router, m := newTestRouter(t)

		sample := &models.VoiceSample{ID: uuid.New(), UserID: userID, Verified: false}
		m.voiceService.On("CreateVoiceSample", mock.Anything, userID, service.CreateVoiceSampleCommand{
			AudioURL:           "https://cdn.example.com/sample.mp3",
			VerificationPhrase: "Czy mógłbyś podać mi trochę miodu?",
		}).Return(sample, nil)

		req := httptest.NewRequest(http.MethodPost, "/voice-sample", strings.NewReader(validBody))
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, userID))
		w := performRequest(router, req)

		require.Equal(t, http.StatusCreated, w.Code)
		var body voiceSampleResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, userID, body.UserID)
		assert.False(t, body.Verified)
	})

	t.Run("http audio url fails validation", func(t *testing.T) {
		router, m := newTestRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/voice-sample",
			strings.NewReader(`{"audio_url": "http://cdn.example.com/sample.mp3", "verification_phrase": "x"}`))
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, userID))
		w := performRequest(router, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		var body MessageResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body.Errors, 1)
		assert.Equal(t, "audio_url", body.Errors[0].Field)
		m.voiceService.AssertNotCalled(t, "CreateVoiceSample")
	})

	t.Run("missing fields fail validation", func(t *testing.T) {
		router, _ := newTestRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/voice-sample", strings.NewReader(`{}`))
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, userID))
		w := performRequest(router, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		var body MessageResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Len(t, body.Errors, 2)
	})

	t.Run("malformed json is a bad request", func(t *testing.T) {
		router, _ := newTestRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/voice-sample", strings.NewReader(`{`))
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, userID))
		w := performRequest(router, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate sample is a conflict", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.voiceService.On("CreateVoiceSample", mock.Anything, userID, mock.Anything).
			Return(nil, models.ErrVoiceSampleExists)

		req := httptest.NewRequest(http.MethodPost, "/voice-sample", strings.NewReader(validBody))
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, userID))
		w := performRequest(router, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("provider outage is a bad gateway", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.voiceService.On("CreateVoiceSample", mock.Anything, userID, mock.Anything).
			Return(nil, models.ErrVoiceServiceUnavailable)

		req := httptest.NewRequest(http.MethodPost, "/voice-sample", strings.NewReader(validBody))
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, userID))
		w := performRequest(router, req)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		var body MessageResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Voice service is currently unavailable", body.Message)
	})
}

func TestVerifyVoiceSample(t *testing.T) {
	userID := uuid.New()
	sampleID := uuid.New()

	t.Run("owner verifies sample", func(t *testing.T) {
		router, m := newTestRouter(t)

		sample := &models.VoiceSample{ID: sampleID, UserID: userID, Verified: true}
		m.voiceService.On("VerifyVoiceSample", mock.Anything, userID, sampleID, true).Return(sample, nil)

		req := httptest.NewRequest(http.MethodPatch, "/voice-sample/"+sampleID.String()+"/verify",
			strings.NewReader(`{"verified": true}`))
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, userID))
		w := performRequest(router, req)

		require.Equal(t, http.StatusOK, w.Code)
		var body verifyVoiceSampleResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, sampleID, body.ID)
		assert.True(t, body.Verified)
	})

	t.Run("missing and foreign samples are indistinguishable", func(t *testing.T) {
		var bodies []string
		for _, svcErr := range []error{models.ErrVoiceSampleNotFound, models.ErrVoiceSampleUnauthorized} {
			router, m := newTestRouter(t)
			m.voiceService.On("VerifyVoiceSample", mock.Anything, userID, sampleID, true).Return(nil, svcErr)

			req := httptest.NewRequest(http.MethodPatch, "/voice-sample/"+sampleID.String()+"/verify",
				strings.NewReader(`{"verified": true}`))
			req.Header.Set("Authorization", "Bearer "+signTestToken(t, userID))
			w := performRequest(router, req)

			assert.Equal(t, http.StatusNotFound, w.Code)
			bodies = append(bodies, w.Body.String())
		}
		assert.Equal(t, bodies[0], bodies[1])
	})

	t.Run("missing verified flag fails validation", func(t *testing.T) {
		router, m := newTestRouter(t)

		req := httptest.NewRequest(http.MethodPatch, "/voice-sample/"+sampleID.String()+"/verify",
			strings.NewReader(`{}`))
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, userID))
		w := performRequest(router, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		m.voiceService.AssertNotCalled(t, "VerifyVoiceSample")
	})

	t.Run("non-uuid sample id fails validation", func(t *testing.T) {
		router, _ := newTestRouter(t)

		req := httptest.NewRequest(http.MethodPatch, "/voice-sample/not-a-uuid/verify",
			strings.NewReader(`{"verified": true}`))
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, userID))
		w := performRequest(router, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}
