package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Adapter errors. Callers that cannot act on the distinction may collapse
// these into a single upstream-unavailable outcome.
var (
	ErrInvalidAudioURL = errors.New("invalid audio url format")
	ErrNotConfigured   = errors.New("voice service not configured")
	ErrProviderCall    = errors.New("voice provider call failed")
)

// VoiceCloningClient registers voice models with the cloning provider.
type VoiceCloningClient interface {
	// CreateVoiceModel registers the audio sample and returns the provider's
	// opaque voice identifier.
	CreateVoiceModel(ctx context.Context, audioURL, name string) (string, error)
}

// Compile-time check to ensure implementation satisfies the interface.
var _ VoiceCloningClient = (*ElevenLabsClient)(nil)

// ElevenLabsClient talks to the ElevenLabs voice cloning API.
type ElevenLabsClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewElevenLabsClient creates a new client. An empty apiKey is allowed at
// construction time; calls will fail with ErrNotConfigured.
func NewElevenLabsClient(baseURL, apiKey string, timeout time.Duration, logger *zap.Logger) *ElevenLabsClient {
	baseURL = strings.TrimSuffix(baseURL, "/")
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &ElevenLabsClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger.Named("ElevenLabsClient"),
	}
}

type addVoiceRequest struct {
	Name        string      `json:"name"`
	Files       []voiceFile `json:"files"`
	Description string      `json:"description"`
}

type voiceFile struct {
	URL string `json:"url"`
}

type addVoiceResponse struct {
	VoiceID string `json:"voice_id"`
}

// CreateVoiceModel validates the audio URL, then registers it with the
// provider. The URL check runs before any network attempt.
func (c *ElevenLabsClient) CreateVoiceModel(ctx context.Context, audioURL, name string) (string, error) {
	log := c.logger.With(zap.String("name", name))

	// Only HTTPS URLs are accepted, to keep the provider from being pointed
	// at internal endpoints (SSRF).
	if !ValidateAudioURL(audioURL) {
		log.Warn("Rejected audio URL", zap.String("audioURL", audioURL))
		return "", ErrInvalidAudioURL
	}

	if c.apiKey == "" {
		log.Error("ElevenLabs API key not configured")
		return "", ErrNotConfigured
	}

	if name == "" {
		name = fmt.Sprintf("Voice_%d", time.Now().Unix())
	}

	payload := addVoiceRequest{
		Name:        name,
		Files:       []voiceFile{{URL: audioURL}},
		Description: "Voice sample for story narration",
	}
	jsonData, err := json.Marshal(payload)
	if err != nil {
		log.Error("Failed to marshal voice model request", zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrProviderCall, err)
	}

	endpointURL := c.baseURL + "/v1/voices/add"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpointURL, bytes.NewBuffer(jsonData))
	if err != nil {
		log.Error("Failed to create voice model request", zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrProviderCall, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("xi-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("Failed to execute voice model request", zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrProviderCall, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Error("ElevenLabs returned non-OK status", zap.Int("status_code", resp.StatusCode))
		return "", fmt.Errorf("%w: status %d", ErrProviderCall, resp.StatusCode)
	}

	var respPayload addVoiceResponse
	if err := json.NewDecoder(resp.Body).Decode(&respPayload); err != nil {
		log.Error("Failed to decode ElevenLabs response", zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrProviderCall, err)
	}
	if respPayload.VoiceID == "" {
		log.Error("ElevenLabs response missing voice_id")
		return "", fmt.Errorf("%w: empty voice_id", ErrProviderCall)
	}

	log.Info("Voice model created", zap.String("voiceID", respPayload.VoiceID))
	return respPayload.VoiceID, nil
}

// ValidateAudioURL reports whether the audio URL is acceptable for voice
// cloning. Parse failures are treated as invalid, never as errors.
func ValidateAudioURL(audioURL string) bool {
	u, err := url.Parse(audioURL)
	if err != nil {
		return false
	}
	return u.Scheme == "https" && u.Host != ""
}
