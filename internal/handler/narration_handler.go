package handler

import (
	"narration-server/internal/auth"
	"narration-server/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NarrationHandler handles HTTP requests for stories, narration generations
// and voice samples.
type NarrationHandler struct {
	storyService      service.StoryService
	generationService service.StoryGenerationService
	logService        service.GenerationLogService
	voiceService      service.VoiceSampleService
	verifier          *auth.JWTVerifier
	logger            *zap.Logger
}

// NewNarrationHandler creates a new NarrationHandler.
func NewNarrationHandler(
	storyService service.StoryService,
	generationService service.StoryGenerationService,
	logService service.GenerationLogService,
	voiceService service.VoiceSampleService,
	verifier *auth.JWTVerifier,
	logger *zap.Logger,
) *NarrationHandler {
	return &NarrationHandler{
		storyService:      storyService,
		generationService: generationService,
		logService:        logService,
		voiceService:      voiceService,
		verifier:          verifier,
		logger:            logger.Named("NarrationHandler"),
	}
}

// RegisterRoutes registers all HTTP routes on the router. Rate-limiting
// middleware for the voice-sample group is passed in by main, which owns the
// limiter store.
func (h *NarrationHandler) RegisterRoutes(router *gin.Engine, voiceSampleLimiter gin.HandlerFunc) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	stories := router.Group("/stories")
	{
		stories.GET("", h.ListStories)
		stories.GET("/:slug", h.GetStoryBySlug)
	}

	generations := router.Group("/story-generations")
	generations.Use(h.AuthMiddleware())
	{
		generations.POST("", h.InitiateGeneration)
		generations.GET("", h.ListGenerations)
		generations.GET("/:id", h.GetGeneration)
		generations.DELETE("/:id", h.DeleteGeneration)
		generations.GET("/:id/logs", h.GetGenerationLogs)
	}

	voiceSample := router.Group("/voice-sample")
	if voiceSampleLimiter != nil {
		voiceSample.Use(voiceSampleLimiter)
	}
	{
		voiceSample.GET("/phrase", h.GetVerificationPhrase)
		voiceSample.POST("", h.AuthMiddleware(), h.CreateVoiceSample)
		voiceSample.PATCH("/:id/verify", h.AuthMiddleware(), h.VerifyVoiceSample)
	}
}
