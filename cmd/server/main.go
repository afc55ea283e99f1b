package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"narration-server/internal/auth"
	"narration-server/internal/clients"
	"narration-server/internal/config"
	"narration-server/internal/handler"
	"narration-server/internal/logger"
	"narration-server/internal/middleware"
	"narration-server/internal/repository"
	"narration-server/internal/service"
	"narration-server/migrations"
	"narration-server/pkg/migration"

	rateli "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:    cfg.LogLevel,
		Encoding: "json",
	})
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	zap.ReplaceGlobals(log)
	zap.L().Info("Logger initialized successfully", zap.String("logLevel", cfg.LogLevel))

	dbPool, err := setupDatabase(cfg)
	if err != nil {
		zap.L().Fatal("Failed to connect to database", zap.Error(err))
	}
	defer dbPool.Close()
	zap.L().Info("Connected to PostgreSQL")

	migrator := migration.NewMigrator(migration.Config{
		MigrationsPath: ".",
		MigrationsFS:   migrations.FS,
	}, dbPool)
	if err := migrator.Up(context.Background()); err != nil {
		zap.L().Fatal("Failed to apply database migrations", zap.Error(err))
	}

	// Repositories
	storyRepo := repository.NewPgStoryRepository(dbPool, log)
	generationRepo := repository.NewPgStoryGenerationRepository(dbPool, log)
	logRepo := repository.NewPgGenerationLogRepository(dbPool, log)
	voiceSampleRepo := repository.NewPgVoiceSampleRepository(dbPool, log)

	// Clients
	elevenLabsClient := clients.NewElevenLabsClient(cfg.ElevenLabsBaseURL, cfg.ElevenLabsAPIKey, cfg.ElevenLabsTimeout, log)

	// Services
	storyService := service.NewStoryService(storyRepo, log)
	generationService := service.NewStoryGenerationService(generationRepo, storyRepo, logRepo, log)
	logService := service.NewGenerationLogService(logRepo, log)
	voiceService := service.NewVoiceSampleService(voiceSampleRepo, elevenLabsClient, nil, log)

	verifier, err := auth.NewJWTVerifier(cfg.JWTSecret, log)
	if err != nil {
		zap.L().Fatal("Failed to create JWT verifier", zap.Error(err))
	}

	narrationHandler := handler.NewNarrationHandler(storyService, generationService, logService, voiceService, verifier, log)

	// Rate limiter for the provider-backed voice-sample endpoints.
	rateLimitStore := rateli.InMemoryStore(&rateli.InMemoryOptions{
		Rate:  time.Minute,
		Limit: 10,
	})
	rateLimitMiddleware := rateli.RateLimiter(rateLimitStore, &rateli.Options{
		ErrorHandler: func(c *gin.Context, info rateli.Info) {
			zap.L().Warn("Rate limit exceeded",
				zap.String("clientIP", c.ClientIP()),
				zap.Time("resetTime", info.ResetTime),
				zap.String("path", c.Request.URL.Path),
			)
			c.String(http.StatusTooManyRequests, "Too many requests. Try again in "+time.Until(info.ResetTime).String())
		},
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
	})

	gin.SetMode(gin.ReleaseMode)
	if cfg.Env == "development" {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.RedirectTrailingSlash = true
	router.Use(middleware.GinZapLogger(log))
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	allowedOrigins := cfg.GetAllowedOrigins()
	if len(allowedOrigins) > 0 {
		corsConfig.AllowOrigins = allowedOrigins
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
		zap.L().Info("CORSAllowedOrigins not set, allowing default", zap.String("origin", "http://localhost:3000"))
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.AllowCredentials = true
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	narrationHandler.RegisterRoutes(router, rateLimitMiddleware)

	p := ginprometheus.NewPrometheus("gin")
	p.Use(router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	zap.L().Info("Starting HTTP server", zap.String("port", cfg.Port))

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("HTTP Server listen error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.L().Error("Server forced to shutdown", zap.Error(err))
	}

	zap.L().Info("Server stopped")
}

// setupDatabase creates the pgx connection pool and verifies connectivity.
func setupDatabase(cfg *config.Config) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse DSN: %w", err)
	}
	poolConfig.MaxConns = int32(cfg.DBMaxConns)
	poolConfig.MaxConnIdleTime = cfg.DBIdleTimeout

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	dbPool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := dbPool.Ping(ctx); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return dbPool, nil
}
