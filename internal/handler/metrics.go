package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	generationsInitiatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "narration_generations_initiated_total",
		Help: "Total number of narration generations requested.",
	})

	generationsDeletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "narration_generations_deleted_total",
		Help: "Total number of narration generations deleted by their owners.",
	})

	voiceModelsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "narration_voice_models_created_total",
		Help: "Total number of voice models successfully registered with the provider.",
	})

	voiceModelFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "narration_voice_model_failures_total",
		Help: "Total number of failed voice model registrations.",
	})

	tokenVerificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "narration_token_verifications_total",
			Help: "Total number of token verification attempts by status.",
		},
		[]string{"status"},
	)
)
