package main

import (
	"context"
	"log"
	"time"

	"github.com/dimensions-ai/brandbot-api/internal/api"
	"github.com/dimensions-ai/brandbot-api/internal/config"
	"github.com/dimensions-ai/brandbot-api/internal/dna"
	"github.com/dimensions-ai/brandbot-api/internal/metrics"
	"github.com/dimensions-ai/brandbot-api/internal/observability"
	"github.com/dimensions-ai/brandbot-api/internal/services"
	"github.com/dimensions-ai/brandbot-api/internal/store"
	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const (
	sentryFlushTimeout    = 2 * time.Second
	environmentProduction = "production"
)

// releaseVersion is set via ldflags during build
var releaseVersion = "dev"

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	// Initialize Sentry
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.Environment,
			Release:          "brandbot-api@" + releaseVersion,
			EnableTracing:    true,
			TracesSampleRate: 1.0,
			Debug:            cfg.Environment != environmentProduction,
			BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
				if event.Request != nil {
					event.Request.Headers = filterSensitiveHeaders(event.Request.Headers)
				}
				return event
			},
		}); err != nil {
			log.Printf("Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("Sentry initialized (environment: %s, release: %s)", cfg.Environment, releaseVersion)
			defer sentry.Flush(sentryFlushTimeout)
		}
	} else {
		log.Println("Sentry not configured (SENTRY_DSN not set)")
	}

	ctx := context.Background()

	// Langfuse tracing for completion calls
	observability.InitializeLangfuse(ctx, cfg)

	// CloudWatch metrics (production only)
	cloudwatch, err := metrics.NewClient(ctx, cfg.Environment)
	if err != nil {
		log.Printf("CloudWatch metrics unavailable: %v", err)
	}

	if cfg.Environment == environmentProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	st := store.New(cfg.DataDir)
	loader := dna.New(cfg.DataDir)
	svc := services.NewGenerationService(cfg, st, loader, cloudwatch)

	router := api.SetupRouter(cfg, st, loader, svc, cloudwatch)

	log.Printf("Starting BrandBot API on port %s (data dir: %s)", cfg.Port, cfg.DataDir)
	if err := router.Run(":" + cfg.Port); err != nil {
		sentry.CaptureException(err)
		log.Fatal("Failed to start server:", err)
	}
}

func filterSensitiveHeaders(headers map[string]string) map[string]string {
	filtered := make(map[string]string)
	sensitiveKeys := map[string]bool{
		"authorization": true,
		"cookie":        true,
		"x-api-key":     true,
	}

	for k, v := range headers {
		if sensitiveKeys[k] {
			filtered[k] = "[REDACTED]"
		} else {
			filtered[k] = v
		}
	}
	return filtered
}
