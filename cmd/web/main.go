package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/healthmateai/healthmate/internal/adapters/cache"
	"github.com/healthmateai/healthmate/internal/adapters/catalog"
	"github.com/healthmateai/healthmate/internal/adapters/events"
	"github.com/healthmateai/healthmate/internal/adapters/providers/analysis"
	"github.com/healthmateai/healthmate/internal/adapters/providers/scheduling"
	"github.com/healthmateai/healthmate/internal/api/handlers"
	"github.com/healthmateai/healthmate/internal/api/middleware"
	"github.com/healthmateai/healthmate/internal/api/routes"
	"github.com/healthmateai/healthmate/internal/application/services"
	"github.com/healthmateai/healthmate/internal/domain/providers"
	"github.com/healthmateai/healthmate/internal/infrastructure/clients/redis"
	"github.com/healthmateai/healthmate/internal/infrastructure/notifications"
	"github.com/healthmateai/healthmate/internal/infrastructure/observability"
	"github.com/healthmateai/healthmate/internal/web"
	"github.com/healthmateai/healthmate/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Server.Env)

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Error().Err(err).Msg("Error shutting down OpenTelemetry")
				}
			}()
			log.Info().Str("endpoint", cfg.OTEL.Endpoint).Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize metrics")
	}

	content, err := catalog.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load site content")
	}

	// Redis backs the response cache, the contact limiter and notification
	// fan-out across instances. Without it everything runs in-process.
	var cacheProvider providers.CacheProvider
	var eventBus providers.EventBus
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewClient(ctx, &cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("Redis unavailable, falling back to in-process cache and event bus")
		} else {
			defer redisClient.Close()
			cacheProvider = cache.NewRedisAdapter(redisClient)
			eventBus = events.NewRedisEventBus(redisClient)
			log.Info().Str("addr", cfg.Redis.RedisAddr()).Msg("Redis client initialized")
		}
	}
	if cacheProvider == nil {
		memory := cache.NewMemoryAdapter()
		memory.StartSweeper(ctx, time.Minute)
		cacheProvider = memory
		eventBus = events.NewMemoryEventBus()
	}

	notifier := notifications.NewBusNotifier(eventBus)

	// Initialize services
	appointmentService := services.NewAppointmentService(
		content,
		scheduling.NewMockAdapter(cfg.Simulation.BookingDelay),
		notifier,
	)
	symptomService := services.NewSymptomCheckerService(
		analysis.NewCannedAnalyzer(content, cfg.Simulation.AnalysisDelay),
		metrics,
	)
	treatmentService := services.NewTreatmentService(content)
	contactService := services.NewContactService(notifier)
	contentService := services.NewContentService(content)

	guard := handlers.NewSubmissionGuard(cacheProvider, cfg.Contact.RateLimit, cfg.Contact.RateWindow, cfg.Contact.DedupWindow)
	guard.StartSweeper(ctx, time.Minute)

	renderer, err := web.NewRenderer(cfg.Simulation.ToastDuration)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to parse page templates")
	}

	// Initialize handlers
	pageHandler := handlers.NewPageHandler(handlers.PageDependencies{
		Content:      contentService,
		Appointments: appointmentService,
		Symptoms:     symptomService,
		Treatments:   treatmentService,
		Contact:      contactService,
		Guard:        guard,
		Renderer:     renderer,
		Metrics:      metrics,
	})

	router := routes.NewRouter(
		pageHandler,
		handlers.NewAppointmentHandler(appointmentService, metrics),
		handlers.NewSymptomCheckerHandler(symptomService, metrics),
		handlers.NewTreatmentHandler(treatmentService),
		handlers.NewContactHandler(contactService, guard, metrics),
		handlers.NewContentHandler(contentService),
		handlers.NewNotificationStreamHandler(eventBus, cfg.Simulation.ToastDuration, metrics),
		web.StaticHandler(),
		middleware.NewCacheMiddleware(cacheProvider, metrics),
		cfg.Server.AllowedOrigins,
		!cfg.Server.IsDevelopment(),
		metrics,
	)

	// No WriteTimeout: the notification stream stays open
	server := &http.Server{
		Addr:        cfg.Server.Addr(),
		Handler:     router.SetupRoutes(),
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	go func() {
		log.Info().Str("addr", server.Addr).Str("env", cfg.Server.Env).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Server shutting down...")

	// Cancelling the base context ends open notification streams and
	// in-flight analyses so Shutdown does not wait on them.
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	if err := eventBus.Close(); err != nil {
		log.Error().Err(err).Msg("Error closing event bus")
	}

	log.Info().Msg("Server stopped")
}
