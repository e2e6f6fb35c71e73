// Package main is the entrypoint for the clinical records API server.
package main

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/medrecord/medrecord/internal/auth"
	"github.com/medrecord/medrecord/internal/cache"
	"github.com/medrecord/medrecord/internal/config"
	"github.com/medrecord/medrecord/internal/handler"
	"github.com/medrecord/medrecord/internal/middleware"
	"github.com/medrecord/medrecord/internal/repository"
	"github.com/medrecord/medrecord/internal/server"
	"github.com/medrecord/medrecord/internal/service"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg)

	// Initialize database
	repo, err := repository.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error(
			"failed to connect to database",
			slog.String("error", sanitizeError(err, cfg.DatabaseURL)),
			slog.String("database_url", redactURL(cfg.DatabaseURL)),
		)
		os.Exit(1)
	}
	defer repo.Close()
	logger.Info("connected to database")

	// Initialize cache
	cacheClient, err := cache.New(ctx, cfg.RedisURL)
	if err != nil {
		logger.Error(
			"failed to connect to Redis",
			slog.String("error", sanitizeError(err, cfg.RedisURL)),
			slog.String("redis_url", redactURL(cfg.RedisURL)),
		)
		os.Exit(1)
	}
	defer cacheClient.Close()
	logger.Info("connected to Redis")

	// Initialize token issuer and services
	tokens := auth.NewTokenIssuer(cfg.TokenSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	authService := service.NewAuthService(repo, cacheClient, tokens)
	patientService := service.NewPatientService(repo)
	doctorService := service.NewDoctorService(repo)
	mappingService := service.NewMappingService(repo)

	// Initialize handlers
	h := handler.New()
	healthHandler := handler.NewHealthHandler(repo, cacheClient)
	authHandler := handler.NewAuthHandler(authService, logger)
	patientHandler := handler.NewPatientHandler(patientService, logger)
	doctorHandler := handler.NewDoctorHandler(doctorService, logger)
	mappingHandler := handler.NewMappingHandler(mappingService, logger)

	// Setup router
	r := setupRouter(h, healthHandler, authHandler, patientHandler, doctorHandler, mappingHandler, tokens, cacheClient, cfg, logger)

	// Create and run server
	srv := server.New(
		r,
		cfg.AppPort,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)

	logger.Info("starting server",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	var h slog.Handler

	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}

	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// setupRouter configures the chi router with all routes and middleware.
func setupRouter(
	h *handler.Handler,
	healthHandler *handler.HealthHandler,
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	doctorHandler *handler.DoctorHandler,
	mappingHandler *handler.MappingHandler,
	tokens *auth.TokenIssuer,
	cacheClient *cache.Cache,
	cfg *config.Config,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware. StripSlashes makes the trailing-slash paths
	// of the public API surface resolve to the registered routes.
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.StripSlashes)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))

	// Health endpoints (no auth required)
	r.Get("/healthz", healthHandler.Healthz)
	r.Get("/readyz", healthHandler.Readyz)

	// Root info endpoint
	r.Get("/", h.Hello)

	authCfg := middleware.AuthConfig{
		Logger: logger,
		Tokens: tokens,
	}

	rateLimitCfg := middleware.RateLimitConfig{
		Logger:  logger,
		Cache:   cacheClient,
		Enabled: cfg.RateLimitLoginEnabled,
		RPM:     cfg.RateLimitLoginRPM,
		Burst:   cfg.RateLimitLoginBurst,
	}

	r.Route("/api", func(r chi.Router) {
		// Auth endpoints (no bearer token required)
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.With(middleware.RateLimitLogin(rateLimitCfg)).Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
		})

		// Record endpoints (require a valid access token)
		r.Group(func(r chi.Router) {
			r.Use(middleware.BearerAuth(authCfg))

			r.Route("/patients", func(r chi.Router) {
				r.Get("/", patientHandler.List)
				r.Post("/", patientHandler.Create)
				r.Get("/{id}", patientHandler.Get)
				r.Put("/{id}", patientHandler.Update)
				r.Patch("/{id}", patientHandler.Update)
				r.Delete("/{id}", patientHandler.Delete)
			})

			r.Route("/doctors", func(r chi.Router) {
				r.Get("/", doctorHandler.List)
				r.Post("/", doctorHandler.Create)
				r.Get("/{id}", doctorHandler.Get)
				r.Put("/{id}", doctorHandler.Update)
				r.Patch("/{id}", doctorHandler.Update)
				r.Delete("/{id}", doctorHandler.Delete)
			})

			r.Route("/mappings", func(r chi.Router) {
				r.Get("/", mappingHandler.List)
				r.Post("/", mappingHandler.Create)
				r.Get("/{id}", mappingHandler.ListForPatient)
				r.Delete("/{id}", mappingHandler.Delete)
			})
		})
	})

	// 404 and 405 handlers
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r
}

var passwordPattern = regexp.MustCompile(`(?i)password=[^\s]+`)

func redactURL(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "[redacted]"
	}

	if parsed.User != nil {
		username := parsed.User.Username()
		if username == "" {
			parsed.User = url.User("redacted")
		} else {
			parsed.User = url.User(username)
		}
	}

	return parsed.String()
}

func sanitizeError(err error, secrets ...string) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		redacted := redactURL(secret)
		if redacted == "" {
			redacted = "[redacted]"
		}
		msg = strings.ReplaceAll(msg, secret, redacted)
	}

	return passwordPattern.ReplaceAllString(msg, "password=redacted")
}
