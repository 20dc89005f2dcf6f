package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/victornavas/unified-api/internal/geo"
	"github.com/victornavas/unified-api/internal/http/handlers"
	httpmw "github.com/victornavas/unified-api/internal/http/middleware"
	"github.com/victornavas/unified-api/internal/http/response"
	"github.com/victornavas/unified-api/internal/mailer"
	"github.com/victornavas/unified-api/internal/repo/postgres"
	"github.com/victornavas/unified-api/internal/service"
	"github.com/victornavas/unified-api/pkg/config"
	"github.com/victornavas/unified-api/pkg/database"
	"github.com/victornavas/unified-api/pkg/events"
	"github.com/victornavas/unified-api/pkg/logger"
	mw "github.com/victornavas/unified-api/pkg/middleware"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()
	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("database connected")

	// The event bus is optional; without a broker the API still serves.
	var eventBus events.Publisher = events.NoopPublisher{}
	if cfg.NATS.URL != "" {
		bus, err := events.NewNATSPublisher(cfg.NATS.URL)
		if err != nil {
			logger.Warn("NATS unavailable, events disabled", "error", err)
		} else {
			eventBus = bus
		}
	}
	defer eventBus.Close()

	respond := response.New(cfg.IsProd())
	mail := mailer.FromConfig(cfg.Email)

	guestRepo := postgres.NewGuestRepo(pool)
	todoRepo := postgres.NewTodoRepo(pool)
	userRepo := postgres.NewUserRepo(pool)
	visitRepo := postgres.NewVisitRepo(pool)

	geoClient := geo.NewClient(cfg.Geo.BaseURL, cfg.Geo.Timeout)

	rsvpSvc := service.NewRSVPService(guestRepo, mail, eventBus)
	visitSvc := service.NewVisitService(visitRepo, geoClient, eventBus)
	authSvc := service.NewAuthService(userRepo, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	rsvpHandler := handlers.NewRSVPHandler(rsvpSvc, respond)
	todoHandler := handlers.NewTodoHandler(todoRepo, respond)
	authHandler := handlers.NewAuthHandler(authSvc, respond)
	logsHandler := handlers.NewLogsHandler(visitSvc, cfg.SiteKeys, respond)

	requireAuth := httpmw.RequireAuth(cfg.Auth.JWTSecret, respond)

	r := chi.NewRouter()
	r.Use(mw.RequestID)
	r.Use(mw.Logging)
	r.Use(corsHandler(cfg))

	r.Route("/api", func(api chi.Router) {
		// Rate limiting is production-only so local dev never gets blocked
		if cfg.IsProd() {
			if limiter := newRateLimiter(cfg); limiter != nil {
				api.Use(limiter.Middleware)
			}
		}

		api.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respond.JSON(w, http.StatusOK, map[string]string{
				"status": "ok",
				"env":    cfg.Env,
				"time":   time.Now().UTC().Format(time.RFC3339),
			})
		})

		api.Mount("/rsvp", rsvpHandler.Routes())
		api.Mount("/todo", todoHandler.Routes(requireAuth))
		api.Mount("/auth", authHandler.Routes())
		api.Mount("/logs", logsHandler.Routes())

		api.NotFound(func(w http.ResponseWriter, r *http.Request) {
			respond.Fail(w, http.StatusNotFound, "Not found")
		})
	})

	// Optional static frontend from ./public
	if info, err := os.Stat(cfg.Server.PublicDir); err == nil && info.IsDir() {
		r.Handle("/*", http.FileServer(http.Dir(cfg.Server.PublicDir)))
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown error", "error", err)
		}
	}()

	logger.Info("unified api listening", "port", cfg.Server.Port, "env", cfg.Env)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

func corsHandler(cfg *config.Config) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowOriginFunc: func(r *http.Request, origin string) bool {
			if !cfg.IsProd() {
				return true
			}
			for _, allowed := range cfg.CORS.Origins {
				if origin == allowed {
					return true
				}
			}
			return false
		},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "x-api-key"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}

func newRateLimiter(cfg *config.Config) *mw.RateLimiter {
	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		logger.Warn("invalid redis url, rate limiting disabled", "error", err)
		return nil
	}
	return mw.NewRateLimiter(redis.NewClient(opts), 300, 15*time.Minute)
}
