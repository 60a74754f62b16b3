package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/passforge/passforge-go/internal/config"
	"github.com/passforge/passforge-go/internal/generator"
	"github.com/passforge/passforge-go/internal/handler"
	"github.com/passforge/passforge-go/internal/middleware"
	"github.com/passforge/passforge-go/internal/repository"
	"github.com/passforge/passforge-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	// History is wired in only when the database is reachable; the
	// generator itself has no persistence.
	var historyService *service.HistoryService

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Warn("database connection failed — history and session routes disabled", "error", err)
	} else {
		historyService = service.NewHistoryService(repository.NewHistoryRepository(db))
	}

	gen := generator.New(generator.DefaultProfiles(), cfg.DefaultLength, nil)
	genService := service.NewGeneratorService(gen, historyService)
	genHandler := handler.NewGeneratorHandler(genService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Post("/api/v1/generate", genHandler.HandleGenerate)
	r.Get("/api/v1/config", genHandler.HandleGetConfig)
	r.Put("/api/v1/config", genHandler.HandleUpdateConfig)
	r.Get("/api/v1/strength", genHandler.HandleListStrengths)

	if db != nil {
		sessionService := service.NewSessionService(repository.NewMasterRepository(db), cfg.JWTSecret, cfg.JWTExpiry)
		sessionHandler := handler.NewSessionHandler(sessionService)
		historyHandler := handler.NewHistoryHandler(historyService)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(5, 10))
			r.Post("/api/v1/session/setup", sessionHandler.HandleSetup)
			r.Post("/api/v1/session/unlock", sessionHandler.HandleUnlock)
		})
		r.Get("/api/v1/session/status", sessionHandler.HandleStatus)

		r.Group(func(r chi.Router) {
			r.Use(middleware.SessionAuth(cfg.JWTSecret))
			r.Get("/api/v1/history", historyHandler.HandleList)
			r.Delete("/api/v1/history", historyHandler.HandleClear)
		})
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
