package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog/v2"

	"todolists/application"
	"todolists/database"
	"todolists/domain/contracts"
	"todolists/infrastructure/config"
	"todolists/infrastructure/repositories"
	"todolists/infrastructure/sessions"
	"todolists/interfaces/web/handlers"
	"todolists/interfaces/web/presenters"
	templates "todolists/interfaces/web/templates"
	"todolists/logging"
	"todolists/platform/events"
)

// Dependencies holds all application dependencies organized by layer
type Dependencies struct {
	// Infrastructure
	DB     *database.Database
	Logger *logging.Logger

	// Sessions
	SessionRepo contracts.SessionRepository
	Sessions    *sessions.Manager
	EventBus    *events.SessionEventBus
	Activity    *events.ActivityEventHandlers

	// Presentation Layer
	TodoHandlers   *handlers.TodoHandlers
	SystemHandlers *handlers.SystemHandlers
}

// Close releases the database, if one was opened.
func (d *Dependencies) Close() {
	if d.DB == nil {
		return
	}
	if err := d.DB.Close(); err != nil {
		d.Logger.Error("Failed to close database", "error", err)
	}
}

// buildSessionRepository selects the session store. The sqlite store opens
// the database and runs migrations; the memory store needs neither.
func buildSessionRepository(cfg *config.AppConfig, logger *logging.Logger) (contracts.SessionRepository, *database.Database, error) {
	switch cfg.SessionStore {
	case config.SessionStoreMemory:
		logger.Warn("Sessions are kept in memory and will not survive a restart")
		return repositories.NewMemorySessionRepository(), nil, nil
	case config.SessionStoreSQLite:
		db, err := database.New(*cfg.Database, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return repositories.NewSqliteSessionRepository(db), db, nil
	default:
		return nil, nil, fmt.Errorf("unknown session store %q", cfg.SessionStore)
	}
}

// buildDependencies creates all application dependencies
func buildDependencies(cfg *config.AppConfig, logger *logging.Logger) (*Dependencies, error) {
	repo, db, err := buildSessionRepository(cfg, logger)
	if err != nil {
		return nil, err
	}

	// Session lifecycle events feed the activity counters on /health
	eventBus := events.NewSessionEventBus()
	activity := events.NewActivityEventHandlers()
	activity.RegisterHandlers(eventBus)

	manager := sessions.NewManager(repo, cfg.Session)
	manager.SetEventPublisher(eventBus)
	todoService := application.NewTodoService()
	listPresenter := presenters.NewListPresenter()

	return &Dependencies{
		DB:             db,
		Logger:         logger,
		SessionRepo:    repo,
		Sessions:       manager,
		EventBus:       eventBus,
		Activity:       activity,
		TodoHandlers:   handlers.NewTodoHandlers(todoService, manager, listPresenter),
		SystemHandlers: handlers.NewSystemHandlers(db, repo, activity),
	}, nil
}

func setupRoutes(deps *Dependencies, cfg *config.AppConfig) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	setupHTTPLogging(r, deps, cfg)
	r.Use(middleware.Recoverer)

	// Static assets
	mountStaticAssets(r)

	// System endpoints
	r.Get("/health", deps.SystemHandlers.Health)

	// Main application routes, bound to the visitor's session
	r.Group(func(r chi.Router) {
		r.Use(deps.Sessions.Middleware)
		deps.TodoHandlers.RegisterRoutes(r)
	})

	return r
}

func setupHTTPLogging(r *chi.Mux, deps *Dependencies, cfg *config.AppConfig) {
	if cfg.HTTPLogPath == "" {
		// No HTTP logging configured, skip
		return
	}

	logFile, err := os.OpenFile(cfg.HTTPLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		deps.Logger.Error("Failed to open HTTP log file", "error", err, "path", cfg.HTTPLogPath)
		return
	}
	// Note: logFile is not closed here as it needs to stay open for the server lifetime

	httpLogger := httplog.NewLogger("todolists", httplog.Options{
		Writer: logFile,
		JSON:   true,
	})
	r.Use(httplog.RequestLogger(httpLogger))

	deps.Logger.Info("HTTP request logging enabled", "path", cfg.HTTPLogPath)
}

func mountStaticAssets(r chi.Router) {
	sub, _ := fs.Sub(templates.FS, "assets")
	r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.FS(sub))))
}

// startServer serves until ctx is cancelled, then drains in-flight requests.
func startServer(ctx context.Context, router http.Handler, addr string, logger *logging.Logger) error {
	server := &http.Server{Addr: addr, Handler: router}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", "address", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("Server failed", "error", err)
			return err
		}
		return nil
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
		return err
	}

	logger.Info("Server stopped")
	return nil
}
