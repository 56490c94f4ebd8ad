package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"todolists/database"
	"todolists/domain/contracts"
	"todolists/infrastructure/config"
	"todolists/infrastructure/repositories"
	"todolists/infrastructure/sessions"
	"todolists/logging"
)

// App carries the configuration resolved before any subcommand runs.
type App struct {
	ConfigPath string
	EnvFiles   []string
	Config     *config.AppConfig
	Logger     *logging.Logger
}

func newRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "todolists",
		Short:        "Session-backed todo list web application",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), app)
		},
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", "", "TOML config file (keys are environment variable names)")
	cmd.PersistentFlags().StringSliceVar(&app.EnvFiles, "env-file", []string{".env"}, ".env files to load")

	cmd.AddCommand(newServeCmd(app))
	cmd.AddCommand(newMigrateCmd(app))
	cmd.AddCommand(newSessionsCmd(app))
	return cmd
}

func (a *App) init() error {
	if err := config.LoadEnvironment(a.EnvFiles...); err != nil {
		return err
	}
	if a.ConfigPath == "" {
		a.ConfigPath = os.Getenv("CONFIG_FILE")
	}
	cfg, err := config.LoadAppConfig(a.ConfigPath)
	if err != nil {
		return err
	}
	a.Config = cfg
	a.Logger = initializeLogging(cfg)
	return nil
}

func newServeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), app)
		},
	}
}

func newMigrateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations and list their status",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.New(*app.Config.Database, app.Logger)
			if err != nil {
				return err
			}
			defer db.Close()

			statuses, err := db.MigrationStatuses(cmd.Context())
			if err != nil {
				return err
			}
			for _, s := range statuses {
				state := "pending"
				if s.Applied {
					state = "applied"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", s.Version, s.Name, state)
			}
			return nil
		},
	}
}

func newSessionsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Inspect and maintain stored sessions",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "prune",
		Short: "Delete sessions idle for longer than SESSION_TTL",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSessionRepository(app, func(repo contracts.SessionRepository) error {
				manager := sessions.NewManager(repo, app.Config.Session)
				removed, err := manager.Prune(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "removed %d expired sessions\n", removed)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <session-id>",
		Short: "Delete one stored session, discarding its lists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSessionRepository(app, func(repo contracts.SessionRepository) error {
				if err := repo.Delete(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted session %s\n", args[0])
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "count",
		Short: "Print the number of stored sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSessionRepository(app, func(repo contracts.SessionRepository) error {
				count, err := repo.Count(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), count)
				return nil
			})
		},
	})

	return cmd
}

// withSessionRepository opens the persistent session store for maintenance
// commands. The memory store lives only inside a running server.
func withSessionRepository(app *App, fn func(contracts.SessionRepository) error) error {
	if app.Config.SessionStore != config.SessionStoreSQLite {
		return errors.New("session maintenance requires SESSION_STORE=sqlite")
	}
	db, err := database.New(*app.Config.Database, app.Logger)
	if err != nil {
		return err
	}
	defer db.Close()

	return fn(repositories.NewSqliteSessionRepository(db))
}

func runServe(ctx context.Context, app *App) error {
	if ctx == nil {
		ctx = context.Background()
	}
	appCtx, stop := signal.NotifyContext(ctx, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	deps, err := buildDependencies(app.Config, app.Logger)
	if err != nil {
		return err
	}
	defer deps.Close()

	go deps.Sessions.RunJanitor(appCtx)

	router := setupRoutes(deps, app.Config)
	return startServer(appCtx, router, app.Config.HTTPAddr, app.Logger)
}

func initializeLogging(cfg *config.AppConfig) *logging.Logger {
	logger := logging.NewLogger(cfg.Logging)
	logging.SetDefault(logger)

	logger.Info("Application starting",
		"log_level", cfg.Logging.Level,
		"log_format", cfg.Logging.Format,
		"session_store", cfg.SessionStore,
		"db_path", cfg.Database.Path,
	)

	return logger
}
