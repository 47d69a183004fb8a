package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/workshop-registry/internal/config"
	"github.com/workshop-registry/internal/handler"
	"github.com/workshop-registry/internal/repository"
	"github.com/workshop-registry/internal/service"
	"github.com/workshop-registry/internal/tui"
	"github.com/workshop-registry/migrations"
	"gorm.io/gorm"
)

var cfg *config.Config

// Execute разбирает аргументы и запускает команду
func Execute(version string) error {
	cfg = config.Load()

	root := &cobra.Command{
		Use:           "workshop",
		Short:         "Department and seller registry",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cfg.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd.Context(), version)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfg.Database.Driver, "db-driver", cfg.Database.Driver, "database driver: sqlite, sqlite-pure or postgres")
	flags.StringVar(&cfg.Database.Path, "db-path", cfg.Database.Path, "sqlite database file")
	flags.StringVar(&cfg.Log.File, "log-file", cfg.Log.File, "log file")
	flags.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "log level: debug, info, warn, error")

	root.AddCommand(migrateCmd())

	err := root.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func runUI(ctx context.Context, version string) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return errors.New("workshop requires a terminal, use `workshop migrate` for non-interactive setup")
	}

	logger, closer, err := newFileLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()
	slog.SetDefault(logger)

	db, err := openDatabase(logger)
	if err != nil {
		logger.Error("failed to prepare database", slog.Any("error", err))
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	// Инициализация репозиториев
	deptRepo := repository.NewDepartmentRepository(db)
	sellerRepo := repository.NewSellerRepository(db)

	// Инициализация сервисов
	deptService := service.NewDepartmentService(deptRepo, sellerRepo)
	sellerService := service.NewSellerService(sellerRepo, deptRepo)

	validator, err := handler.NewFormValidator()
	if err != nil {
		return err
	}

	app := tui.NewApp(logger, version)
	router := handler.NewRouter(deptService, sellerService, validator, logger)
	app.SetRoutes(router.Setup(app, app))

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("application is starting", slog.String("version", version), slog.String("driver", cfg.Database.Driver))
	if err := app.Run(ctx); err != nil {
		logger.Error("application stopped with error", slog.Any("error", err))
		return err
	}
	logger.Info("application stopped")
	return nil
}

// openDatabase подключается к БД и применяет миграции
func openDatabase(logger *slog.Logger) (*gorm.DB, error) {
	db, err := repository.Open(cfg.Database, logger)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if err := migrations.Up(sqlDB, cfg.Database.Dialect(), logger); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// newFileLogger пишет JSON-журнал в файл: экран занят интерфейсом
func newFileLogger(c config.LogConfig) (*slog.Logger, io.Closer, error) {
	f, err := os.OpenFile(c.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level: c.SlogLevel(),
	}))
	return logger, f, nil
}
