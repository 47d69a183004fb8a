package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: cfg.Log.SlogLevel(),
			}))

			db, err := openDatabase(logger)
			if err != nil {
				logger.Error("failed to migrate database", slog.Any("error", err))
				return err
			}
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			defer sqlDB.Close()

			logger.Info("database is up to date", slog.String("driver", cfg.Database.Driver))
			return nil
		},
	}
}
