package repository

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/workshop-registry/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	_ "modernc.org/sqlite" // регистрирует драйвер "sqlite" без cgo
)

// Open подключается к БД выбранным драйвером
func Open(cfg config.DatabaseConfig, logger *slog.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DSN())
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.SQLiteDSN())
	case config.DriverSQLitePure:
		dialector = sqlite.New(sqlite.Config{
			DriverName: "sqlite",
			DSN:        cfg.SQLiteDSN(),
		})
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	gormCfg := &gorm.Config{
		Logger: gormlogger.New(slogWriter{logger: logger}, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
		TranslateError: true,
	}

	attempts := cfg.ConnectAttempts
	if attempts < 1 {
		attempts = 1
	}

	var db *gorm.DB
	var err error
	for i := 0; i < attempts; i++ {
		db, err = gorm.Open(dialector, gormCfg)
		if err == nil {
			if err = ping(db); err == nil {
				return db, nil
			}
		}
		logger.Warn("database is not ready", slog.Int("attempt", i+1), slog.Any("error", err))
		if i < attempts-1 {
			time.Sleep(time.Second)
		}
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempts, err)
}

func ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// slogWriter передаёт журнал GORM в slog
type slogWriter struct {
	logger *slog.Logger
}

func (w slogWriter) Printf(format string, args ...interface{}) {
	w.logger.Warn(fmt.Sprintf(format, args...), slog.String("component", "gorm"))
}
