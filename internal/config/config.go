package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Драйверы БД
const (
	DriverSQLite     = "sqlite"
	DriverSQLitePure = "sqlite-pure"
	DriverPostgres   = "postgres"
)

// Config содержит настройки приложения
type Config struct {
	Database DatabaseConfig
	Log      LogConfig
}

// LogConfig - настройки журнала. Терминал занят интерфейсом, поэтому журнал пишется в файл.
type LogConfig struct {
	File  string
	Level string
}

// SlogLevel возвращает уровень для slog; неизвестное значение даёт Info
func (c *LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// DatabaseConfig - настройки подключения к БД
type DatabaseConfig struct {
	Driver          string
	Path            string
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	ConnectAttempts int
}

// DSN возвращает строку подключения к PostgreSQL
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// SQLiteDSN возвращает строку подключения к файлу SQLite с включёнными внешними ключами.
// Параметр отличается у cgo-драйвера и у modernc.
func (c *DatabaseConfig) SQLiteDSN() string {
	if c.Driver == DriverSQLitePure {
		return c.Path + "?_pragma=foreign_keys(1)"
	}
	return c.Path + "?_foreign_keys=on"
}

// Dialect возвращает диалект goose для драйвера
func (c *DatabaseConfig) Dialect() string {
	if c.Driver == DriverPostgres {
		return "postgres"
	}
	return "sqlite3"
}

// Load загружает конфигурацию из переменных окружения
func Load() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver:          getEnv("DB_DRIVER", DriverSQLite),
			Path:            getEnv("DB_PATH", "workshop.db"),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			DBName:          getEnv("DB_NAME", "workshop"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			ConnectAttempts: getEnvInt("DB_CONNECT_ATTEMPTS", 30),
		},
		Log: LogConfig{
			File:  getEnv("LOG_FILE", "workshop.log"),
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverSQLite, DriverSQLitePure:
		if c.Database.Path == "" {
			return fmt.Errorf("database path is required for driver %q", c.Database.Driver)
		}
	case DriverPostgres:
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Database.ConnectAttempts < 1 {
		return fmt.Errorf("connect attempts must be positive, got %d", c.Database.ConnectAttempts)
	}
	return nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
