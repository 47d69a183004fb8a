package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("DB_PATH", "")
	t.Setenv("DB_CONNECT_ATTEMPTS", "")

	cfg := Load()

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "workshop.db", cfg.Database.Path)
	assert.Equal(t, 30, cfg.Database.ConnectAttempts)
	require.NoError(t, cfg.Validate())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", DriverPostgres)
	t.Setenv("DB_HOST", "db.local")
	t.Setenv("DB_NAME", "sales")
	t.Setenv("DB_CONNECT_ATTEMPTS", "not-a-number")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg := Load()

	assert.Equal(t, "postgres", cfg.Database.Dialect())
	assert.Contains(t, cfg.Database.DSN(), "host=db.local")
	assert.Contains(t, cfg.Database.DSN(), "dbname=sales")
	assert.Equal(t, 30, cfg.Database.ConnectAttempts)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
}

func TestSQLiteDSN(t *testing.T) {
	cgo := DatabaseConfig{Driver: DriverSQLite, Path: "a.db"}
	pure := DatabaseConfig{Driver: DriverSQLitePure, Path: "a.db"}

	assert.Equal(t, "a.db?_foreign_keys=on", cgo.SQLiteDSN())
	assert.Equal(t, "a.db?_pragma=foreign_keys(1)", pure.SQLiteDSN())
	assert.Equal(t, "sqlite3", pure.Dialect())
}

func TestValidate(t *testing.T) {
	cfg := Load()
	cfg.Database.Driver = "oracle"
	assert.Error(t, cfg.Validate())

	cfg.Database.Driver = DriverSQLitePure
	cfg.Database.Path = ""
	assert.Error(t, cfg.Validate())

	cfg.Database.Path = "x.db"
	cfg.Database.ConnectAttempts = 0
	assert.Error(t, cfg.Validate())
}
