package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse(nil, "empty")
	require.NoError(t, err)

	assert.Equal(t, 2333, cfg.Port)
	assert.True(t, cfg.IsDev())
	assert.Equal(t, DriverMySQL, cfg.Database.Driver)
	assert.Equal(t, "root:password@tcp(127.0.0.1:3306)/portfolio?charset=utf8mb4&loc=Local&parseTime=true", cfg.DSN)
	assert.False(t, cfg.Redis.Enable)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, 10*time.Second, cfg.Mail.Timeout)
	assert.Equal(t, StorageLocal, cfg.Storage.Driver)
	assert.Equal(t, 5, cfg.Contact.RateLimit)
	assert.Equal(t, 10*time.Minute, cfg.Contact.RateWindow)
}

func TestParse_SQLiteAndSections(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "site.db")
	content := []byte(`
port: 8080
env: production
database:
  driver: sqlite3
  path: ` + dbPath + `
mail:
  enable: true
  timeout: 3s
  admins: [" owner@example.com ", ""]
  smtp:
    host: smtp.example.com
    user: site@example.com
contact:
  rate_limit: 2
  rate_window: 1m
allowed_origins:
  - https://example.com
`)

	cfg, err := Parse(content, "inline")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.False(t, cfg.IsDev())
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, dbPath, cfg.DSN)
	assert.True(t, cfg.Mail.Enable)
	assert.Equal(t, 3*time.Second, cfg.Mail.Timeout)
	assert.Equal(t, []string{"owner@example.com"}, cfg.Mail.Admins)
	assert.Equal(t, "site@example.com", cfg.Mail.From)
	assert.Equal(t, 2, cfg.Contact.RateLimit)
	assert.Equal(t, time.Minute, cfg.Contact.RateWindow)
	assert.Equal(t, []string{"https://example.com"}, cfg.AllowedOrigins)
}

func TestParse_EnvOverrides(t *testing.T) {
	t.Setenv(EnvPrefix+"PORT", "9000")
	t.Setenv(EnvPrefix+"JWT_SECRET", "from-env")
	t.Setenv(EnvPrefix+"DB_DRIVER", "sqlite")
	t.Setenv(EnvPrefix+"DB_PATH", ":memory:")
	t.Setenv(EnvPrefix+"REDIS_URL", "127.0.0.1:6380")

	cfg, err := Parse([]byte("port: 8080\njwt_secret: from-file\n"), "inline")
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "from-env", cfg.JWTSecret)
	assert.Equal(t, ":memory:", cfg.DSN)
	assert.True(t, cfg.Redis.Enable)
	assert.Equal(t, "redis://127.0.0.1:6380", cfg.RedisURL)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{"unknown driver", "database:\n  driver: postgres\n", "unsupported database.driver"},
		{"bad port", "port: 70000\n", "invalid port"},
		{"unknown key", "colour: blue\n", "field colour not found"},
		{"bad window", "contact:\n  rate_window: soon\n", "invalid contact.rate_window"},
		{"negative limit", "contact:\n  rate_limit: -1\n", "invalid contact.rate_limit"},
		{"incomplete s3", "storage:\n  driver: s3\n  s3:\n    bucket: media\n", "incomplete storage.s3"},
		{"unknown storage", "storage:\n  driver: ftp\n", "unsupported storage.driver"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content), "inline")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
