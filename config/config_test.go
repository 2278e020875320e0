package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envOf(map[string]string{"DATABASE_URL": "postgres://localhost/cricket"}))
	require.NoError(t, err)

	assert.Equal(t, StorageDriverPostgres, cfg.StorageDriver)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.False(t, cfg.CheckReferences)
	assert.True(t, cfg.AutoMigrate)
	assert.True(t, cfg.RequestLogging)
	assert.Equal(t, 5*time.Second, cfg.DBConnectTimeout)
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := FromEnv(envOf(map[string]string{
		"STORAGE_DRIVER":       "Memory",
		"SERVER_PORT":          "9090",
		"LOG_LEVEL":            "debug",
		"CORS_ALLOWED_ORIGINS": "https://a.example, https://b.example,",
		"CHECK_REFERENCES":     "true",
		"AUTO_MIGRATE":         "false",
		"DB_CONNECT_TIMEOUT":   "2s",
		"R2_BUCKET_NAME":       "snapshots",
	}))
	require.NoError(t, err)

	assert.Equal(t, StorageDriverMemory, cfg.StorageDriver)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.True(t, cfg.CheckReferences)
	assert.False(t, cfg.AutoMigrate)
	assert.Equal(t, 2*time.Second, cfg.DBConnectTimeout)
	assert.Equal(t, "snapshots", cfg.R2BucketName)
}

func TestFromEnv_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{name: "missing database url", env: map[string]string{}, want: "DATABASE_URL"},
		{name: "unknown driver", env: map[string]string{"STORAGE_DRIVER": "sqlite"}, want: "STORAGE_DRIVER"},
		{name: "bad port", env: map[string]string{"STORAGE_DRIVER": "memory", "SERVER_PORT": "http"}, want: "SERVER_PORT"},
		{name: "port out of range", env: map[string]string{"STORAGE_DRIVER": "memory", "SERVER_PORT": "70000"}, want: "SERVER_PORT"},
		{name: "bad log level", env: map[string]string{"STORAGE_DRIVER": "memory", "LOG_LEVEL": "loud"}, want: "LOG_LEVEL"},
		{name: "bad bool", env: map[string]string{"STORAGE_DRIVER": "memory", "CHECK_REFERENCES": "maybe"}, want: "CHECK_REFERENCES"},
		{name: "bad timeout", env: map[string]string{"STORAGE_DRIVER": "memory", "DB_CONNECT_TIMEOUT": "-1s"}, want: "DB_CONNECT_TIMEOUT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromEnv(envOf(tt.env))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_ReadsProcessEnvironment(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("SERVER_PORT", "8181")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8181, cfg.ServerPort)
}
