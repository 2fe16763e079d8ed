package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaultsWithoutEnvFile(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, []string{"*"}, cfg.App.AllowedOrigins)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessExpiry)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.RefreshExpiry)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.True(t, cfg.Feature.ShareValidationBypass)
	assert.True(t, cfg.Feature.ReportSampleData)
}

func TestLoadConfigReadsEnvFileAndEnvironment(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	content := "JWT_SECRET=from-file\nAPP_PORT=9000\nJWT_ACCESS_EXPIRY=30m\nFEATURE_REPORT_SAMPLE_DATA=false\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))
	t.Setenv("FEATURE_SHARE_VALIDATION_BYPASS", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com,")

	cfg, err := LoadConfig(envFile)
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.JWT.Secret)
	assert.Equal(t, "9000", cfg.App.Port)
	assert.Equal(t, 30*time.Minute, cfg.JWT.AccessExpiry)
	assert.False(t, cfg.Feature.ReportSampleData)
	assert.False(t, cfg.Feature.ShareValidationBypass)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.App.AllowedOrigins)
}

func TestLoadConfigRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestDBConfigConnectionStrings(t *testing.T) {
	db := DBConfig{Host: "db", Port: "5432", User: "u", Password: "p", Name: "health", TimeZone: "UTC"}

	assert.Equal(t, "host=db user=u password=p dbname=health port=5432 sslmode=disable TimeZone=UTC", db.DSN())
	assert.Equal(t, "pgx5://u:p@db:5432/health?sslmode=disable", db.URL())
}
