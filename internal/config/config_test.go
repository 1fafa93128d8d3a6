package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
server:
  port: 9090
  host: "0.0.0.0"

bedrock:
  model_id: "anthropic.claude-3-haiku-20240307-v1:0"
  region: "us-west-2"
  timeout_seconds: 45
  enabled: true

redis:
  addr: "redis:6379"
  history_ttl_hours: 48
  enabled: true

engine:
  max_content_length: 10000
  max_ai_suggestions: 3
`
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "anthropic.claude-3-haiku-20240307-v1:0", cfg.Bedrock.ModelID)
	assert.Equal(t, "us-west-2", cfg.Bedrock.Region)
	assert.Equal(t, 45, cfg.Bedrock.TimeoutSeconds)
	assert.True(t, cfg.Bedrock.Enabled)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 48, cfg.Redis.HistoryTTLHours)
	assert.Equal(t, 10000, cfg.Engine.MaxContentLength)
	assert.Equal(t, 3, cfg.Engine.MaxAISuggestions)
}

func TestLoadDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("server:\n  port: 0\n"), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "anthropic.claude-3-sonnet-20240229-v1:0", cfg.Bedrock.ModelID)
	assert.Equal(t, 30, cfg.Bedrock.TimeoutSeconds)
	assert.Equal(t, 50000, cfg.Engine.MaxContentLength)
	assert.Equal(t, 5, cfg.Engine.MaxAISuggestions)
	assert.Equal(t, 100, cfg.Redis.HistoryMaxItems)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	assert.Error(t, err)
}

func TestLoadFromEnvMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := LoadFromEnv("/nonexistent/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30, cfg.Bedrock.TimeoutSeconds)
}

func TestLoadFromEnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("server:\n  port: 8081\n"), 0644))

	t.Setenv("BEDROCK_MODEL_ID", "anthropic.claude-3-opus-20240229-v1:0")
	t.Setenv("REDIS_ADDR", "override:6379")

	cfg, err := LoadFromEnv(configPath)
	require.NoError(t, err)

	assert.Equal(t, "anthropic.claude-3-opus-20240229-v1:0", cfg.Bedrock.ModelID)
	assert.Equal(t, "override:6379", cfg.Redis.Addr)
	assert.True(t, cfg.Redis.Enabled)
}
