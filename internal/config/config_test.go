package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  host: 127.0.0.1
  port: 9000
azure_openai:
  api_key: file-key
  endpoint: https://example.openai.azure.com
azure_speech:
  key: speech-key
  region: centralindia
debug: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr())
	assert.Equal(t, "file-key", cfg.AzureOpenAI.APIKey)
	assert.Equal(t, "https://example.openai.azure.com", cfg.AzureOpenAI.Endpoint)
	assert.Equal(t, "centralindia", cfg.AzureSpeech.Region)
	assert.True(t, cfg.Debug)
	// Defaults fill what the file omits.
	assert.Equal(t, "2024-02-15-preview", cfg.AzureOpenAI.APIVersion)
	assert.Equal(t, "gpt-4o", cfg.AzureOpenAI.DeploymentName)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
azure_openai:
  api_key: file-key
`)
	t.Setenv("AZURE_OPENAI_API_KEY", "env-key")
	t.Setenv("AZURE_OPENAI_DEPLOYMENT_NAME", "gpt-4o-mini")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.AzureOpenAI.APIKey)
	assert.Equal(t, "gpt-4o-mini", cfg.AzureOpenAI.DeploymentName)
}

func TestLoad_MissingFileUsesEnv(t *testing.T) {
	t.Setenv("AZURE_OPENAI_API_KEY", "env-only-key")

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "env-only-key", cfg.AzureOpenAI.APIKey)
	assert.Equal(t, "0.0.0.0:8000", cfg.Server.Addr())
}

func TestLoad_MissingAPIKey(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 8000
`)
	t.Setenv("AZURE_OPENAI_API_KEY", "")

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingOpenAIKey)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "server: [not: valid")
	_, err := Load(path)
	assert.Error(t, err)
}
