package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{
		"SERVER_PORT", "STORE_BACKEND", "STORE_PATH",
		"REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD", "REDIS_DB",
		"OPENAI_API_KEY", "OPENAI_API_KEY_FILE", "OPENAI_API_URL", "OPENAI_MODEL",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "bolt", cfg.StoreBackend)
	assert.Equal(t, "caloria.db", cfg.StorePath)
	assert.Equal(t, "localhost", cfg.RedisHost)
	assert.Equal(t, "6379", cfg.RedisPort)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Empty(t, cfg.OpenAIAPIKey, "missing credential is a recognized state, not an error")
	assert.Equal(t, "https://api.openai.com/v1/chat/completions", cfg.OpenAIAPIURL)
	assert.Equal(t, "gpt-4o", cfg.OpenAIModel)
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORE_BACKEND", "redis")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg := Load()

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "redis", cfg.StoreBackend)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, "sk-test", cfg.OpenAIAPIKey)
}

func TestLoadAPIKeyFromFile(t *testing.T) {
	clearEnv(t)

	keyFile := filepath.Join(t.TempDir(), "openai_key")
	require.NoError(t, os.WriteFile(keyFile, []byte("  sk-from-file\n"), 0600))
	t.Setenv("OPENAI_API_KEY_FILE", keyFile)

	cfg := Load()

	assert.Equal(t, "sk-from-file", cfg.OpenAIAPIKey)
}

func TestLoadAPIKeyEnvWinsOverFile(t *testing.T) {
	clearEnv(t)

	keyFile := filepath.Join(t.TempDir(), "openai_key")
	require.NoError(t, os.WriteFile(keyFile, []byte("sk-from-file"), 0600))
	t.Setenv("OPENAI_API_KEY_FILE", keyFile)
	t.Setenv("OPENAI_API_KEY", "sk-from-env")

	cfg := Load()

	assert.Equal(t, "sk-from-env", cfg.OpenAIAPIKey)
}
