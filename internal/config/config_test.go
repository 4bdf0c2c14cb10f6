package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"REDIS_ADDR", "REDIS_DB", "HTTP_PORT", "SUGGEST_DEBOUNCE", "WARNING_DELAY", "LOCK_TTL", "CORS_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 300*time.Millisecond, cfg.SuggestDebounce)
	assert.Equal(t, 500*time.Millisecond, cfg.WarningDelay)
	assert.Equal(t, 30*time.Second, cfg.LockTTL)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("REDIS_DB", "3")
	t.Setenv("SUGGEST_DEBOUNCE", "150ms")
	t.Setenv("CORS_ORIGINS", "http://localhost:5173, https://bar.example.com")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, 150*time.Millisecond, cfg.SuggestDebounce)
	assert.Equal(t, []string{"http://localhost:5173", "https://bar.example.com"}, cfg.CORSOrigins)
}

func TestLoadEnvFile(t *testing.T) {
	// Env files never override variables that are already set
	t.Setenv("GUILD_ID", "")
	require.NoError(t, os.Unsetenv("GUILD_ID"))
	t.Setenv("HTTP_PORT", "9090")

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("GUILD_ID=guild-42\nHTTP_PORT=7070\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "guild-42", cfg.GuildID)
	assert.Equal(t, "9090", cfg.HTTPPort)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("WARNING_DELAY", "soon")
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)

	t.Setenv("WARNING_DELAY", "")
	t.Setenv("REDIS_DB", "zero")
	_, err = Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewRedisClient(context.Background(), &Config{RedisAddr: mr.Addr()})
	require.NoError(t, err)
	defer client.Close()

	client, err = NewRedisClient(context.Background(), &Config{RedisURL: "redis://" + mr.Addr() + "/0"})
	require.NoError(t, err)
	defer client.Close()

	_, err = NewRedisClient(context.Background(), &Config{RedisURL: "not-a-url"})
	assert.Error(t, err)
}

func TestAlcoholTable(t *testing.T) {
	table, err := AlcoholTable(&Config{})
	require.NoError(t, err)
	assert.Equal(t, 40.0, table.Lookup("Vodka"))

	path := filepath.Join(t.TempDir(), "table.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ingredients:\n  Mezcal: 45\n"), 0o600))

	table, err = AlcoholTable(&Config{AlcoholTablePath: path})
	require.NoError(t, err)
	assert.Equal(t, 45.0, table.Lookup("Mezcal"))
	assert.Equal(t, 0.0, table.Lookup("Vodka"))
}
