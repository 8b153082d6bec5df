package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "server:\n  port: 9090\n"))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Store.Driver)
	assert.Equal(t, "imgbb", cfg.ImageHost.Provider)
	assert.Equal(t, "https://api.imgflip.com", cfg.Templates.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Templates.Timeout)
	assert.Equal(t, 10, cfg.Leaderboard.Limit)
}

func TestLoad_EnvOverridesSecrets(t *testing.T) {
	t.Setenv("IMGBB_API_KEY", "secret-key")
	t.Setenv("STORE_DRIVER", "redis")
	t.Setenv("REDIS_ADDR", "cache:6380")

	cfg, err := Load(writeConfig(t, "image_host:\n  api_key: from-file\n"))
	require.NoError(t, err)

	assert.Equal(t, "secret-key", cfg.ImageHost.APIKey)
	assert.Equal(t, "redis", cfg.Store.Driver)
	assert.Equal(t, "cache:6380", cfg.Redis.Addr)
}

func TestLoad_CaptionPool(t *testing.T) {
	cfg, err := Load(writeConfig(t, "captions:\n  - text: Debugging be like...\n    weight: 5\n  - text: Me waiting for the weekend like...\n    weight: 1\n"))
	require.NoError(t, err)

	assert.Equal(t, []CaptionConfig{
		{Text: "Debugging be like...", Weight: 5},
		{Text: "Me waiting for the weekend like...", Weight: 1},
	}, cfg.Captions)
}

func TestLoad_RejectsInvalidCombination(t *testing.T) {
	_, err := Load(writeConfig(t, "store:\n  driver: postgres\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.url")
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			Store:       StoreConfig{Driver: "memory"},
			ImageHost:   ImageHostConfig{Provider: "imgbb"},
			Leaderboard: LeaderboardConfig{Limit: 10},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "unknown driver", mutate: func(c *Config) { c.Store.Driver = "etcd" }, wantErr: true},
		{name: "postgres with url", mutate: func(c *Config) {
			c.Store.Driver = "postgres"
			c.Database.URL = "postgres://localhost/memes"
		}},
		{name: "s3 without bucket", mutate: func(c *Config) { c.ImageHost.Provider = "s3" }, wantErr: true},
		{name: "unknown provider", mutate: func(c *Config) { c.ImageHost.Provider = "imgur" }, wantErr: true},
		{name: "zero limit", mutate: func(c *Config) { c.Leaderboard.Limit = 0 }, wantErr: true},
		{name: "weighted captions", mutate: func(c *Config) {
			c.Captions = []CaptionConfig{{Text: "a", Weight: 3}, {Text: "b", Weight: 0}}
		}},
		{name: "negative caption weight", mutate: func(c *Config) {
			c.Captions = []CaptionConfig{{Text: "a", Weight: -1}}
		}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDSN(t *testing.T) {
	cfg := Config{
		Store:    StoreConfig{Driver: "postgres"},
		Database: DatabaseConfig{Path: "./data/x.db", URL: "postgres://db"},
	}
	assert.Equal(t, "postgres://db", cfg.DSN())

	cfg.Store.Driver = "sqlite"
	assert.Equal(t, "./data/x.db", cfg.DSN())
}
