package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"auth": map[string]any{
			"jwtSecret": "",
		},
		"rateLimit": map[string]any{
			"redisUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "AUTH_JWTSECRET", want: "auth.jwtSecret"},
		{envKey: "RATELIMIT_REDISURL", want: "rateLimit.redisUrl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaultsAndValidate(t *testing.T) {
	cfg := &Config{Auth: &AuthConfig{JWTSecret: "secret"}}
	cfg.Storage.Driver = "memory"

	applyDefaults(cfg)

	assert.Equal(t, "100KB", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "/login", cfg.Routes.LoginPath)
	assert.Equal(t, "/pricing", cfg.Routes.UpgradePath)
	assert.Equal(t, time.Hour, cfg.Auth.AccessTokenTTL)
	require.NoError(t, cfg.validate())

	t.Run("postgres driver needs connection settings", func(t *testing.T) {
		cfg := &Config{Auth: &AuthConfig{JWTSecret: "secret"}}
		applyDefaults(cfg)

		assert.Equal(t, "postgres", cfg.Storage.Driver)
		require.Error(t, cfg.validate())
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := &Config{Auth: &AuthConfig{JWTSecret: "secret"}}
		cfg.Storage.Driver = "sqlite"

		require.Error(t, cfg.validate())
	})

	t.Run("secret required", func(t *testing.T) {
		cfg := &Config{}
		cfg.Storage.Driver = "memory"

		require.Error(t, cfg.validate())
	})
}
