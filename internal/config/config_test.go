package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	base := Config{
		Port:      "8294",
		JWTSecret: "0123456789abcdef0123456789abcdef",
		MediaDir:  "/tmp/mooduck/media",
	}

	t.Run("valid development config", func(t *testing.T) {
		cfg := base
		cfg.Env = "development"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("missing port", func(t *testing.T) {
		cfg := base
		cfg.Port = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		cfg := base
		cfg.JWTSecret = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing media dir", func(t *testing.T) {
		cfg := base
		cfg.MediaDir = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("production rejects default secret", func(t *testing.T) {
		cfg := base
		cfg.Env = "production"
		cfg.JWTSecret = "your-secret-key-change-in-production"
		assert.Error(t, cfg.Validate())
	})

	t.Run("production rejects short secret", func(t *testing.T) {
		cfg := base
		cfg.Env = "production"
		cfg.JWTSecret = "short"
		assert.Error(t, cfg.Validate())
	})

	t.Run("production rejects weak db password", func(t *testing.T) {
		cfg := base
		cfg.Env = "production"
		cfg.DBPassword = "password"
		assert.Error(t, cfg.Validate())
	})
}
