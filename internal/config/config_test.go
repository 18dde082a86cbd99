package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestLoad(t *testing.T) {
	originalDBURL := os.Getenv("DATABASE_URL")
	originalRedisAddr := os.Getenv("REDIS_ADDR")
	originalPort := os.Getenv("PORT")
	originalAppEnv := os.Getenv("APP_ENV")
	originalBcryptCost := os.Getenv("BCRYPT_COST")

	defer func() {
		os.Setenv("DATABASE_URL", originalDBURL)
		os.Setenv("REDIS_ADDR", originalRedisAddr)
		os.Setenv("PORT", originalPort)
		os.Setenv("APP_ENV", originalAppEnv)
		os.Setenv("BCRYPT_COST", originalBcryptCost)
	}()

	t.Run("success with all values set", func(t *testing.T) {
		os.Setenv("DATABASE_URL", "postgres://localhost:5432/test")
		os.Setenv("REDIS_ADDR", "localhost:6379")
		os.Setenv("PORT", "9090")
		os.Setenv("APP_ENV", "local")
		os.Setenv("BCRYPT_COST", "12")

		cfg, err := Load()
		assert.NoError(t, err)
		assert.Equal(t, "postgres://localhost:5432/test", cfg.DatabaseURL)
		assert.Equal(t, "localhost:6379", cfg.RedisAddr)
		assert.Equal(t, "9090", cfg.Port)
		assert.Equal(t, "local", cfg.AppEnv)
		assert.Equal(t, 12, cfg.BcryptCost)
	})

	t.Run("defaults applied when optional values missing", func(t *testing.T) {
		os.Setenv("DATABASE_URL", "postgres://localhost:5432/test")
		os.Setenv("REDIS_ADDR", "localhost:6379")
		os.Unsetenv("PORT")
		os.Unsetenv("APP_ENV")
		os.Unsetenv("BCRYPT_COST")

		cfg, err := Load()
		assert.NoError(t, err)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, "production", cfg.AppEnv)
		assert.Equal(t, bcrypt.DefaultCost, cfg.BcryptCost)
	})

	t.Run("missing DATABASE_URL fails", func(t *testing.T) {
		os.Unsetenv("DATABASE_URL")
		os.Setenv("REDIS_ADDR", "localhost:6379")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("missing REDIS_ADDR fails", func(t *testing.T) {
		os.Setenv("DATABASE_URL", "postgres://localhost:5432/test")
		os.Unsetenv("REDIS_ADDR")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("non-numeric BCRYPT_COST fails", func(t *testing.T) {
		os.Setenv("DATABASE_URL", "postgres://localhost:5432/test")
		os.Setenv("REDIS_ADDR", "localhost:6379")
		os.Setenv("BCRYPT_COST", "expensive")

		_, err := Load()
		assert.Error(t, err)
	})
}
