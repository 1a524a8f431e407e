package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "LOG_LEVEL", "USERS_FILE", "BILLS_FILE", "ADMIN_PASSWORD", "SEED_FILE"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "users.txt", cfg.UsersFile)
	assert.Equal(t, "bills.txt", cfg.BillsFile)
	assert.Equal(t, "admin123", cfg.AdminPassword)
	assert.Empty(t, cfg.SeedFile)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("USERS_FILE", "/tmp/u.txt")
	t.Setenv("BILLS_FILE", "/tmp/b.txt")
	t.Setenv("ADMIN_PASSWORD", "s3cret")
	t.Setenv("SEED_FILE", "seed.yaml")

	cfg := Load()
	assert.Equal(t, "/tmp/u.txt", cfg.UsersFile)
	assert.Equal(t, "/tmp/b.txt", cfg.BillsFile)
	assert.Equal(t, "s3cret", cfg.AdminPassword)
	assert.Equal(t, "seed.yaml", cfg.SeedFile)
}
