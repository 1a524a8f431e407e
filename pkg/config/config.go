package config

import "os"

type Config struct {
	AppEnv   string
	LogLevel string

	UsersFile     string
	BillsFile     string
	AdminPassword string
	SeedFile      string
}

func Load() Config {
	return Config{
		AppEnv:        getEnv("APP_ENV", "dev"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		UsersFile:     getEnv("USERS_FILE", "users.txt"),
		BillsFile:     getEnv("BILLS_FILE", "bills.txt"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
		SeedFile:      getEnv("SEED_FILE", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
