package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port string

	// MongoURI is the connection string for the document store.
	MongoURI string
	// DBName is the database holding the listing collections (default "nestlist").
	DBName string

	// SessionSecret signs session cookie tokens. In prod it must be set and
	// not the default.
	SessionSecret string

	// SessionTTLHours is the session lifetime in hours (default 24). Set via SESSION_TTL_HOURS.
	SessionTTLHours int

	// AdminEmail is the administrator account. Access to /admin requires an
	// exact match against the session principal's email.
	AdminEmail string

	// Env is "dev" (default) or "prod". When "prod", session cookies carry the
	// Secure attribute.
	Env string
}

func Load() Config {
	return Config{
		Port: getEnv("PORT", "5000"),

		MongoURI: getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:   getEnv("DB_NAME", "nestlist"),

		SessionSecret:   getEnv("SESSION_SECRET", "dev-session-secret"),
		SessionTTLHours: getEnvInt("SESSION_TTL_HOURS", 24),

		AdminEmail: getEnv("ADMIN_EMAIL", "admin@gmail.com"),

		Env: getEnv("ENV", "dev"),
	}
}

// Prod reports whether the app runs with production hardening (secure cookies).
func (c Config) Prod() bool {
	return c.Env == "prod"
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
