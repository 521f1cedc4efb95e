package config

import (
	"errors"
	"os"
)

type Config struct {
	Port          string
	MongoURI      string
	MongoDatabase string
	JWTSecret     string
	AllowOrigins  string
}

// LoadConfig reads configuration from the environment. The signing secret
// and the store URI have no defaults: startup fails without them.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		MongoURI:      os.Getenv("MONGO_URI"),
		MongoDatabase: getEnv("MONGO_DB", "eventmate"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		AllowOrigins:  getEnv("ALLOW_ORIGINS", "*"),
	}

	if cfg.MongoURI == "" {
		return nil, errors.New("MONGO_URI is not set")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
