package config

import (
	"fmt"
	"os"

	"portfolio-gateway/internal/domain/entity"

	"gopkg.in/yaml.v3"
)

// Config holds everything read from the environment at startup. The rate
// limit itself is a fixed constant of the admission store, not configuration.
type Config struct {
	Port        string
	GeminiKey   string
	GeminiModel string
	RedisAddr   string
	ProfilePath string
}

func Load() Config {
	cfg := Config{
		Port:        os.Getenv("PORT"),
		GeminiKey:   os.Getenv("GEMINI_API_KEY"),
		GeminiModel: os.Getenv("GEMINI_MODEL"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		ProfilePath: os.Getenv("PROFILE_PATH"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.GeminiModel == "" {
		cfg.GeminiModel = "gemini-2.0-flash-lite"
	}
	return cfg
}

// LoadProfile reads a YAML profile file replacing the built-in résumé
// dataset. The result is treated as immutable for the process lifetime.
func LoadProfile(path string) (*entity.ProfileContext, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile file: %w", err)
	}
	var profile entity.ProfileContext
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("parse profile file: %w", err)
	}
	if profile.Personal.Name == "" {
		return nil, fmt.Errorf("profile file %s has no personal.name", path)
	}
	return &profile, nil
}
