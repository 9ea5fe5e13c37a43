package main

import (
	"context"
	"log"

	"portfolio-gateway/internal/adapter/api"
	"portfolio-gateway/internal/adapter/client"
	"portfolio-gateway/internal/adapter/store"
	"portfolio-gateway/internal/config"
	"portfolio-gateway/internal/domain/entity"
	"portfolio-gateway/internal/domain/repository"
	"portfolio-gateway/internal/usecase"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	if err := godotenv.Load(".env.dev"); err != nil {
		log.Println("Warning: .env.dev file not found, using system environment variables")
	}
	ctx := context.Background()
	cfg := config.Load()

	// Static résumé dataset, loaded once and never mutated afterwards.
	profile := entity.DefaultProfile()
	if cfg.ProfilePath != "" {
		loaded, err := config.LoadProfile(cfg.ProfilePath)
		if err != nil {
			log.Fatalf("failed to load profile from %s: %v", cfg.ProfilePath, err)
		}
		profile = loaded
		log.Printf("Loaded profile for %s from %s", profile.Personal.Name, cfg.ProfilePath)
	}

	// Admission window: process-local by default, shared via Redis when a
	// multi-instance deployment needs one globally accurate limit.
	var admission repository.Admission
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		admission = store.NewRedisAdmission(rdb, store.DefaultMaxRequests, store.DefaultWindow)
		log.Printf("Rate limiting via shared Redis window at %s", cfg.RedisAddr)
	} else {
		admission = store.NewMemoryAdmission(store.DefaultMaxRequests, store.DefaultWindow)
	}

	// A missing or bad credential must not crash the process: requests keep
	// getting the configuration-error response until the key is fixed.
	var provider repository.CompletionProvider
	gemini, err := client.NewGeminiProvider(ctx, cfg.GeminiKey, cfg.GeminiModel)
	if err != nil {
		log.Printf("[CHAT-GATEWAY] gemini client init failed: %v (chat requests will return a configuration error)", err)
		provider = client.NewUnconfiguredProvider()
	} else {
		provider = gemini
	}

	pipeline := usecase.NewChatPipeline(admission, usecase.NewPromptAssembler(profile), provider)

	app := api.NewApp(api.NewChatHandler(pipeline))

	log.Printf("Portfolio Chat Gateway running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
