package main

import (
	"context"
	"log"
	"os"

	"supportbot/internal/adapters/discord"
	"supportbot/internal/config"
	"supportbot/internal/infrastructure/database"
	"supportbot/internal/infrastructure/i18n"
	"supportbot/internal/infrastructure/kvstore"
	"supportbot/internal/ports/output"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to initialize the database: %v", err)
	}
	defer pool.Close()

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatalf("❌ Failed to run migrations: %v", err)
	}

	translator := i18n.NewTranslator()

	var kv output.KeyValue
	redisStore, err := kvstore.NewRedisStore(ctx, cfg.RedisURL)
	if err != nil {
		// Degraded mode: language and drafts no longer survive restarts.
		log.Printf("⚠️ Redis unavailable, falling back to in-memory storage: %v", err)
		kv = kvstore.NewMemoryStore()
	} else {
		defer redisStore.Close()
		kv = redisStore
	}

	faqRepo := database.NewFaqRepository(pool)
	ticketRepo := database.NewTicketRepository(pool)
	userRepo := database.NewUserRepository(pool)

	bot := discord.NewBot(cfg, faqRepo, ticketRepo, userRepo, translator, kv)
	if err := bot.Start(); err != nil {
		log.Printf("❌ Failed to start the bot: %v", err)
		os.Exit(1)
	}
}
