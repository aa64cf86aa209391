package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"salimas-planner/internal/config"
	"salimas-planner/internal/remote"
	"salimas-planner/internal/shopping"
	"salimas-planner/internal/suggest"
	"salimas-planner/internal/telegram"
)

func main() {
	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.TelegramBotToken == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN is not set")
	}

	client := remote.NewClient(cfg)
	list := shopping.NewStore(client)
	suggester := suggest.NewProvider(client)

	bot, err := telegram.NewBot(cfg, list, suggester)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Println("Shopping-list bot running. Press Ctrl+C to stop.")
	if err := bot.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("Bot stopped: %v", err)
	}
}
