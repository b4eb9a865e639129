package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/moderato-bot/moderato/internal/biz/usecase"
	"github.com/moderato-bot/moderato/internal/conf"
	"github.com/moderato-bot/moderato/internal/data"
	"github.com/moderato-bot/moderato/internal/server"
	"github.com/moderato-bot/moderato/internal/service"
	"github.com/moderato-bot/moderato/llmfilter"
	"github.com/moderato-bot/moderato/telegram"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := conf.LoadFromEnv()
	if err := config.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	tgClient, err := telegram.NewClient(config.Telegram.Token, config.Debug)
	if err != nil {
		log.Fatalf("Failed to create Telegram client: %v", err)
	}

	var llmClient *llmfilter.Client
	if config.Filter.APIKey != "" {
		llmClient = llmfilter.NewClient(config.Filter.APIKey, config.Filter.BaseURL, config.Filter.Model)
		fmt.Println("LLM spam filter enabled")
	}

	repos := data.NewRepositories(
		tgClient,
		llmClient,
		config.Moderation.KeywordURL,
		config.Moderation.KeywordList,
		config.Moderation.AdminIDs,
	)

	cache := usecase.NewKeywordCache(repos.Keywords, config.Moderation.KeywordTTL())
	gate := usecase.NewGate(repos.Moderation, config.Moderation.RequiredChannel, config.Moderation.VerifyTimeoutMin)
	commands := usecase.NewCommands(repos.Moderation, repos.Admins)
	enforcer := usecase.NewEnforcer(cache, repos.Moderation, repos.Filter, config.Moderation.BanDuration())

	svc := service.NewModeration(gate, commands, enforcer)
	webhook := server.NewWebhook(svc, config.Telegram.ListenAddr, config.Telegram.WebhookPath)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Println("\nShutting down...")
		if err := webhook.Stop(); err != nil {
			fmt.Printf("Shutdown error: %v\n", err)
		}
		os.Exit(0)
	}()

	fmt.Println("Starting moderato...")
	if err := webhook.Start(); err != nil {
		log.Fatalf("Webhook server error: %v", err)
	}
}
