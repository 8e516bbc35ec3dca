package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Shahriyor2077/ayoqsh-console/internal/api"
	"github.com/Shahriyor2077/ayoqsh-console/internal/cache"
	"github.com/Shahriyor2077/ayoqsh-console/internal/config"
	"github.com/Shahriyor2077/ayoqsh-console/internal/console"
	"github.com/Shahriyor2077/ayoqsh-console/internal/data"
	"github.com/Shahriyor2077/ayoqsh-console/internal/notify"
	"github.com/Shahriyor2077/ayoqsh-console/internal/session"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("konsol xato bilan tugadi")
	}
}

func run() error {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := session.NewStore(cfg.StateDir)
	if err != nil {
		return fmt.Errorf("session store: %w", err)
	}

	notifier := notify.NewConsole(os.Stderr)
	cacheStore := cache.New()

	client, err := api.New(api.Config{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.HTTPTimeout,
		Token:   session.TokenSource(store),
		RPS:     cfg.RateLimit.RequestsPerSecond,
		Burst:   cfg.RateLimit.Burst,
	})
	if err != nil {
		return fmt.Errorf("api client: %w", err)
	}

	manager := session.NewManager(client, store, cacheStore, notifier, cfg.SessionTTL, cfg.SessionMaxStale)
	service := data.NewService(client, cacheStore, notifier)

	return console.New(manager, service, os.Stdout).Run(ctx, os.Args[1:])
}
