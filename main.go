package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solo/internal/config"
	"github.com/robalobadob/wordle/apps/go-solo/internal/game"
	"github.com/robalobadob/wordle/apps/go-solo/internal/httpserver"
	"github.com/robalobadob/wordle/apps/go-solo/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	cfg.SetupLogging()

	gc, err := cfg.Game()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid game config")
	}
	m, err := game.New(gc)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid game config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mem := store.NewMemoryStore()
	go store.RunSweeper(ctx, mem, cfg.SessionTTL, time.Minute)

	srv := httpserver.New(m, mem, httpserver.Options{
		Secret:         []byte(cfg.SessionSecret),
		CookieName:     cfg.CookieName,
		ClientOrigin:   cfg.ClientOrigin,
		SecureCookies:  os.Getenv("NODE_ENV") == "production",
		WSEventsPerSec: cfg.WSEventsPerSec,
	})

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("shutdown")
		}
	}()

	log.Info().
		Str("port", cfg.Port).
		Int("maxGuesses", gc.MaxGuesses).
		Int("wordLength", gc.WordLength).
		Str("scoring", string(gc.Scoring)).
		Msg("starting wordle server")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
