// Command wordle-tui plays the game in a terminal.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solo/internal/config"
	"github.com/robalobadob/wordle/apps/go-solo/internal/game"
	"github.com/robalobadob/wordle/apps/go-solo/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	// the screen owns the terminal; only log when asked to
	if os.Getenv("LOG_LEVEL") == "" {
		cfg.LogLevel = "disabled"
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

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal().Err(err).Msg("open terminal")
	}
	if err := screen.Init(); err != nil {
		log.Fatal().Err(err).Msg("init terminal")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	err = tui.New(screen, m).Run(ctx)
	stop()
	screen.Fini()
	if err != nil && ctx.Err() == nil {
		log.Fatal().Err(err).Msg("tui exited")
	}
}
