// internal/config/config.go
//
// Runtime configuration for both front-ends.
// Values come from the environment; a `.env` file in the working directory
// is loaded first when present (development).

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solo/internal/game"
	"github.com/robalobadob/wordle/apps/go-solo/internal/words"
)

// Config is the full process configuration.
type Config struct {
	TargetWord string `env:"TARGET_WORD"` // empty → embedded default
	MaxGuesses int    `env:"MAX_GUESSES" envDefault:"6"`
	WordLength int    `env:"WORD_LENGTH" envDefault:"5"`
	Scoring    string `env:"SCORING" envDefault:"two-pass"`

	Port         string `env:"PORT" envDefault:"5175"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat    string `env:"LOG_FORMAT" envDefault:"json"`
	ClientOrigin string `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`

	SessionSecret  string        `env:"SESSION_SECRET" envDefault:"dev_secret_change_me"`
	CookieName     string        `env:"COOKIE_NAME" envDefault:"wordle_session"`
	SessionTTL     time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	WSEventsPerSec float64       `env:"WS_EVENTS_PER_SEC" envDefault:"20"`
}

// Load reads .env (if any) and parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	var c Config
	if err := env.Parse(&c); err != nil {
		return c, fmt.Errorf("parse env: %w", err)
	}
	if c.TargetWord == "" {
		w, err := words.DefaultTarget()
		if err != nil {
			return c, fmt.Errorf("default target: %w", err)
		}
		c.TargetWord = w
	}
	return c, nil
}

// Game returns the validated game configuration.
func (c Config) Game() (game.Config, error) {
	return game.Config{
		TargetWord: c.TargetWord,
		MaxGuesses: c.MaxGuesses,
		WordLength: c.WordLength,
		Scoring:    game.Scoring(c.Scoring),
	}.Validate()
}

// SetupLogging configures the global zerolog logger.
// Unknown levels keep zerolog's default.
func (c Config) SetupLogging() {
	if lvl, err := zerolog.ParseLevel(c.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if c.LogFormat == "console" {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
			With().Timestamp().Logger()
	}
}
