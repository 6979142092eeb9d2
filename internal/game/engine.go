// internal/game/engine.go
//
// Core state machine for a single fixed-word game.
// Responsibilities:
//   - Validate the game configuration (target, rows, letters per row).
//   - Apply the four transitions: InputLetter, DeleteLetter, SubmitGuess, Reset.
//   - Track state: playing → won, or playing → exhausted.
//
// Notes:
//   - Every transition is total: rejected actions return the input state
//     unchanged, optionally with a Notice.
//   - The submission "word list" check is only a shared-letter test against
//     the target (see words.SharesLetter).
package game

import (
	"errors"
	"fmt"

	"github.com/robalobadob/wordle/apps/go-solo/internal/words"
)

const (
	DefaultMaxGuesses = 6
	DefaultWordLength = 5
)

// ErrInvalidConfig is wrapped by every Config.Validate failure.
var ErrInvalidConfig = errors.New("invalid game config")

// Config fixes the dimensions and answer of a game.
type Config struct {
	TargetWord string
	MaxGuesses int
	WordLength int
	Scoring    Scoring
}

// Validate checks the config and returns a copy with the target normalized
// to uppercase and an empty Scoring defaulted to two-pass.
func (c Config) Validate() (Config, error) {
	c.TargetWord = words.Normalize(c.TargetWord)
	if c.Scoring == "" {
		c.Scoring = ScoringTwoPass
	}
	switch {
	case c.MaxGuesses <= 0:
		return c, fmt.Errorf("%w: max guesses must be > 0, got %d", ErrInvalidConfig, c.MaxGuesses)
	case c.WordLength <= 0:
		return c, fmt.Errorf("%w: word length must be > 0, got %d", ErrInvalidConfig, c.WordLength)
	case len(c.TargetWord) != c.WordLength:
		return c, fmt.Errorf("%w: target %q must have %d letters", ErrInvalidConfig, c.TargetWord, c.WordLength)
	case !words.IsUpperAlpha(c.TargetWord):
		return c, fmt.Errorf("%w: target %q must be letters A-Z", ErrInvalidConfig, c.TargetWord)
	case c.Scoring != ScoringTwoPass && c.Scoring != ScoringSimple:
		return c, fmt.Errorf("%w: unknown scoring %q", ErrInvalidConfig, c.Scoring)
	}
	return c, nil
}

// Machine applies transitions for one configuration. It holds no game
// state and is safe for concurrent use.
type Machine struct {
	cfg Config
}

// New validates cfg and constructs a Machine.
func New(cfg Config) (*Machine, error) {
	cfg, err := cfg.Validate()
	if err != nil {
		return nil, err
	}
	return &Machine{cfg: cfg}, nil
}

// Initial returns a fresh game: all rows empty, row 0 active.
func (m *Machine) Initial() State {
	return State{Attempts: make([]Attempt, m.cfg.MaxGuesses)}
}

// InputLetter appends ch to the active row.
// Ignored unless playing, the row has room and ch is exactly one of A-Z.
func (m *Machine) InputLetter(s State, ch string) Outcome {
	if s.Status() != StatusPlaying || len(ch) != 1 || !words.IsUpperAlpha(ch) {
		return Outcome{State: s}
	}
	if len(s.CurrentText()) >= m.cfg.WordLength {
		return Outcome{State: s}
	}
	next := s.clone()
	next.Attempts[next.Row].Text += ch
	return Outcome{State: next}
}

// DeleteLetter removes the last letter of the active row, if any.
func (m *Machine) DeleteLetter(s State) Outcome {
	text := s.CurrentText()
	if s.Status() != StatusPlaying || text == "" {
		return Outcome{State: s}
	}
	next := s.clone()
	next.Attempts[next.Row].Text = text[:len(text)-1]
	return Outcome{State: next}
}

// SubmitGuess locks in the active row.
//
// Rejections (state unchanged):
//   - fewer than WordLength letters → NoticeTooShort.
//   - no letter in common with the target → NoticeNotInWordList.
//
// Otherwise the row is marked submitted; an exact match wins without
// advancing the row pointer, anything else moves to the next row.
func (m *Machine) SubmitGuess(s State) Outcome {
	if s.Status() != StatusPlaying {
		return Outcome{State: s}
	}
	guess := s.CurrentText()
	if len(guess) < m.cfg.WordLength {
		return Outcome{State: s, Notices: []Notice{noticeTooShort}}
	}
	if !words.SharesLetter(guess, m.cfg.TargetWord) {
		return Outcome{State: s, Notices: []Notice{noticeNotInWordList}}
	}

	next := s.clone()
	next.Attempts[next.Row].Submitted = true
	if guess == m.cfg.TargetWord {
		next.Won = true
		return Outcome{State: next, ShowCompletionDialog: true}
	}
	next.Row++
	return Outcome{State: next}
}

// Reset returns the initial state regardless of s.
func (m *Machine) Reset(State) Outcome {
	return Outcome{State: m.Initial()}
}
