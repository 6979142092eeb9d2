// internal/words/words.go
//
// Word helpers for the game engine.
//
// Responsibilities:
//   - Normalize player and config input to uppercase.
//   - Provide the default target word (embedded assets/target.txt).
//   - The submission check: a guess is only rejected as "not in word list"
//     when it shares no letter with the target. There is no dictionary.
//
// Constraints:
//   • Words are ASCII A–Z.
//   • The embedded default is read once (sync.Once).

package words

import (
	"strings"
	"sync"

	"github.com/robalobadob/wordle/apps/go-solo/assets"
)

var (
	initOnce      sync.Once
	defaultTarget string
	initialErr    error
)

// DefaultTarget returns the embedded target word.
func DefaultTarget() (string, error) {
	initOnce.Do(func() {
		w, err := assets.Target()
		if err != nil {
			initialErr = err
			return
		}
		defaultTarget = Normalize(w)
	})
	return defaultTarget, initialErr
}

// Normalize trims whitespace and uppercases w.
func Normalize(w string) string {
	return strings.ToUpper(strings.TrimSpace(w))
}

// IsUpperAlpha reports whether s is non-empty and all uppercase ASCII letters.
func IsUpperAlpha(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

// SharesLetter reports whether any letter of guess occurs in target.
func SharesLetter(guess, target string) bool {
	return strings.ContainsAny(target, guess)
}
