// internal/game/types.go
//
// Core type definitions for the game state machine.
// Defines:
//   - Mark: per-letter result of a submitted attempt.
//   - Attempt / State: one grid row and the aggregate game state.
//   - Status: playing / won / exhausted.
//   - Notice / Outcome: what a transition reports back to the presenter.

package game

// Mark represents the evaluation result for a single letter of an attempt.
// Possible values:
//   - "correct": letter is in the target at this position.
//   - "present": letter is in the target at another position.
//   - "absent":  letter is not in the target.
//   - "":        attempt not submitted yet (no color).
type Mark string

const (
	MarkEmpty   Mark = ""
	MarkCorrect Mark = "correct"
	MarkPresent Mark = "present"
	MarkAbsent  Mark = "absent"
)

// rank orders marks for keyboard hints (best wins).
func (m Mark) rank() int {
	switch m {
	case MarkCorrect:
		return 3
	case MarkPresent:
		return 2
	case MarkAbsent:
		return 1
	}
	return 0
}

// Attempt is one row of the guessing grid.
type Attempt struct {
	Text      string `json:"text"`      // 0..WordLength uppercase letters
	Submitted bool   `json:"submitted"` // locked in
}

// Status is the coarse state of a game.
type Status string

const (
	StatusPlaying   Status = "playing"
	StatusWon       Status = "won"
	StatusExhausted Status = "exhausted"
)

// State is the authoritative game state. Transitions never mutate a State
// in place; they return a new value with its own Attempts slice.
//
// The in-progress text of the active row is Attempts[Row].Text; it is not
// stored anywhere else.
type State struct {
	Attempts []Attempt `json:"attempts"`
	Row      int       `json:"row"` // active row; len(Attempts) once exhausted
	Won      bool      `json:"won"`
}

// Status reports whether the game is playing, won or exhausted.
func (s State) Status() Status {
	switch {
	case s.Won:
		return StatusWon
	case s.Row >= len(s.Attempts):
		return StatusExhausted
	}
	return StatusPlaying
}

// CurrentText returns the text of the active row, or "" when no row is active.
func (s State) CurrentText() string {
	if s.Row < 0 || s.Row >= len(s.Attempts) {
		return ""
	}
	return s.Attempts[s.Row].Text
}

// clone copies the attempts so the receiver stays untouched.
func (s State) clone() State {
	out := s
	out.Attempts = make([]Attempt, len(s.Attempts))
	copy(out.Attempts, s.Attempts)
	return out
}

// NoticeKind identifies a transient, non-blocking notice.
type NoticeKind string

const (
	NoticeTooShort      NoticeKind = "too_short"
	NoticeNotInWordList NoticeKind = "not_in_word_list"
)

// Notice is a rejected submission reported to the player.
type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Message string     `json:"message"`
}

var (
	noticeTooShort      = Notice{Kind: NoticeTooShort, Message: "Not enough letters"}
	noticeNotInWordList = Notice{Kind: NoticeNotInWordList, Message: "Not in word list"}
)

// Outcome is the result of applying one event.
type Outcome struct {
	State                State    `json:"state"`
	Notices              []Notice `json:"notices"`
	ShowCompletionDialog bool     `json:"showCompletionDialog"`
}
