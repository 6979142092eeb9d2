// internal/game/board.go
//
// Render model derived from a State. Presenters (browser, terminal) draw
// from a Board and never look at State directly.

package game

// Cell is one square of the grid.
type Cell struct {
	Letter string `json:"letter"`
	Mark   Mark   `json:"mark"`
}

// Board is a full snapshot for rendering.
type Board struct {
	Rows       [][]Cell        `json:"rows"`
	Row        int             `json:"row"`
	Status     Status          `json:"status"`
	WordLength int             `json:"wordLength"`
	MaxGuesses int             `json:"maxGuesses"`
	Keys       map[string]Mark `json:"keys"`             // best mark seen per letter
	Answer     string          `json:"answer,omitempty"` // only once exhausted
}

// Board derives the render model for s.
func (m *Machine) Board(s State) Board {
	b := Board{
		Rows:       make([][]Cell, len(s.Attempts)),
		Row:        s.Row,
		Status:     s.Status(),
		WordLength: m.cfg.WordLength,
		MaxGuesses: m.cfg.MaxGuesses,
		Keys:       make(map[string]Mark),
	}
	for r, a := range s.Attempts {
		marks := m.Score(a)
		row := make([]Cell, m.cfg.WordLength)
		for i := range row {
			if i < len(a.Text) {
				row[i].Letter = a.Text[i : i+1]
			}
			row[i].Mark = marks[i]
			if l := row[i].Letter; l != "" && marks[i].rank() > b.Keys[l].rank() {
				b.Keys[l] = marks[i]
			}
		}
		b.Rows[r] = row
	}
	if b.Status == StatusExhausted {
		b.Answer = m.cfg.TargetWord
	}
	return b
}
