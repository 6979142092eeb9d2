// Package tui is a terminal front-end for the game state machine.
//
// It owns one game.State, forwards key presses as game events and redraws
// the whole screen from a game.Board after every event.
package tui

import (
	"context"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solo/internal/game"
)

var keyboardRows = []string{"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"}

var (
	styleDefault = tcell.StyleDefault
	styleCorrect = tcell.StyleDefault.Background(tcell.ColorGreen).Foreground(tcell.ColorWhite).Bold(true)
	stylePresent = tcell.StyleDefault.Background(tcell.ColorOlive).Foreground(tcell.ColorWhite).Bold(true)
	styleAbsent  = tcell.StyleDefault.Background(tcell.ColorGray).Foreground(tcell.ColorWhite).Bold(true)
	styleNotice  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleBanner  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
)

func markStyle(m game.Mark) tcell.Style {
	switch m {
	case game.MarkCorrect:
		return styleCorrect
	case game.MarkPresent:
		return stylePresent
	case game.MarkAbsent:
		return styleAbsent
	}
	return styleDefault
}

// App runs the game on a tcell screen.
type App struct {
	screen  tcell.Screen
	machine *game.Machine
	state   game.State
	notice  string
	banner  string
}

// New wraps an initialized screen.
func New(screen tcell.Screen, m *game.Machine) *App {
	return &App{screen: screen, machine: m, state: m.Initial()}
}

// State returns the current game state.
func (a *App) State() game.State { return a.state }

// Run processes events until the player quits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = a.screen.PostEvent(tcell.NewEventInterrupt(nil))
		case <-done:
		}
	}()

	a.draw()
	for {
		switch ev := a.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				return ctx.Err()
			}
		case *tcell.EventResize:
			a.screen.Sync()
			a.draw()
		case *tcell.EventKey:
			if quitKey(ev) {
				return nil
			}
			if gev, ok := a.eventFor(ev); ok {
				a.handle(gev)
			}
			a.draw()
		}
	}
}

func quitKey(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC
}

// eventFor maps a key press to a game event. Letters are upper-cased here;
// the state machine itself only accepts A-Z. On a finished game Enter
// means "Play Again".
func (a *App) eventFor(ev *tcell.EventKey) (game.Event, bool) {
	switch ev.Key() {
	case tcell.KeyEnter:
		if a.state.Status() != game.StatusPlaying {
			return game.Event{Kind: game.EventReset}, true
		}
		return game.Event{Kind: game.EventSubmit}, true
	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDelete:
		return game.Event{Kind: game.EventDelete}, true
	case tcell.KeyCtrlR:
		return game.Event{Kind: game.EventReset}, true
	case tcell.KeyRune:
		r := unicode.ToUpper(ev.Rune())
		if r > unicode.MaxASCII {
			return game.Event{}, false
		}
		return game.Event{Kind: game.EventInput, Letter: string(r)}, true
	}
	return game.Event{}, false
}

func (a *App) handle(ev game.Event) {
	out := a.machine.Apply(a.state, ev)
	a.state = out.State
	a.notice = ""
	for _, n := range out.Notices {
		a.notice = n.Message
	}
	if ev.Kind == game.EventReset {
		a.banner = ""
	}
	if out.ShowCompletionDialog {
		a.banner = "Congratulations! You guessed the word correctly! Enter: play again"
		log.Debug().Int("row", out.State.Row).Msg("game won")
	}
}

func (a *App) draw() {
	a.screen.Clear()
	b := a.machine.Board(a.state)

	y := 1
	for _, row := range b.Rows {
		for i, c := range row {
			letter := ' '
			if c.Letter != "" {
				letter = rune(c.Letter[0])
			}
			x := 2 + i*4
			st := markStyle(c.Mark)
			a.screen.SetContent(x, y, ' ', nil, st)
			a.screen.SetContent(x+1, y, letter, nil, st)
			a.screen.SetContent(x+2, y, ' ', nil, st)
		}
		y += 2
	}

	y++
	for i, keys := range keyboardRows {
		x := 2 + i
		for _, k := range keys {
			a.screen.SetContent(x, y, k, nil, markStyle(b.Keys[string(k)]))
			x += 2
		}
		y++
	}

	y++
	switch {
	case a.notice != "":
		a.drawText(2, y, a.notice, styleNotice)
	case b.Status == game.StatusWon:
		a.drawText(2, y, a.banner, styleBanner)
	case b.Status == game.StatusExhausted:
		a.drawText(2, y, "Out of guesses. The word was "+b.Answer+". Enter: play again", styleNotice)
	}
	a.drawText(2, y+1, "Enter: submit  Backspace: delete  Ctrl+R: new game  Esc: quit", styleDefault)
	a.screen.Show()
}

func (a *App) drawText(x, y int, s string, st tcell.Style) {
	for i, r := range s {
		a.screen.SetContent(x+i, y, r, nil, st)
	}
}
