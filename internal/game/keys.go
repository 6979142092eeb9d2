package game

// EventKind is the kind of input event forwarded by a presenter.
type EventKind int

const (
	EventInput EventKind = iota + 1
	EventDelete
	EventSubmit
	EventReset
)

// Event is one discrete input. Letter is only meaningful for EventInput.
type Event struct {
	Kind   EventKind
	Letter string
}

// ParseKey maps a key name to an Event.
//
//	"Enter"              → submit
//	"Delete"/"Backspace" → delete
//	"Reset"              → reset ("Play Again")
//	anything else        → input of that key
//
// Only an empty key is rejected here; InputLetter does the A-Z check.
func ParseKey(key string) (Event, bool) {
	switch key {
	case "":
		return Event{}, false
	case "Enter":
		return Event{Kind: EventSubmit}, true
	case "Delete", "Backspace":
		return Event{Kind: EventDelete}, true
	case "Reset":
		return Event{Kind: EventReset}, true
	}
	return Event{Kind: EventInput, Letter: key}, true
}

// Apply dispatches ev to the matching transition. Unknown kinds leave s
// unchanged.
func (m *Machine) Apply(s State, ev Event) Outcome {
	switch ev.Kind {
	case EventInput:
		return m.InputLetter(s, ev.Letter)
	case EventDelete:
		return m.DeleteLetter(s)
	case EventSubmit:
		return m.SubmitGuess(s)
	case EventReset:
		return m.Reset(s)
	}
	return Outcome{State: s}
}
