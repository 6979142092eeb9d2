// internal/store/memory.go
//
// In-memory session store for game states.
// Each browser session owns one game.State keyed by session ID.
//
// Characteristics:
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Update runs read-modify-write under the write lock, so events for one
//     session are applied one at a time.
//   - State is lost when the process restarts.
//   - Idle sessions are dropped by Sweep.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/wordle/apps/go-solo/internal/game"
)

// ErrNotFound is returned for unknown session IDs.
var ErrNotFound = errors.New("session not found")

// Store defines the session interface used by the HTTP transport.
type Store interface {
	// Save creates or replaces the state of a session.
	Save(ctx context.Context, id string, st game.State) error

	// Get retrieves the state of a session.
	// Returns ErrNotFound if the session does not exist.
	Get(ctx context.Context, id string) (game.State, error)

	// Update applies fn to the current state and stores the result.
	// Returns ErrNotFound if the session does not exist.
	Update(ctx context.Context, id string, fn func(game.State) game.State) (game.State, error)

	// Delete removes a session; unknown IDs are ignored.
	Delete(ctx context.Context, id string) error

	// Sweep removes sessions not touched since before and reports how many.
	Sweep(ctx context.Context, before time.Time) int
}

type entry struct {
	state   game.State
	touched time.Time
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex      // guards sessions
	sessions map[string]*entry // keyed by session ID
	now      func() time.Time
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*entry), now: time.Now}
}

func (m *memory) Save(ctx context.Context, id string, st game.State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[id] = &entry{state: st, touched: m.now()}
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (game.State, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.sessions[id]; ok {
		return e.state, nil
	}
	return game.State{}, ErrNotFound
}

func (m *memory) Update(ctx context.Context, id string, fn func(game.State) game.State) (game.State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.sessions[id]
	if !ok {
		return game.State{}, ErrNotFound
	}
	e.state = fn(e.state)
	e.touched = m.now()
	return e.state, nil
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *memory) Sweep(ctx context.Context, before time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, e := range m.sessions {
		if e.touched.Before(before) {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}
