package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solo/internal/game"
)

func newMachine(t *testing.T) *game.Machine {
	t.Helper()
	m, err := game.New(game.Config{TargetWord: "PHONE", MaxGuesses: 6, WordLength: 5})
	require.NoError(t, err)
	return m
}

func TestMemory_SaveGet(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	m := newMachine(t)

	_, err := st.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, st.Save(ctx, "a", m.Initial()))
	got, err := st.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, m.Initial(), got)
}

func TestMemory_Update(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	m := newMachine(t)

	_, err := st.Update(ctx, "missing", func(s game.State) game.State { return s })
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, st.Save(ctx, "a", m.Initial()))
	got, err := st.Update(ctx, "a", func(s game.State) game.State {
		return m.InputLetter(s, "P").State
	})
	require.NoError(t, err)
	assert.Equal(t, "P", got.CurrentText())

	stored, err := st.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, got, stored)
}

func TestMemory_UpdateSerializesEvents(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	m := newMachine(t)
	require.NoError(t, st.Save(ctx, "a", m.Initial()))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = st.Update(ctx, "a", func(s game.State) game.State {
				return m.InputLetter(s, "P").State
			})
		}()
	}
	wg.Wait()

	got, err := st.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "PPPPP", got.CurrentText())
}

func TestMemory_DeleteAndSweep(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryStore().(*memory)
	m := newMachine(t)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	mem.now = func() time.Time { return base }
	require.NoError(t, mem.Save(ctx, "old", m.Initial()))
	mem.now = func() time.Time { return base.Add(time.Hour) }
	require.NoError(t, mem.Save(ctx, "new", m.Initial()))

	assert.Equal(t, 1, mem.Sweep(ctx, base.Add(30*time.Minute)))
	_, err := mem.Get(ctx, "old")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = mem.Get(ctx, "new")
	assert.NoError(t, err)

	require.NoError(t, mem.Delete(ctx, "new"))
	require.NoError(t, mem.Delete(ctx, "new"))
	_, err = mem.Get(ctx, "new")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRunSweeper_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	st := NewMemoryStore()
	require.NoError(t, st.Save(ctx, "a", newMachine(t).Initial()))

	done := make(chan struct{})
	go func() {
		RunSweeper(ctx, st, 0, time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool {
		_, err := st.Get(ctx, "a")
		return err != nil
	}, time.Second, time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}
