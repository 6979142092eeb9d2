package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_AfterSubmissions(t *testing.T) {
	t.Parallel()
	m := newPhoneMachine(t)

	s := submitWord(m, m.Initial(), "HOUSE").State
	s = typeWord(m, s, "PH")
	b := m.Board(s)

	require.Len(t, b.Rows, 6)
	assert.Equal(t, 1, b.Row)
	assert.Equal(t, StatusPlaying, b.Status)
	assert.Equal(t, 5, b.WordLength)
	assert.Equal(t, 6, b.MaxGuesses)
	assert.Empty(t, b.Answer)

	assert.Equal(t, []Cell{
		{Letter: "H", Mark: MarkPresent},
		{Letter: "O", Mark: MarkPresent},
		{Letter: "U", Mark: MarkAbsent},
		{Letter: "S", Mark: MarkAbsent},
		{Letter: "E", Mark: MarkCorrect},
	}, b.Rows[0])
	assert.Equal(t, []Cell{{Letter: "P"}, {Letter: "H"}, {}, {}, {}}, b.Rows[1])

	assert.Equal(t, map[string]Mark{
		"H": MarkPresent, "O": MarkPresent, "U": MarkAbsent, "S": MarkAbsent, "E": MarkCorrect,
	}, b.Keys)
}

func TestBoard_KeysKeepBestMark(t *testing.T) {
	t.Parallel()
	m := newPhoneMachine(t)

	s := submitWord(m, m.Initial(), "HOUSE").State // H present
	s = submitWord(m, s, "CHART").State            // H correct
	b := m.Board(s)
	assert.Equal(t, MarkCorrect, b.Keys["H"])
}

func TestBoard_AnswerOnlyWhenExhausted(t *testing.T) {
	t.Parallel()
	m := newPhoneMachine(t)

	won := submitWord(m, m.Initial(), "PHONE").State
	assert.Equal(t, StatusWon, m.Board(won).Status)
	assert.Empty(t, m.Board(won).Answer)

	s := m.Initial()
	for i := 0; i < DefaultMaxGuesses; i++ {
		s = submitWord(m, s, "HOUSE").State
	}
	b := m.Board(s)
	assert.Equal(t, StatusExhausted, b.Status)
	assert.Equal(t, "PHONE", b.Answer)
}
