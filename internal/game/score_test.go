package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore_Unsubmitted(t *testing.T) {
	t.Parallel()
	m := newPhoneMachine(t)

	marks := m.Score(Attempt{Text: "PHONE"})
	assert.Equal(t, []Mark{MarkEmpty, MarkEmpty, MarkEmpty, MarkEmpty, MarkEmpty}, marks)
}

func TestScore_DuplicateLetters(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		target  string
		guess   string
		scoring Scoring
		want    []Mark
	}{
		{
			// one E in the target, already consumed by the exact match
			name: "two-pass does not over-count", target: "PHONE", guess: "EERIE", scoring: ScoringTwoPass,
			want: []Mark{MarkAbsent, MarkAbsent, MarkAbsent, MarkAbsent, MarkCorrect},
		},
		{
			name: "simple over-counts", target: "PHONE", guess: "EERIE", scoring: ScoringSimple,
			want: []Mark{MarkPresent, MarkPresent, MarkAbsent, MarkAbsent, MarkCorrect},
		},
		{
			name: "two-pass hands out presents left to right", target: "ABBEY", guess: "BBBBB", scoring: ScoringTwoPass,
			want: []Mark{MarkAbsent, MarkCorrect, MarkCorrect, MarkAbsent, MarkAbsent},
		},
		{
			name: "two-pass one spare letter", target: "LEVEL", guess: "EELLS", scoring: ScoringTwoPass,
			want: []Mark{MarkPresent, MarkCorrect, MarkPresent, MarkPresent, MarkAbsent},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := New(Config{TargetWord: tc.target, MaxGuesses: 6, WordLength: 5, Scoring: tc.scoring})
			require.NoError(t, err)
			assert.Equal(t, tc.want, m.Score(Attempt{Text: tc.guess, Submitted: true}))
		})
	}
}

func TestScore_ScenariosAgreeAcrossModes(t *testing.T) {
	t.Parallel()

	for _, sc := range []Scoring{ScoringTwoPass, ScoringSimple} {
		m, err := New(Config{TargetWord: "PHONE", MaxGuesses: 6, WordLength: 5, Scoring: sc})
		require.NoError(t, err)
		assert.Equal(t,
			[]Mark{MarkCorrect, MarkCorrect, MarkCorrect, MarkCorrect, MarkAbsent},
			m.Score(Attempt{Text: "PHONY", Submitted: true}), sc)
		assert.Equal(t,
			[]Mark{MarkPresent, MarkPresent, MarkAbsent, MarkAbsent, MarkCorrect},
			m.Score(Attempt{Text: "HOUSE", Submitted: true}), sc)
	}
}
