// internal/game/score.go
//
// Display scoring of submitted attempts. Marks are never stored in State;
// they are recomputed from the attempt text on every render.

package game

import "strings"

// Scoring selects how repeated letters are handled.
type Scoring string

const (
	// ScoringTwoPass reserves target letters consumed by exact matches
	// before handing out "present" marks.
	ScoringTwoPass Scoring = "two-pass"

	// ScoringSimple marks a letter present whenever the target contains it
	// anywhere, so a repeated guess letter can be over-counted.
	ScoringSimple Scoring = "simple"
)

// Score returns the per-position marks of a against the target.
// Unsubmitted attempts score MarkEmpty in every position.
func (m *Machine) Score(a Attempt) []Mark {
	res := make([]Mark, m.cfg.WordLength)
	if !a.Submitted {
		return res
	}
	if m.cfg.Scoring == ScoringSimple {
		return scoreSimple(m.cfg.TargetWord, a.Text, res)
	}
	return scoreTwoPass(m.cfg.TargetWord, a.Text, res)
}

// scoreSimple: correct if equal at i, else present if anywhere in target.
func scoreSimple(target, guess string, res []Mark) []Mark {
	for i := range res {
		if i >= len(guess) {
			res[i] = MarkAbsent
			continue
		}
		switch {
		case guess[i] == target[i]:
			res[i] = MarkCorrect
		case strings.IndexByte(target, guess[i]) >= 0:
			res[i] = MarkPresent
		default:
			res[i] = MarkAbsent
		}
	}
	return res
}

// scoreTwoPass implements the standard two-pass algorithm.
//
// Pass 1:
//   - Mark exact matches as correct.
//   - Count the remaining (unmatched) target letters.
//
// Pass 2:
//   - For each unmatched guess letter: present if a count remains for that
//     letter (and decrement it), absent otherwise.
func scoreTwoPass(target, guess string, res []Mark) []Mark {
	var counts [26]int

	for i := range res {
		if i < len(guess) && guess[i] == target[i] {
			res[i] = MarkCorrect
		} else {
			counts[idx(target[i])]++
		}
	}

	for i := range res {
		if res[i] == MarkCorrect {
			continue
		}
		if i >= len(guess) {
			res[i] = MarkAbsent
			continue
		}
		j := idx(guess[i])
		if j >= 0 && j < 26 && counts[j] > 0 {
			res[i] = MarkPresent
			counts[j]--
		} else {
			res[i] = MarkAbsent
		}
	}
	return res
}

// idx maps an uppercase ASCII letter to 0..25.
func idx(b byte) int { return int(b) - 'A' }

