// internal/solver/hardmode.go
//
// Hard-mode legality checking.
// Responsibilities:
//   - Fold a game history into positional/letter constraints:
//       EXACT at position i      → position i is pinned to that letter.
//       MISPLACED at position i  → the letter must appear somewhere in every
//                                  later guess, but never again at position i.
//   - Test a candidate guess against the folded constraints.
//
// Derived on every call, no state kept between calls. ABSENT feedback adds
// no hard-mode constraint (matching the official game's hard mode).

package solver

import (
	"strings"

	"github.com/robalobadob/wordle-solver/internal/feedback"
)

type constraintSet struct {
	pinned   [feedback.WordLen]byte   // required letter per position, 0 = free
	bannedAt [feedback.WordLen]uint32 // bitmask of letters banned per position
	required uint32                   // bitmask of letters that must appear
}

func letterBit(b byte) uint32 { return 1 << (b - 'a') }

// deriveConstraints folds hist into a constraintSet.
func deriveConstraints(hist History) constraintSet {
	var cs constraintSet
	for _, step := range hist {
		for i := 0; i < feedback.WordLen; i++ {
			switch step.Pattern[i] {
			case feedback.Exact:
				cs.pinned[i] = step.Guess[i]
			case feedback.Misplaced:
				cs.required |= letterBit(step.Guess[i])
				cs.bannedAt[i] |= letterBit(step.Guess[i])
			}
		}
	}
	return cs
}

// IsLegalHardMode reports whether guess may be played under hard-mode rules
// given the history so far. Legal iff every pinned position holds its
// letter, every required letter appears somewhere, and no letter sits at a
// position where it was previously flagged misplaced.
func IsLegalHardMode(hist History, guess string) bool {
	cs := deriveConstraints(hist)

	for i := 0; i < feedback.WordLen; i++ {
		if cs.pinned[i] != 0 && guess[i] != cs.pinned[i] {
			return false
		}
		if cs.bannedAt[i]&letterBit(guess[i]) != 0 {
			return false
		}
	}
	for l := byte('a'); l <= 'z'; l++ {
		if cs.required&letterBit(l) != 0 && strings.IndexByte(guess, l) < 0 {
			return false
		}
	}
	return true
}
