// internal/feedback/feedback.go
//
// Feedback pattern computation for the solver core.
// Responsibilities:
//   - Encode a (guess, secret) pair into a five-symbol feedback pattern
//     using the classic two-pass Wordle algorithm.
//   - Parse and validate externally supplied pattern strings ('0'/'1'/'2').
//
// Pattern notation (shared with the original oracle protocol):
//   '0' = absent, '1' = misplaced, '2' = exact. "22222" means solved.
//
// Notes:
//   - Encode is the hot function of the whole system: it runs
//     O(|pool| × |candidates|) times per scoring round, so it works on
//     byte arrays and performs a single allocation for the result.
//   - Duplicate letters follow the consume-on-first-match rule: a secret
//     letter credited as exact or misplaced is never credited again, and
//     misplaced credits consume the leftmost unconsumed occurrence.

package feedback

import (
	"errors"
	"fmt"
)

// WordLen is the fixed word length of the game.
const WordLen = 5

// Symbols of a feedback pattern, one per guess position.
const (
	Absent    byte = '0'
	Misplaced byte = '1'
	Exact     byte = '2'
)

// Pattern is a WordLen-character string over {'0','1','2'}.
type Pattern string

// Solved is the all-exact pattern signalling a correct guess.
const Solved Pattern = "22222"

// ErrInvalidPattern reports a malformed externally supplied pattern string.
var ErrInvalidPattern = errors.New("feedback: invalid pattern")

// Encode scores guess against secret with the standard two-pass algorithm.
//
// Pass 1 marks exact positional matches and counts the remaining secret
// letters. Pass 2 resolves misplaced/absent for the non-exact positions,
// decrementing a letter's remaining count on each misplaced credit. The
// count decrement is equivalent to consuming the leftmost unconsumed
// occurrence of the letter in the secret.
//
// Both words must be WordLen lowercase ASCII letters; callers validate.
func Encode(guess, secret string) Pattern {
	var out [WordLen]byte
	var counts [26]int

	for i := 0; i < WordLen; i++ {
		if guess[i] == secret[i] {
			out[i] = Exact
		} else {
			counts[secret[i]-'a']++
		}
	}
	for i := 0; i < WordLen; i++ {
		if out[i] == Exact {
			continue
		}
		j := guess[i] - 'a'
		if counts[j] > 0 {
			out[i] = Misplaced
			counts[j]--
		} else {
			out[i] = Absent
		}
	}
	return Pattern(out[:])
}

// Parse validates an externally supplied pattern string.
// Returns ErrInvalidPattern (wrapped with the offending input) unless s is
// exactly WordLen characters drawn from {'0','1','2'}.
func Parse(s string) (Pattern, error) {
	if len(s) != WordLen {
		return "", fmt.Errorf("%w: %q is not %d characters", ErrInvalidPattern, s, WordLen)
	}
	for i := 0; i < len(s); i++ {
		if s[i] != Absent && s[i] != Misplaced && s[i] != Exact {
			return "", fmt.Errorf("%w: %q contains %q", ErrInvalidPattern, s, s[i])
		}
	}
	return Pattern(s), nil
}

// IsSolved reports whether p is the all-exact pattern.
func (p Pattern) IsSolved() bool { return p == Solved }
