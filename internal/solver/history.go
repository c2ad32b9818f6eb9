// internal/solver/history.go
//
// Game history and candidate filtering.
// Responsibilities:
//   - Step/History types: the append-only (guess, pattern) record of one game.
//   - Filter: narrow a candidate set to the words consistent with every
//     recorded step.

package solver

import (
	"github.com/robalobadob/wordle-solver/internal/cache"
	"github.com/robalobadob/wordle-solver/internal/feedback"
)

// Step is one completed round: the guess played and the feedback received.
type Step struct {
	Guess   string
	Pattern feedback.Pattern
}

// History is the ordered record of a single game. Owned by exactly one
// game-in-progress; never shared across concurrent simulations.
type History []Step

// Filter returns the subset of candidates consistent with every step: a
// word w survives iff encoding (step.Guess, w) reproduces step.Pattern for
// all steps. Each step is an independent predicate, so the result does not
// depend on step order, and re-filtering the output is a no-op.
//
// An empty result is not an error here: it signals contradictory feedback
// to the caller, who decides whether that aborts the game.
func Filter(c *cache.Cache, candidates []string, hist History) []string {
	out := candidates
	for _, step := range hist {
		kept := make([]string, 0, len(out))
		for _, w := range out {
			if c.LookupOrCompute(w, step.Guess) == step.Pattern {
				kept = append(kept, w)
			}
		}
		out = kept
	}
	return out
}
