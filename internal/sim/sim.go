// internal/sim/sim.go
//
// Simulation harness: plays full games with a known secret supplying
// ground-truth feedback.
// Responsibilities:
//   - Simulate one game to completion: select → encode → filter, at most
//     MaxRounds guesses, sentinel FailedRounds when unsolved.
//   - RunBatch: one simulation per secret, fanned out across workers with
//     errgroup; each game owns its candidate set and history, the shared
//     pattern cache serializes itself.
//
// A simulation that hits an internal inconsistency (empty candidate set)
// counts as FailedRounds rather than aborting the batch.

package sim

import (
	"context"
	"runtime"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle-solver/internal/cache"
	"github.com/robalobadob/wordle-solver/internal/solver"
	"github.com/robalobadob/wordle-solver/internal/words"
)

const (
	// MaxRounds is the guess budget of one game.
	MaxRounds = 6
	// FailedRounds is the sentinel recorded for an unsolved game.
	FailedRounds = MaxRounds + 1
	// progressEvery controls batch progress logging.
	progressEvery = 100
)

// Runner drives simulations against fixed vocabularies.
type Runner struct {
	cache    *cache.Cache
	selector *solver.Selector
	lists    *words.Lists

	// Hard enables hard-mode guess selection.
	Hard bool
	// Workers bounds batch concurrency; 0 means runtime.NumCPU().
	Workers int
}

// NewRunner builds a Runner sharing the given cache and selector.
func NewRunner(c *cache.Cache, sel *solver.Selector, l *words.Lists) *Runner {
	return &Runner{cache: c, selector: sel, lists: l}
}

// Simulate plays one full game against secret and returns the number of
// rounds taken, in [1, FailedRounds].
func (r *Runner) Simulate(secret string) int {
	candidates := r.lists.Answers
	var hist solver.History

	for attempt := 1; attempt <= MaxRounds; attempt++ {
		var guess string
		var err error
		if r.Hard {
			guess, err = r.selector.SelectHard(candidates, r.lists.Allowed, hist)
		} else {
			guess, err = r.selector.Select(candidates, r.lists.Allowed)
		}
		if err != nil {
			// Contradictory state mid-game; count the game as failed.
			log.Warn().Err(err).Str("secret", secret).Int("attempt", attempt).
				Msg("simulation aborted")
			return FailedRounds
		}
		if guess == secret {
			return attempt
		}
		p := r.cache.LookupOrCompute(secret, guess)
		hist = append(hist, solver.Step{Guess: guess, Pattern: p})
		candidates = solver.Filter(r.cache, candidates, hist)
	}
	return FailedRounds
}

// RunBatch simulates every secret on independent workers and aggregates
// the round counts. Cancelling ctx stops dispatching further simulations;
// in-flight games are bounded by MaxRounds and finish on their own.
func (r *Runner) RunBatch(ctx context.Context, secrets []string) (Result, error) {
	workers := r.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	rounds := make([]int, len(secrets))
	var done atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	var dispatchErr error
	for i, secret := range secrets {
		i, secret := i, secret
		if dispatchErr = ctx.Err(); dispatchErr != nil {
			break
		}
		g.Go(func() error {
			rounds[i] = r.Simulate(secret)
			if n := done.Add(1); n%progressEvery == 0 {
				log.Info().Int64("games", n).Int("total", len(secrets)).
					Msg("simulated")
			}
			return nil
		})
	}
	// Drain in-flight games before returning, whether or not dispatch was
	// cut short: they write into rounds.
	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	if dispatchErr != nil {
		return Result{}, dispatchErr
	}

	var res Result
	for _, n := range rounds {
		res.Rounds[n]++
		res.Games++
	}
	return res, nil
}
