// internal/solver/select.go
//
// Minimax-entropy guess selection.
// Responsibilities:
//   - Score every pool word by the expected size of the candidate set after
//     playing it, and pick the minimum.
//   - Degenerate cases: empty candidates is an error, a singleton is
//     returned without scoring.
//   - Tie-break: the pool is scored in lexicographic order; among
//     equal-score guesses a word that is itself still a candidate wins,
//     otherwise the lexicographically smallest.
//   - Opener fast path: when the candidate set is the full, untouched
//     answer set, an ordered list of opener sources is consulted before
//     scoring. The exhaustive search always remains the final fallback.
//   - Hard mode: restrict the pool to legal guesses first, falling back to
//     the unrestricted pool if nothing legal remains.

package solver

import (
	"errors"
	"sort"

	"github.com/robalobadob/wordle-solver/internal/cache"
	"github.com/robalobadob/wordle-solver/internal/feedback"
	"github.com/robalobadob/wordle-solver/internal/words"
)

// Strategy names used to key persisted openers.
const (
	StrategyMinimax     = "minimax_entropy"
	StrategyMinimaxHard = "minimax_entropy_hard"
)

// ErrNoCandidates signals that a guess was requested with an empty
// candidate set: the feedback history is contradictory, or the oracle lied.
var ErrNoCandidates = errors.New("solver: no candidates remain")

// OpenerSource supplies a precomputed opening word for a strategy.
// Sources are consulted in registration order; the first hit whose word is
// a legal guess short-circuits the opening-round search.
type OpenerSource interface {
	Opener(strategy string) (string, bool)
}

// MapOpeners adapts a plain strategy → word map (as loaded from the cache
// store) into an OpenerSource.
type MapOpeners map[string]string

func (m MapOpeners) Opener(strategy string) (string, bool) {
	w, ok := m[strategy]
	return w, ok
}

// Selector picks guesses for one or more games. Safe for concurrent use:
// all fields are read-only after construction except the cache, which
// serializes its own writes.
type Selector struct {
	cache   *cache.Cache
	lists   *words.Lists
	openers []OpenerSource
}

// NewSelector builds a Selector over the given cache and vocabularies.
// Opener sources are optional and tried in the order given.
func NewSelector(c *cache.Cache, l *words.Lists, openers ...OpenerSource) *Selector {
	return &Selector{cache: c, lists: l, openers: openers}
}

// Select returns the pool word minimizing the expected remaining candidate
// count, for standard-mode play.
func (s *Selector) Select(candidates, pool []string) (string, error) {
	return s.pick(candidates, pool, StrategyMinimax, nil)
}

// SelectHard is Select under hard-mode rules: the scoring pool is first
// restricted to guesses legal under hist. If no pool word is legal the
// unrestricted pool is used instead, so a guess is always available.
func (s *Selector) SelectHard(candidates, pool []string, hist History) (string, error) {
	legal := make([]string, 0, len(pool))
	for _, g := range pool {
		if IsLegalHardMode(hist, g) {
			legal = append(legal, g)
		}
	}
	if len(legal) == 0 {
		legal = pool
	}
	return s.pick(candidates, legal, StrategyMinimaxHard, hist)
}

func (s *Selector) pick(candidates, pool []string, strategy string, hist History) (string, error) {
	switch len(candidates) {
	case 0:
		return "", ErrNoCandidates
	case 1:
		// Provably optimal, skip scoring.
		return candidates[0], nil
	}

	// The candidate set can survive a round intact when every candidate
	// yields the same pattern for a guess, so a non-empty history is
	// possible here; the opener must still honor its constraints.
	if s.untouchedAnswerSet(candidates) {
		for _, src := range s.openers {
			if w, ok := src.Opener(strategy); ok && s.lists.IsAllowed(w) && IsLegalHardMode(hist, w) {
				return w, nil
			}
		}
	}

	best, _ := s.scan(candidates, scoringPool(candidates, pool))
	return best, nil
}

// BestOpener runs the full scored search of pool against candidates and
// returns the winning word with its expected-remaining score. Used offline
// to generate the precomputed opener artifacts.
func (s *Selector) BestOpener(candidates, pool []string) (string, float64, error) {
	if len(candidates) == 0 {
		return "", 0, ErrNoCandidates
	}
	best, score := s.scan(candidates, scoringPool(candidates, pool))
	return best, score, nil
}

// scan scores every pool word and returns the best one with its score.
// pool is sorted and non-empty.
func (s *Selector) scan(candidates, pool []string) (string, float64) {
	inCandidates := make(map[string]struct{}, len(candidates))
	for _, w := range candidates {
		inCandidates[w] = struct{}{}
	}

	best := ""
	bestScore := 0.0
	bestIsCandidate := false
	total := float64(len(candidates))

	var buckets map[feedback.Pattern]int
	for _, g := range pool {
		buckets = make(map[feedback.Pattern]int, len(buckets))
		for _, answer := range candidates {
			buckets[s.cache.LookupOrCompute(answer, g)]++
		}
		// Expected candidate-set size after playing g: each bucket is hit
		// with probability size/total and leaves size candidates.
		score := 0.0
		for _, n := range buckets {
			score += float64(n) / total * float64(n)
		}

		_, isCand := inCandidates[g]
		switch {
		case best == "" || score < bestScore:
			best, bestScore, bestIsCandidate = g, score, isCand
		case score == bestScore && isCand && !bestIsCandidate:
			// Equal information; a guess that can win outright is better
			// than a pure probe.
			best, bestIsCandidate = g, true
		}
	}
	return best, bestScore
}

// scoringPool decides which words are worth scoring. With two or fewer
// candidates left, guessing outside them cannot help; otherwise score the
// deduplicated union of the pool and the candidates, sorted so that the
// tie-break order is stable across runs.
func scoringPool(candidates, pool []string) []string {
	if len(candidates) <= 2 {
		out := append([]string(nil), candidates...)
		sort.Strings(out)
		return out
	}
	seen := make(map[string]struct{}, len(pool)+len(candidates))
	out := make([]string, 0, len(pool)+len(candidates))
	for _, list := range [2][]string{pool, candidates} {
		for _, w := range list {
			if _, ok := seen[w]; !ok {
				seen[w] = struct{}{}
				out = append(out, w)
			}
		}
	}
	sort.Strings(out)
	return out
}

// untouchedAnswerSet reports whether candidates is exactly the full answer
// set, i.e. no feedback has been applied yet.
func (s *Selector) untouchedAnswerSet(candidates []string) bool {
	if len(candidates) != len(s.lists.Answers) {
		return false
	}
	for _, w := range candidates {
		if !s.lists.IsAnswer(w) {
			return false
		}
	}
	return true
}
