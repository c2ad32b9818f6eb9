// internal/sim/report.go
//
// Aggregate statistics for a simulation batch.

package sim

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Result is the histogram of rounds-to-solve over one batch.
// Index k holds the number of games solved in k rounds; index FailedRounds
// holds the unsolved games.
type Result struct {
	Rounds [FailedRounds + 1]int
	Games  int
}

// Mean returns the arithmetic mean rounds-to-solve, failures counted as
// FailedRounds. Zero games yields 0.
func (r Result) Mean() float64 {
	if r.Games == 0 {
		return 0
	}
	sum := 0
	for k, n := range r.Rounds {
		sum += k * n
	}
	return float64(sum) / float64(r.Games)
}

// Failed returns the number of unsolved games.
func (r Result) Failed() int { return r.Rounds[FailedRounds] }

// stat is one reportable aggregate over a Result.
type stat[T constraints.Ordered] struct {
	name string
	eval func(Result) T
}

func (s *stat[T]) line(r Result) string {
	return fmt.Sprintf("%s: %v", s.name, s.eval(r))
}

type statLine interface {
	line(Result) string
}

var stats = []statLine{
	&stat[float64]{"average", Result.Mean},
	&stat[int]{"best", func(r Result) int {
		for k := 1; k <= FailedRounds; k++ {
			if r.Rounds[k] > 0 {
				return k
			}
		}
		return 0
	}},
	&stat[int]{"worst", func(r Result) int {
		for k := FailedRounds; k >= 1; k-- {
			if r.Rounds[k] > 0 {
				return k
			}
		}
		return 0
	}},
	&stat[float64]{"failed %", func(r Result) float64 {
		if r.Games == 0 {
			return 0
		}
		return 100 * float64(r.Failed()) / float64(r.Games)
	}},
}

// Report renders one line per aggregate statistic.
func (r Result) Report() []string {
	out := make([]string, 0, len(stats))
	for _, s := range stats {
		out = append(out, s.line(r))
	}
	return out
}
