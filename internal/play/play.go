// internal/play/play.go
//
// Interactive and single-secret game loop.
// Responsibilities:
//   - Drive select → feedback → filter for one game at a time.
//   - Feedback comes from the deterministic encoder when a secret is known,
//     otherwise from the human oracle on stdin ('0'/'1'/'2' strings).
//   - Re-prompt indefinitely on malformed input; "quit"/"exit" leaves the loop.
//   - Show the remaining candidates each round (all when ≤10, else the
//     first 5) and render feedback with colored letters.
//   - Flush the dirty pattern cache between games via the owner's callback.

package play

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/TwiN/go-color"

	"github.com/robalobadob/wordle-solver/internal/cache"
	"github.com/robalobadob/wordle-solver/internal/feedback"
	"github.com/robalobadob/wordle-solver/internal/sim"
	"github.com/robalobadob/wordle-solver/internal/solver"
	"github.com/robalobadob/wordle-solver/internal/words"
)

// ErrQuit reports that the user ended the session with the quit sentinel.
var ErrQuit = errors.New("play: quit requested")

// Session drives one or more games over an input/output pair.
type Session struct {
	In  io.Reader
	Out io.Writer

	Cache    *cache.Cache
	Selector *solver.Selector
	Lists    *words.Lists

	// Hard enables hard-mode guess selection.
	Hard bool
	// Secret, when set, makes feedback deterministic (simulated game).
	Secret string
	// Colors enables ANSI-colored feedback rendering.
	Colors bool
	// Flush, if set, is called after each game while the cache is dirty.
	Flush func()

	r *bufio.Reader
}

// Run plays games until the user quits or input ends. With Secret set it
// plays exactly one game and returns its round count.
func (s *Session) Run() (int, error) {
	if s.Secret != "" && !words.IsValidWord(s.Secret) {
		return 0, fmt.Errorf("play: invalid secret %q: want 5 letters a-z", s.Secret)
	}
	s.r = bufio.NewReader(s.In)
	for {
		rounds, err := s.playOne()
		if s.Flush != nil && s.Cache.Dirty() {
			s.Flush()
		}
		if err != nil || s.Secret != "" {
			return rounds, err
		}
		fmt.Fprintf(s.Out, "\nStarting next game...\n\n")
	}
}

// playOne runs a single game and returns the rounds taken
// (sim.FailedRounds when unsolved).
func (s *Session) playOne() (int, error) {
	candidates := s.Lists.Answers
	var hist solver.History

	for attempt := 1; attempt <= sim.MaxRounds; attempt++ {
		var guess string
		var err error
		if s.Hard {
			guess, err = s.Selector.SelectHard(candidates, s.Lists.Allowed, hist)
		} else {
			guess, err = s.Selector.Select(candidates, s.Lists.Allowed)
		}
		if err != nil {
			return sim.FailedRounds, err
		}
		fmt.Fprintf(s.Out, "Attempt %d: %s\n", attempt, guess)

		var fb feedback.Pattern
		switch {
		case len(candidates) == 1:
			// The guess is the last candidate; no oracle needed.
			fb = feedback.Solved
		case s.Secret != "":
			fb = s.Cache.LookupOrCompute(s.Secret, guess)
		default:
			fb, err = s.promptFeedback()
			if err != nil {
				return sim.FailedRounds, err
			}
		}
		fmt.Fprintf(s.Out, "Feedback: %s\n", s.render(guess, fb))

		hist = append(hist, solver.Step{Guess: guess, Pattern: fb})
		candidates = solver.Filter(s.Cache, candidates, hist)
		s.showCandidates(candidates)

		if fb.IsSolved() {
			fmt.Fprintf(s.Out, "Solved in %d guesses! The answer was %s.\n", attempt, guess)
			return attempt, nil
		}
		if len(candidates) == 0 {
			fmt.Fprintln(s.Out, "No candidates remain; the feedback so far is contradictory.")
			return sim.FailedRounds, solver.ErrNoCandidates
		}
	}
	fmt.Fprintln(s.Out, "Failed to solve the puzzle.")
	return sim.FailedRounds, nil
}

// promptFeedback reads one pattern from the oracle, re-prompting until the
// input parses or the quit sentinel / EOF arrives.
func (s *Session) promptFeedback() (feedback.Pattern, error) {
	for {
		fmt.Fprintf(s.Out, "Enter feedback (e.g. 20100, or 'quit'): ")
		line, err := s.r.ReadString('\n')
		if err != nil && line == "" {
			return "", fmt.Errorf("read feedback: %w", err)
		}
		line = strings.TrimSpace(strings.ToLower(line))
		if line == "quit" || line == "exit" {
			return "", ErrQuit
		}
		fb, perr := feedback.Parse(line)
		if perr != nil {
			fmt.Fprintf(s.Out, "Invalid feedback: %v\n", perr)
			continue
		}
		return fb, nil
	}
}

// showCandidates prints the remaining candidate count, listing the words
// themselves when few remain.
func (s *Session) showCandidates(candidates []string) {
	fmt.Fprintf(s.Out, "%d possible answers remain.\n", len(candidates))
	switch {
	case len(candidates) == 0:
	case len(candidates) <= 10:
		fmt.Fprintf(s.Out, "Possible answers: %s\n", strings.Join(candidates, " "))
	default:
		fmt.Fprintf(s.Out, "First 5 possible answers: %s...\n", strings.Join(candidates[:5], " "))
	}
}

// render colors each guess letter by its feedback symbol.
func (s *Session) render(guess string, fb feedback.Pattern) string {
	if !s.Colors {
		return string(fb)
	}
	var b strings.Builder
	for i := 0; i < feedback.WordLen; i++ {
		switch fb[i] {
		case feedback.Exact:
			b.WriteString(color.Green)
		case feedback.Misplaced:
			b.WriteString(color.Yellow)
		default:
			b.WriteString(color.Gray)
		}
		b.WriteByte(guess[i] - 'a' + 'A')
		b.WriteString(color.Reset)
	}
	return b.String()
}
