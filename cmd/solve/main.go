// cmd/solve/main.go
//
// Interactive solver CLI.
//
// With no flags it proposes guesses and reads human feedback ('0'/'1'/'2'
// strings) until the puzzle is solved or the user quits; games repeat until
// quit. With -secret it simulates a single game against a known answer.
// -hard enables hard-mode guess selection.
//
// The pattern cache is loaded from CACHE_DB when available and flushed back
// after any game that added entries; cache I/O never aborts a game.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-solver/internal/cache"
	"github.com/robalobadob/wordle-solver/internal/play"
	"github.com/robalobadob/wordle-solver/internal/solver"
	"github.com/robalobadob/wordle-solver/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	hard := flag.Bool("hard", os.Getenv("HARD_MODE") != "", "enforce hard-mode constraints on proposed guesses")
	secret := flag.String("secret", "", "simulate one game against this answer instead of prompting")
	noColor := flag.Bool("no-color", false, "disable colored feedback rendering")
	flag.Parse()

	lists, err := words.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}
	a, g := lists.Stats()
	log.Info().Int("answers", a).Int("allowed", g).Msg("word lists loaded")

	ctx := context.Background()
	c := cache.New()
	st := openStore(ctx, c)
	if st != nil {
		defer st.Close()
	}

	sel := solver.NewSelector(c, lists, loadOpeners(ctx, st)...)

	sess := &play.Session{
		In:       os.Stdin,
		Out:      os.Stdout,
		Cache:    c,
		Selector: sel,
		Lists:    lists,
		Hard:     *hard,
		Secret:   strings.ToLower(strings.TrimSpace(*secret)),
		Colors:   !*noColor,
		Flush: func() {
			flush(ctx, st, c)
		},
	}
	if sess.Secret != "" {
		if !words.IsValidWord(sess.Secret) {
			log.Fatal().Str("secret", sess.Secret).Msg("secret must be exactly 5 letters a-z")
		}
		if !lists.IsAnswer(sess.Secret) {
			log.Warn().Str("secret", sess.Secret).Msg("secret is not in the answer list; the solver may not find it")
		}
	}

	rounds, err := sess.Run()
	switch {
	case errors.Is(err, play.ErrQuit):
		log.Info().Msg("quit requested")
	case errors.Is(err, solver.ErrNoCandidates):
		log.Error().Msg("feedback history became contradictory; check the entered patterns")
		os.Exit(1)
	case err != nil:
		log.Fatal().Err(err).Msg("session failed")
	default:
		log.Info().Int("rounds", rounds).Msg("session finished")
	}
}

// openStore opens the cache database and loads persisted patterns into c.
// Every failure is degraded-mode, not fatal: the cache simply starts empty.
func openStore(ctx context.Context, c *cache.Cache) *cache.Store {
	st, err := cache.Open(getEnv("CACHE_DB", "./data/patterns.db"))
	if err != nil {
		log.Warn().Err(err).Msg("cache store unavailable, running without persistence")
		return nil
	}
	n, err := st.Load(ctx, c)
	if err != nil {
		log.Warn().Err(err).Msg("cache load failed, starting empty")
		return st
	}
	log.Info().Int("patterns", n).Msg("pattern cache loaded")
	return st
}

// loadOpeners returns the persisted opener map as an ordered source list.
func loadOpeners(ctx context.Context, st *cache.Store) []solver.OpenerSource {
	if st == nil {
		return nil
	}
	m, err := st.LoadOpeners(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("opener load failed, first guesses will be computed")
		return nil
	}
	if len(m) == 0 {
		return nil
	}
	return []solver.OpenerSource{solver.MapOpeners(m)}
}

// flush persists the cache opportunistically; failures are logged only.
func flush(ctx context.Context, st *cache.Store, c *cache.Cache) {
	if st == nil {
		return
	}
	if err := st.Save(ctx, c); err != nil {
		log.Warn().Err(err).Msg("cache save failed")
		return
	}
	log.Debug().Int("patterns", c.Len()).Msg("pattern cache saved")
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
