// cmd/precompute/main.go
//
// One-time cache bootstrap. Fills the full answers × guesses pattern cross
// product, persists it, then searches for the best opening guess and stores
// it under both strategy names (with no history yet, hard mode imposes no
// constraints, so the openers coincide).
//
// -limit restricts the opener search to a prefix of the allowed list for a
// quick approximate run; 0 searches every valid guess.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-solver/internal/cache"
	"github.com/robalobadob/wordle-solver/internal/solver"
	"github.com/robalobadob/wordle-solver/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	limit := flag.Int("limit", 0, "opener search pool prefix size (0 = all guesses)")
	skipPatterns := flag.Bool("skip-patterns", false, "skip the pattern cross-product precompute")
	flag.Parse()

	lists, err := words.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}
	a, g := lists.Stats()
	log.Info().Int("answers", a).Int("allowed", g).Msg("word lists loaded")

	ctx := context.Background()
	st, err := cache.Open(getEnv("CACHE_DB", "./data/patterns.db"))
	if err != nil {
		log.Fatal().Err(err).Msg("cache store unavailable; precompute has nowhere to persist")
	}
	defer st.Close()

	c := cache.New()
	if n, err := st.Load(ctx, c); err != nil {
		log.Warn().Err(err).Msg("cache load failed, starting empty")
	} else if n > 0 {
		log.Info().Int("patterns", n).Msg("existing pattern cache loaded")
	}

	if !*skipPatterns {
		start := time.Now()
		c.BulkPrecompute(lists.Answers, lists.Allowed)
		log.Info().Int("patterns", c.Len()).Dur("elapsed", time.Since(start)).
			Msg("pattern cross product computed")
		if c.Dirty() {
			if err := st.Save(ctx, c); err != nil {
				log.Warn().Err(err).Msg("pattern cache save failed")
			} else {
				log.Info().Msg("pattern cache saved")
			}
		}
	}

	pool := lists.Allowed
	if *limit > 0 && *limit < len(pool) {
		pool = pool[:*limit]
	}

	sel := solver.NewSelector(c, lists)
	start := time.Now()
	opener, score, err := sel.BestOpener(lists.Answers, pool)
	if err != nil {
		log.Fatal().Err(err).Msg("opener search failed")
	}
	log.Info().Str("opener", opener).Float64("expected_remaining", score).
		Dur("elapsed", time.Since(start)).Msg("best opener found")

	for _, strategy := range []string{solver.StrategyMinimax, solver.StrategyMinimaxHard} {
		if err := st.SaveOpener(ctx, strategy, opener); err != nil {
			log.Fatal().Err(err).Str("strategy", strategy).Msg("failed to save opener")
		}
	}
	log.Info().Msg("openers saved")
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
