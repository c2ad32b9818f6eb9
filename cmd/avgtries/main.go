// cmd/avgtries/main.go
//
// Batch benchmark: simulates one game per answer-list word and reports the
// average rounds-to-solve (plus best/worst/failure-rate aggregates). The
// average is printed and written to a small text artifact. -hard switches
// to hard-mode selection and a mode-specific default artifact name.
//
// Ctrl-C cancels the whole batch; individual games are bounded and finish
// on their own.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-solver/internal/cache"
	"github.com/robalobadob/wordle-solver/internal/sim"
	"github.com/robalobadob/wordle-solver/internal/solver"
	"github.com/robalobadob/wordle-solver/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	hard := flag.Bool("hard", false, "simulate with hard-mode constraints")
	workers := flag.Int("workers", envInt("SIM_WORKERS", 0), "concurrent simulations (0 = NumCPU)")
	out := flag.String("out", "", "report artifact path (default depends on mode)")
	flag.Parse()

	artifact := *out
	if artifact == "" {
		if *hard {
			artifact = "average_tries_hard_mode.txt"
		} else {
			artifact = "average_tries.txt"
		}
	}

	lists, err := words.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	c := cache.New()
	st, err := cache.Open(getEnv("CACHE_DB", "./data/patterns.db"))
	if err != nil {
		log.Warn().Err(err).Msg("cache store unavailable, running without persistence")
		st = nil
	} else {
		defer st.Close()
		if n, lerr := st.Load(ctx, c); lerr != nil {
			log.Warn().Err(lerr).Msg("cache load failed, starting empty")
		} else {
			log.Info().Int("patterns", n).Msg("pattern cache loaded")
		}
	}

	var openers []solver.OpenerSource
	if st != nil {
		if m, oerr := st.LoadOpeners(ctx); oerr != nil {
			log.Warn().Err(oerr).Msg("opener load failed")
		} else if len(m) > 0 {
			openers = append(openers, solver.MapOpeners(m))
		}
	}

	runner := sim.NewRunner(c, solver.NewSelector(c, lists, openers...), lists)
	runner.Hard = *hard
	runner.Workers = *workers

	start := time.Now()
	res, err := runner.RunBatch(ctx, lists.Answers)
	if err != nil {
		log.Fatal().Err(err).Msg("batch aborted")
	}
	log.Info().Int("games", res.Games).Dur("elapsed", time.Since(start)).Msg("batch finished")

	for _, line := range res.Report() {
		fmt.Println(line)
	}
	mean := fmt.Sprintf("%.4f", res.Mean())
	fmt.Printf("Average number of tries: %s\n", mean)
	if err := os.WriteFile(artifact, []byte(mean+"\n"), 0o644); err != nil {
		log.Warn().Err(err).Str("path", artifact).Msg("failed to write report artifact")
	}

	if st != nil && c.Dirty() {
		if err := st.Save(ctx, c); err != nil {
			log.Warn().Err(err).Msg("cache save failed")
		}
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
