package sim

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/robalobadob/wordle-solver/internal/cache"
	"github.com/robalobadob/wordle-solver/internal/solver"
	"github.com/robalobadob/wordle-solver/internal/words"
)

var testAnswers = []string{
	"crane", "slate", "abide", "erase", "speed", "brief", "grasp", "pivot",
	"logic", "medal", "frost", "quiet", "candy", "wharf", "gloom", "spike",
}

func newTestRunner(t *testing.T, hard bool) *Runner {
	t.Helper()
	l, err := words.New(testAnswers, append([]string{"soare", "roate", "raise"}, testAnswers...))
	if err != nil {
		t.Fatal(err)
	}
	c := cache.New()
	r := NewRunner(c, solver.NewSelector(c, l), l)
	r.Hard = hard
	r.Workers = 4
	return r
}

func TestSimulateSolvesCrane(t *testing.T) {
	r := newTestRunner(t, false)
	rounds := r.Simulate("crane")
	if rounds < 1 || rounds > MaxRounds {
		t.Fatalf("Simulate(crane) = %d, want 1..%d", rounds, MaxRounds)
	}
}

func TestSimulateEverySecretTerminates(t *testing.T) {
	for _, hard := range []bool{false, true} {
		r := newTestRunner(t, hard)
		for _, secret := range testAnswers {
			rounds := r.Simulate(secret)
			if rounds < 1 || rounds > FailedRounds {
				t.Errorf("hard=%v Simulate(%q) = %d, out of range", hard, secret, rounds)
			}
		}
	}
}

func TestSimulateDeterministic(t *testing.T) {
	r := newTestRunner(t, false)
	first := r.Simulate("gloom")
	for i := 0; i < 3; i++ {
		if got := r.Simulate("gloom"); got != first {
			t.Fatalf("Simulate not deterministic: %d then %d", first, got)
		}
	}
}

func TestRunBatch(t *testing.T) {
	r := newTestRunner(t, false)
	res, err := r.RunBatch(context.Background(), testAnswers)
	if err != nil {
		t.Fatal(err)
	}
	if res.Games != len(testAnswers) {
		t.Fatalf("Games = %d, want %d", res.Games, len(testAnswers))
	}
	mean := res.Mean()
	if mean <= 1 || mean >= float64(FailedRounds) {
		t.Errorf("Mean = %v, want strictly between 1 and %d", mean, FailedRounds)
	}
}

func TestRunBatchCancelled(t *testing.T) {
	r := newTestRunner(t, false)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.RunBatch(ctx, testAnswers); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	// The runner must stay usable after a cancelled batch: any game
	// dispatched before cancellation has fully drained.
	res, err := r.RunBatch(context.Background(), testAnswers)
	if err != nil || res.Games != len(testAnswers) {
		t.Fatalf("follow-up batch = %+v, %v", res, err)
	}
}

func TestReport(t *testing.T) {
	var res Result
	res.Games = 4
	res.Rounds[2] = 1
	res.Rounds[3] = 2
	res.Rounds[FailedRounds] = 1

	if got, want := res.Mean(), (2.0+3+3+7)/4; got != want {
		t.Errorf("Mean = %v, want %v", got, want)
	}
	if res.Failed() != 1 {
		t.Errorf("Failed = %d, want 1", res.Failed())
	}
	lines := strings.Join(res.Report(), "\n")
	for _, want := range []string{"average", "best: 2", "worst: 7", "failed %: 25"} {
		if !strings.Contains(lines, want) {
			t.Errorf("Report missing %q in:\n%s", want, lines)
		}
	}
}
