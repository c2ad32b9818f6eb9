package cache

import (
	"sync"
	"testing"

	"github.com/robalobadob/wordle-solver/internal/feedback"
)

func TestLookupOrCompute(t *testing.T) {
	c := New()
	if c.Dirty() {
		t.Fatal("new cache should be clean")
	}

	p := c.LookupOrCompute("crane", "slate")
	if want := feedback.Encode("slate", "crane"); p != want {
		t.Errorf("LookupOrCompute = %q, want %q", p, want)
	}
	if !c.Dirty() {
		t.Error("miss should mark the cache dirty")
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}

	c.ClearDirty()
	if got := c.LookupOrCompute("crane", "slate"); got != p {
		t.Errorf("second lookup = %q, want %q", got, p)
	}
	if c.Dirty() {
		t.Error("hit should not mark the cache dirty")
	}
}

func TestBulkPrecompute(t *testing.T) {
	c := New()
	secrets := []string{"crane", "slate", "abide"}
	guesses := []string{"crane", "slate", "abide", "soare"}
	c.BulkPrecompute(secrets, guesses)

	if want := len(secrets) * len(guesses); c.Len() != want {
		t.Fatalf("Len = %d, want %d", c.Len(), want)
	}
	c.ClearDirty()
	for _, s := range secrets {
		for _, g := range guesses {
			if got, want := c.LookupOrCompute(s, g), feedback.Encode(g, s); got != want {
				t.Errorf("cache(%s, %s) = %q, want %q", s, g, got, want)
			}
		}
	}
	if c.Dirty() {
		t.Error("all lookups should have been hits after bulk precompute")
	}
}

func TestConcurrentLazyFill(t *testing.T) {
	c := New()
	secrets := []string{"crane", "slate", "abide", "erase", "speed"}
	guesses := []string{"soare", "roate", "raise", "adieu", "crane"}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, s := range secrets {
				for _, g := range guesses {
					if got, want := c.LookupOrCompute(s, g), feedback.Encode(g, s); got != want {
						t.Errorf("cache(%s, %s) = %q, want %q", s, g, got, want)
					}
				}
			}
		}()
	}
	wg.Wait()

	if want := len(secrets) * len(guesses); c.Len() != want {
		t.Errorf("Len = %d, want %d", c.Len(), want)
	}
}
