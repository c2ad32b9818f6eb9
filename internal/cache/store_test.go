package cache

import (
	"context"
	"path/filepath"
	"testing"
)

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "patterns.db")

	st, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}

	c := New()
	secrets := []string{"crane", "slate", "abide"}
	guesses := []string{"crane", "slate", "abide", "soare", "speed"}
	c.BulkPrecompute(secrets, guesses)

	if err := st.Save(ctx, c); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if c.Dirty() {
		t.Error("Save should clear the dirty flag")
	}
	if err := st.Close(); err != nil {
		t.Fatal(err)
	}

	// Fresh process: reopen and load into an empty cache.
	st2, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer st2.Close()

	c2 := New()
	n, err := st2.Load(ctx, c2)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if want := len(secrets) * len(guesses); n != want || c2.Len() != want {
		t.Fatalf("Load restored %d entries (Len %d), want %d", n, c2.Len(), want)
	}
	if c2.Dirty() {
		t.Error("loaded entries should not mark the cache dirty")
	}

	// Every previously cached pair must produce identical lookups.
	for _, s := range secrets {
		for _, g := range guesses {
			if got, want := c2.LookupOrCompute(s, g), c.LookupOrCompute(s, g); got != want {
				t.Errorf("after reload cache(%s, %s) = %q, want %q", s, g, got, want)
			}
		}
	}
	if c2.Dirty() {
		t.Error("no lookup should have missed after reload")
	}
}

func TestOpeners(t *testing.T) {
	ctx := context.Background()
	st, err := Open(filepath.Join(t.TempDir(), "patterns.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()

	if m, err := st.LoadOpeners(ctx); err != nil || len(m) != 0 {
		t.Fatalf("LoadOpeners on empty store = %v, %v", m, err)
	}
	if err := st.SaveOpener(ctx, "minimax_entropy", "roate"); err != nil {
		t.Fatal(err)
	}
	if err := st.SaveOpener(ctx, "minimax_entropy", "soare"); err != nil {
		t.Fatal(err)
	}
	m, err := st.LoadOpeners(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if m["minimax_entropy"] != "soare" {
		t.Errorf("opener = %q, want soare (upsert should replace)", m["minimax_entropy"])
	}
}

func TestOpenMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "patterns.db")
	st, err := Open(path)
	if err != nil {
		t.Fatalf("Open should create parent directories: %v", err)
	}
	st.Close()
}
