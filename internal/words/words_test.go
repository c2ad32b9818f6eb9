package words

import (
	"os"
	"path/filepath"
	"testing"
)

func writeList(t *testing.T, name string, lines string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(lines), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadFromFiles(t *testing.T) {
	ans := writeList(t, "answers.txt", "CRANE\nslate\n\n  abide  \ntoolong\nab1de\n")
	all := writeList(t, "allowed.txt", "crane\nslate\nabide\nsoare\n")
	t.Setenv("WORDS_ANSWERS_FILE", ans)
	t.Setenv("WORDS_ALLOWED_FILE", all)

	l, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	wantAns := []string{"crane", "slate", "abide"}
	if len(l.Answers) != len(wantAns) {
		t.Fatalf("Answers = %v, want %v", l.Answers, wantAns)
	}
	for i, w := range wantAns {
		if l.Answers[i] != w {
			t.Errorf("Answers[%d] = %q, want %q (file order must be preserved)", i, l.Answers[i], w)
		}
	}
	if !l.IsAllowed("soare") || !l.IsAllowed("CRANE") {
		t.Error("allowed set missing expected words")
	}
	if l.IsAnswer("soare") {
		t.Error("soare should not be an answer")
	}
}

func TestLoadAllowedOnly(t *testing.T) {
	all := writeList(t, "allowed.txt", "crane\nslate\n")
	t.Setenv("WORDS_ANSWERS_FILE", "")
	t.Setenv("WORDS_ALLOWED_FILE", all)

	l, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if a, g := l.Stats(); a != 2 || g != 2 {
		t.Errorf("Stats() = %d, %d, want 2, 2", a, g)
	}
	if !l.IsAnswer("slate") {
		t.Error("allowed-only load should treat every word as an answer")
	}
}

func TestLoadEmbeddedDefaults(t *testing.T) {
	t.Setenv("WORDS_ANSWERS_FILE", "")
	t.Setenv("WORDS_ALLOWED_FILE", "")

	l, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	a, g := l.Stats()
	if a == 0 || g < a {
		t.Fatalf("Stats() = %d, %d, want nonempty answers and allowed ⊇ answers", a, g)
	}
	if !l.IsAnswer("crane") {
		t.Error("embedded defaults should include crane")
	}
}

func TestNewAppendsMissingAnswers(t *testing.T) {
	l, err := New([]string{"crane", "slate"}, []string{"soare"})
	if err != nil {
		t.Fatal(err)
	}
	if !l.IsAllowed("crane") || !l.IsAllowed("slate") {
		t.Error("answers must always be allowed guesses")
	}
	if len(l.Allowed) != 3 {
		t.Errorf("Allowed = %v, want 3 entries", l.Allowed)
	}
}

func TestNewCopiesInputSlices(t *testing.T) {
	answers := []string{"crane", "slate"}
	allowed := []string{"crane", "slate", "soare"}
	l, err := New(answers, allowed)
	if err != nil {
		t.Fatal(err)
	}
	answers[0] = "xxxxx"
	allowed[2] = "yyyyy"
	if l.Answers[0] != "crane" {
		t.Errorf("Answers[0] = %q, caller mutation leaked in", l.Answers[0])
	}
	if l.Allowed[2] != "soare" {
		t.Errorf("Allowed[2] = %q, caller mutation leaked in", l.Allowed[2])
	}
}

func TestIsValidWord(t *testing.T) {
	for _, w := range []string{"crane", "zzzzz"} {
		if !IsValidWord(w) {
			t.Errorf("IsValidWord(%q) = false, want true", w)
		}
	}
	for _, w := range []string{"", "abc", "toolong", "ab1de", "CRANE", "cran "} {
		if IsValidWord(w) {
			t.Errorf("IsValidWord(%q) = true, want false", w)
		}
	}
}

func TestNewEmptyAnswers(t *testing.T) {
	if _, err := New(nil, []string{"crane"}); err == nil {
		t.Fatal("expected error for empty answers list")
	}
}
