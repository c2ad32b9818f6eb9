// internal/words/words.go
//
// Word list loading for the solver.
//
// Responsibilities:
//   - Load the answer list (eligible secrets) and allowed guess list from
//     environment-provided files or fall back to embedded defaults.
//   - Maintain lookup sets (answers only, answers∪guesses).
//   - Preserve file order: list order is the deterministic tie-break order
//     downstream, so loading must not shuffle or sort.
//
// Word Lists:
//   - "answers": words eligible to be the secret (exactly 5 lowercase letters).
//   - "allowed": valid guesses (always includes answers).
//
// Loading behavior (Load):
//   1. If WORDS_ANSWERS_FILE and WORDS_ALLOWED_FILE are both set,
//      load answers from the first and allowed guesses from the second.
//   2. If only WORDS_ALLOWED_FILE is set,
//      load that file and use it for both answers and allowed guesses.
//   3. If neither is set,
//      fall back to the small embedded defaults.
//
// Environment variables:
//   WORDS_ANSWERS_FILE=/path/to/answers.txt
//   WORDS_ALLOWED_FILE=/path/to/allowed.txt
//
// Constraints:
//   • Words must be 5 alphabetic letters (a–z).
//   • Lists are normalized to lowercase; blank lines are skipped.

package words

import (
	"bufio"
	_ "embed"
	"errors"
	"os"
	"strings"
)

// --- embedded tiny defaults (solver runs even with no files configured) ---

//go:embed default_small_answers.txt
var embeddedAnswers string

//go:embed default_small_allowed.txt
var embeddedAllowed string

// Lists holds the two process-wide vocabularies. Immutable after Load.
type Lists struct {
	Answers []string // eligible secrets, in file order
	Allowed []string // valid guesses, in file order (superset of Answers)

	answerSet  map[string]struct{}
	allowedSet map[string]struct{} // answers ∪ guesses
}

// Load reads the word lists per the environment variables documented above.
// Returns an error if the answers list ends up empty.
func Load() (*Lists, error) {
	var ansList, allowList []string

	answersPath := os.Getenv("WORDS_ANSWERS_FILE")
	allowedPath := os.Getenv("WORDS_ALLOWED_FILE")

	switch {
	// Case 1: both lists provided
	case answersPath != "" && allowedPath != "":
		var err error
		ansList, err = readWordFile(answersPath)
		if err != nil {
			return nil, err
		}
		allowList, err = readWordFile(allowedPath)
		if err != nil {
			return nil, err
		}

	// Case 2: only allowed file provided → use for both
	case answersPath == "" && allowedPath != "":
		var err error
		allowList, err = readWordFile(allowedPath)
		if err != nil {
			return nil, err
		}
		ansList = allowList

	// Case 3: fallback to embedded defaults
	default:
		ansList = normalizeLines(embeddedAnswers)
		allowList = normalizeLines(embeddedAllowed)
		if len(allowList) == 0 {
			allowList = ansList
		}
	}

	return New(ansList, allowList)
}

// New builds Lists from explicit slices (used by tests and by Load).
// Answers missing from the allowed list are appended to it so that every
// secret is always a legal guess.
func New(answers, allowed []string) (*Lists, error) {
	if len(answers) == 0 {
		return nil, errors.New("words: answers list is empty")
	}
	// Copy both slices so later caller mutations cannot reach in.
	l := &Lists{
		Answers:    append([]string{}, answers...),
		answerSet:  toSet(answers),
		allowedSet: toSet(allowed),
	}
	l.Allowed = append([]string{}, allowed...)
	for _, w := range answers {
		if _, ok := l.allowedSet[w]; !ok {
			l.Allowed = append(l.Allowed, w)
			l.allowedSet[w] = struct{}{}
		}
	}
	return l, nil
}

// readWordFile loads one word per line from a file,
// lowercases, trims, and keeps only valid 5-letter alphabetic words.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if len(w) == 5 && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// normalizeLines processes an embedded multiline string
// into a slice of valid lowercase 5-letter words.
func normalizeLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		w := strings.TrimSpace(strings.ToLower(line))
		if len(w) == 5 && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// IsValidWord reports whether w is well formed: exactly 5 lowercase ASCII
// letters. Anything else must never reach the encoder.
func IsValidWord(w string) bool {
	return len(w) == 5 && isAlpha(w)
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// IsAllowed reports whether w is a valid guess (answers ∪ guesses).
func (l *Lists) IsAllowed(w string) bool {
	_, ok := l.allowedSet[strings.ToLower(w)]
	return ok
}

// IsAnswer reports whether w is an answer word.
func (l *Lists) IsAnswer(w string) bool {
	_, ok := l.answerSet[strings.ToLower(w)]
	return ok
}

// Stats returns counts of loaded words: (answers, allowed).
func (l *Lists) Stats() (answersCount int, allowedCount int) {
	return len(l.Answers), len(l.Allowed)
}
