package match

import (
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
)

// Product-tuned matching constants. These were settled by play-testing;
// do not re-derive them.
const (
	// FuzzyThreshold is the minimum normalized similarity for a "close" guess
	FuzzyThreshold = 0.7

	// ContainmentRatio is the minimum guess/answer length ratio for a
	// guess contained inside a longer answer to count as correct
	ContainmentRatio = 0.5

	// MinGuessLen is the minimum guess length for containment matching
	MinGuessLen = 3

	// abbrevMinAnswerLen is the minimum answer length for the two-letter
	// abbreviation rule
	abbrevMinAnswerLen = 5
)

// Result is the outcome of matching a guess against stored answers
type Result struct {
	// Correct means the guess resolves the round
	Correct bool

	// Close means the guess missed but was within fuzzy tolerance
	Close bool
}

// Normalize lowercases s and strips every rune that is not a letter or a
// digit, collapsing the string into a single contiguous token.
// Normalize("Test Song!") == "testsong". Idempotent.
func Normalize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

type storedAnswer struct {
	raw  string
	norm []rune
}

// CheckAnswer evaluates a guess against every stored answer for the
// current media. Rules are tried in fixed precedence order; every answer
// is checked at a given rule before the next rule is considered, so the
// result does not depend on answer order.
func CheckAnswer(storedAnswers []string, guess string) Result {
	ng := []rune(Normalize(guess))
	if len(ng) == 0 {
		return Result{}
	}

	answers := make([]storedAnswer, 0, len(storedAnswers))
	for _, a := range storedAnswers {
		norm := []rune(Normalize(a))
		if len(norm) == 0 {
			continue
		}
		answers = append(answers, storedAnswer{raw: a, norm: norm})
	}

	sg := string(ng)

	// Rule 1: exact match.
	for _, a := range answers {
		if sg == string(a.norm) {
			return Result{Correct: true}
		}
	}

	// Rule 2: the guess contains a whole stored answer.
	for _, a := range answers {
		if strings.Contains(sg, string(a.norm)) {
			return Result{Correct: true}
		}
	}

	// Rule 3: a stored answer contains the guess, if the guess is long
	// enough in absolute and relative terms.
	for _, a := range answers {
		if len(ng) >= MinGuessLen &&
			float64(len(ng)) >= ContainmentRatio*float64(len(a.norm)) &&
			strings.Contains(string(a.norm), sg) {
			return Result{Correct: true}
		}
	}

	if len(ng) == 2 {
		// Rule 4: two-character exact match. Subsumed by rule 1, kept
		// explicit so the two-character path reads as a unit.
		for _, a := range answers {
			if sg == string(a.norm) {
				return Result{Correct: true}
			}
		}

		// Rule 5: two-character abbreviation, e.g. "fs" for
		// "Final Fantasy Seven". Tokenization runs on the raw answer
		// because normalization removes the spaces.
		for _, a := range answers {
			if len(a.norm) >= abbrevMinAnswerLen && matchesAbbreviation(a.raw, ng) {
				return Result{Correct: true}
			}
		}
	}

	// Rule 6: fuzzy. Substring in either direction, or edit distance
	// within tolerance, makes the guess "close" but not correct.
	for _, a := range answers {
		na := string(a.norm)
		if strings.Contains(sg, na) || strings.Contains(na, sg) {
			return Result{Close: true}
		}
		if similarity(sg, na) >= FuzzyThreshold {
			return Result{Close: true}
		}
	}

	return Result{}
}

// matchesAbbreviation reports whether the whitespace-tokenized raw answer
// has at least one word starting with each of the two guess runes.
func matchesAbbreviation(rawAnswer string, guess []rune) bool {
	first, second := false, false
	for _, word := range strings.Fields(strings.ToLower(rawAnswer)) {
		r := []rune(word)[0]
		if r == guess[0] {
			first = true
		}
		if r == guess[1] {
			second = true
		}
	}
	return first && second
}

// similarity is 1 - editDistance/maxLen over normalized strings.
func similarity(a, b string) float64 {
	la, lb := len([]rune(a)), len([]rune(b))
	max := la
	if lb > max {
		max = lb
	}
	if max == 0 {
		return 1
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(max)
}
