package match

import (
	"strings"
	"unicode"
)

// MaxHintLevel is the highest hint level the orchestrator schedules.
const MaxHintLevel = 4

// Hint returns a partially-masked form of the answer for the given hint
// level (0..MaxHintLevel). Level 0 reveals only word shape; each further
// level reveals more letters, left to right within each word.
// Whitespace and punctuation are always visible.
func Hint(answer string, level int) string {
	if level < 0 {
		level = 0
	}
	if level > MaxHintLevel {
		level = MaxHintLevel
	}

	var b strings.Builder
	for _, word := range strings.Split(answer, " ") {
		if b.Len() > 0 {
			b.WriteRune(' ')
		}
		runes := []rune(word)
		// Reveal a growing prefix of each word: none at level 0, then
		// roughly one more letter per level.
		reveal := level
		for i, r := range runes {
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
				b.WriteRune(r)
				continue
			}
			if i < reveal {
				b.WriteRune(r)
			} else {
				b.WriteRune('◾')
			}
		}
	}
	return b.String()
}
