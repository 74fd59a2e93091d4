package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"lowercases and strips punctuation", "Test Song!", "testsong"},
		{"removes all whitespace", "  a  b\tc ", "abc"},
		{"keeps digits", "Track 42", "track42"},
		{"unicode letters survive", "Café del Mar", "cafédelmar"},
		{"punctuation only", "?!...", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Test Song!", "  spaced   out  ", "ALL CAPS 99", "état d'âme"}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once))
	}
}

func TestCheckAnswerExact(t *testing.T) {
	res := CheckAnswer([]string{"Test Song!"}, "test song")
	assert.True(t, res.Correct)
	assert.False(t, res.Close)
}

func TestCheckAnswerGuessContainsAnswer(t *testing.T) {
	res := CheckAnswer([]string{"test song"}, "the test song extended mix")
	assert.True(t, res.Correct)
}

func TestCheckAnswerAnswerContainsGuess(t *testing.T) {
	// "test song" is long enough relative to "test song 1" to count.
	res := CheckAnswer([]string{"test song 1"}, "test song")
	assert.True(t, res.Correct)

	// "song" fails the length ratio but still lands in fuzzy range.
	res = CheckAnswer([]string{"test song 1"}, "song")
	assert.False(t, res.Correct)
	assert.True(t, res.Close)

	// Two letters are never enough for containment.
	res = CheckAnswer([]string{"test song 1"}, "te")
	assert.False(t, res.Correct)
}

func TestCheckAnswerTwoCharExact(t *testing.T) {
	res := CheckAnswer([]string{"X2"}, "x2")
	assert.True(t, res.Correct)
}

func TestCheckAnswerAbbreviation(t *testing.T) {
	res := CheckAnswer([]string{"Final Fantasy Seven"}, "fs")
	assert.True(t, res.Correct)

	res = CheckAnswer([]string{"Final Fantasy"}, "ff")
	assert.True(t, res.Correct)

	// No word starts with 'x'.
	res = CheckAnswer([]string{"Final Fantasy"}, "xf")
	assert.False(t, res.Correct)
	assert.False(t, res.Close)

	// Short answers never match by abbreviation.
	res = CheckAnswer([]string{"ab cd"}, "ac")
	assert.False(t, res.Correct)
}

func TestCheckAnswerFuzzy(t *testing.T) {
	// One transposition on an 8-rune answer: similarity 0.75.
	res := CheckAnswer([]string{"test song"}, "testsnog")
	assert.False(t, res.Correct)
	assert.True(t, res.Close)

	// Completely unrelated.
	res = CheckAnswer([]string{"test song"}, "zebra")
	assert.False(t, res.Correct)
	assert.False(t, res.Close)
}

func TestCheckAnswerOrderIndependent(t *testing.T) {
	a := []string{"test song 1", "Final Fantasy Seven", "zebra crossing"}
	b := []string{"zebra crossing", "test song 1", "Final Fantasy Seven"}

	for _, guess := range []string{"test song", "fs", "song", "zebra crossing", "nothing here"} {
		assert.Equal(t, CheckAnswer(a, guess), CheckAnswer(b, guess), "guess %q", guess)
	}
}

func TestCheckAnswerMultipleAnswers(t *testing.T) {
	answers := []string{"Symphony No. 9", "Ode to Joy"}
	res := CheckAnswer(answers, "ode to joy")
	assert.True(t, res.Correct)
}

func TestCheckAnswerEmptyGuess(t *testing.T) {
	res := CheckAnswer([]string{"test song"}, "!!!")
	assert.False(t, res.Correct)
	assert.False(t, res.Close)
}

func TestHint(t *testing.T) {
	assert.Equal(t, "◾◾◾◾ ◾◾◾◾", Hint("Test Song", 0))
	assert.Equal(t, "T◾◾◾ S◾◾◾", Hint("Test Song", 1))
	assert.Equal(t, "Te◾◾ So◾◾", Hint("Test Song", 2))

	// Levels past the cap reveal no more than MaxHintLevel letters.
	assert.Equal(t, Hint("Test Song", MaxHintLevel), Hint("Test Song", 99))

	// Punctuation is never masked.
	assert.Equal(t, "A◾◾◾◾'◾ 2◾", Hint("Adele's 21", 1))
}
