package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyLatin(t *testing.T) {
	cases := []struct {
		in   rune
		want rune
	}{
		{'a', 'a'},
		{'Q', 'q'},
		{'É', 'é'},
		{'.', Separator},
		{'7', Separator},
		{'\t', Separator},
		{'\u200C', Separator},
		{'-', Separator},
	}
	for _, c := range cases {
		assert.Equalf(t, c.want, Classify(Latin, c.in), "Classify(Latin, %q)", c.in)
	}
}

func TestClassifyArabic(t *testing.T) {
	cases := []struct {
		in   rune
		want rune
	}{
		{'ب', 'ب'},
		{'\u0600', '\u0600'},
		{'\u06FF', '\u06FF'},
		{'\u0700', Separator},
		{'a', Separator},
		{'A', Separator},
		{' ', Separator},
		{'\u200C', Separator},
		{'\u200D', Separator},
		{'\n', Separator},
	}
	for _, c := range cases {
		assert.Equalf(t, c.want, Classify(Arabic, c.in), "Classify(Arabic, %q)", c.in)
	}
}

func TestArabicHasNoCase(t *testing.T) {
	for r := rune(0x0600); r <= 0x06FF; r++ {
		if Arabic.IsAlphabet(r) {
			assert.Equal(t, r, Arabic.Normalize(r))
		}
	}
}

func TestParse(t *testing.T) {
	s, err := Parse("Arabic")
	require.NoError(t, err)
	assert.Equal(t, "arabic", s.Name())

	s, err = Parse("")
	require.NoError(t, err)
	assert.Equal(t, Latin, s)

	_, err = Parse("cyrillic")
	assert.Error(t, err)
}

func TestDetect(t *testing.T) {
	assert.Equal(t, Latin, Detect(""))
	assert.Equal(t, Latin, Detect("It was the best of times, it was the worst of times, it was the age of wisdom"))
	assert.Equal(t, Arabic, Detect("في البدء كان الكلمة، والكلمة كانت عند الله، وكان الكلمة الله"))
}
