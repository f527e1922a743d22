package tokenizer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goZipf/script"
	"goZipf/source"
)

func scanAll(t *testing.T, tok *Tokenizer) []string {
	t.Helper()
	var words []string
	for tok.Scan() {
		words = append(words, tok.Word())
	}
	require.NoError(t, tok.Err())
	return words
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name   string
		script script.Script
		text   string
		want   []string
	}{
		{"sentence", script.Latin, "the cat sat on the mat. The CAT ran.",
			[]string{"the", "cat", "sat", "on", "the", "mat", "the", "cat", "ran"}},
		{"empty", script.Latin, "", nil},
		{"punctuation only", script.Latin, " ,.;!? --\n\t(...) 42 ", nil},
		{"single letters", script.Latin, "a I x", []string{"a", "i", "x"}},
		{"digits split", script.Latin, "abc123def", []string{"abc", "def"}},
		{"no leading or trailing separator", script.Latin, "Hello", []string{"hello"}},
		{"zwnj splits arabic", script.Arabic, "کتاب\u200Cخانه", []string{"کتاب", "خانه"}},
		{"arabic ignores latin", script.Arabic, "مرحبا hello عالم", []string{"مرحبا", "عالم"}},
		{"accented latin", script.Latin, "Café ÉTÉ", []string{"café", "été"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.text, tt.script))

			tok := New(source.Text{Content: tt.text}, tt.script)
			assert.Equal(t, tt.want, scanAll(t, tok))
		})
	}
}

func TestDecomposedInput(t *testing.T) {
	composed := "na\u00efve caf\u00e9 r\u00e9sum\u00e9"
	decomposed := "nai\u0308ve cafe\u0301 re\u0301sume\u0301"
	want := []string{"na\u00efve", "caf\u00e9", "r\u00e9sum\u00e9"}

	assert.Equal(t, want, Tokenize(composed, script.Latin))
	assert.Equal(t, want, Tokenize(decomposed, script.Latin))
	assert.Equal(t, want, scanAll(t, New(source.Text{Content: decomposed}, script.Latin)))

	path := filepath.Join(t.TempDir(), "nfd.txt")
	require.NoError(t, os.WriteFile(path, []byte(decomposed), 0644))
	assert.Equal(t, want, scanAll(t, New(source.File{Path: path}, script.Latin)))
}

func TestReset(t *testing.T) {
	tok := New(source.Text{Content: "one two, three"}, script.Latin)
	first := scanAll(t, tok)
	assert.False(t, tok.Scan())

	require.NoError(t, tok.Reset())
	assert.Equal(t, first, scanAll(t, tok))
}

func TestResetMidway(t *testing.T) {
	tok := New(source.Text{Content: "one two three"}, script.Latin)
	require.True(t, tok.Scan())
	require.True(t, tok.Scan())
	assert.Equal(t, "two", tok.Word())

	require.NoError(t, tok.Reset())
	assert.Equal(t, []string{"one", "two", "three"}, scanAll(t, tok))
}

func TestInvalidUTF8(t *testing.T) {
	tok := New(source.Text{Label: "broken", Content: "abc \xff def"}, script.Latin)

	require.True(t, tok.Scan())
	assert.Equal(t, "abc", tok.Word())
	assert.False(t, tok.Scan())

	err := tok.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, source.ErrEncoding))

	var encErr *source.EncodingError
	require.True(t, errors.As(err, &encErr))
	assert.Equal(t, "broken", encErr.Source)
	assert.Equal(t, int64(4), encErr.Offset)
}

func TestMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")
	tok := New(source.File{Path: path}, script.Latin)

	assert.False(t, tok.Scan())
	assert.True(t, errors.Is(tok.Err(), source.ErrSourceUnavailable))
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.txt")
	require.NoError(t, os.WriteFile(path, []byte("Call me Ishmael. Some years ago"), 0644))

	tok := New(source.File{Path: path}, script.Latin)
	defer tok.Close()
	assert.Equal(t, []string{"call", "me", "ishmael", "some", "years", "ago"}, scanAll(t, tok))
}
