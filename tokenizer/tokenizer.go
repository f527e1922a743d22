// Package tokenizer turns a character stream into normalized words
package tokenizer

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"goZipf/script"
	"goZipf/source"
)

// Tokenizer is a lazy word scanner over a Source. Words come out already
// normalized for the script. Reset starts the scan over from the beginning
// of the source.
//
//	tok := tokenizer.New(src, script.Latin)
//	for tok.Scan() {
//		word := tok.Word()
//	}
//	if err := tok.Err(); err != nil { ... }
type Tokenizer struct {
	src    source.Source
	script script.Script

	rc     io.ReadCloser
	reader *bufio.Reader
	offset int64

	buf  strings.Builder
	word string
	err  error
	done bool
}

// New returns a tokenizer that opens src on the first call to Scan
func New(src source.Source, s script.Script) *Tokenizer {
	return &Tokenizer{src: src, script: s}
}

// Scan advances to the next word. It returns false at the end of input or
// on the first error; Err tells which.
func (t *Tokenizer) Scan() bool {
	if t.done {
		return false
	}
	if t.reader == nil {
		rc, err := t.src.Open()
		if err != nil {
			return t.fail(err)
		}
		t.rc = rc
		t.reader = bufio.NewReader(rc)
	}

	for {
		r, size, err := t.reader.ReadRune()
		if err == io.EOF {
			t.finish()
			// trailing word
			return t.flush()
		}
		if err != nil {
			return t.fail(err)
		}
		if r == utf8.RuneError && size == 1 {
			return t.fail(&source.EncodingError{Source: t.src.Name(), Charset: source.UTF8, Offset: t.offset})
		}
		t.offset += int64(size)

		c := script.Classify(t.script, r)
		if c != script.Separator {
			t.buf.WriteRune(c)
			continue
		}
		if t.flush() {
			return true
		}
	}
}

// Word is the most recent word produced by Scan
func (t *Tokenizer) Word() string { return t.word }

// Err is the first error met while scanning, nil at a clean end of input
func (t *Tokenizer) Err() error { return t.err }

// Reset closes the current pass and rewinds to the start of the source
func (t *Tokenizer) Reset() error {
	var err error
	if t.rc != nil {
		err = t.rc.Close()
	}
	*t = Tokenizer{src: t.src, script: t.script}
	return err
}

// Close releases the underlying reader
func (t *Tokenizer) Close() error {
	t.done = true
	if t.rc == nil {
		return nil
	}
	err := t.rc.Close()
	t.rc = nil
	return err
}

// flush emits the buffered word, if any
func (t *Tokenizer) flush() bool {
	if t.buf.Len() == 0 {
		return false
	}
	t.word = t.buf.String()
	t.buf.Reset()
	return true
}

func (t *Tokenizer) finish() {
	t.done = true
	if t.rc != nil {
		t.rc.Close()
		t.rc = nil
	}
}

func (t *Tokenizer) fail(err error) bool {
	t.finish()
	t.err = err
	t.word = ""
	t.buf.Reset()
	return false
}

// Tokenize splits text into normalized words in one go. Text is composed to
// NFC first, as every Source does.
func Tokenize(text string, s script.Script) []string {
	var words []string
	var buf strings.Builder
	for _, r := range norm.NFC.String(text) {
		c := script.Classify(s, r)
		if c != script.Separator {
			buf.WriteRune(c)
			continue
		}
		if buf.Len() > 0 {
			words = append(words, buf.String())
			buf.Reset()
		}
	}
	if buf.Len() > 0 {
		words = append(words, buf.String())
	}
	return words
}
