package source

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, src Source) string {
	t.Helper()
	rc, err := src.Open()
	require.NoError(t, err)
	defer rc.Close()
	b, err := ioutil.ReadAll(rc)
	require.NoError(t, err)
	return string(b)
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestFileMissing(t *testing.T) {
	_, err := File{Path: filepath.Join(t.TempDir(), "missing.txt")}.Open()
	assert.True(t, errors.Is(err, ErrSourceUnavailable))
}

func TestFileIsDirectory(t *testing.T) {
	_, err := File{Path: t.TempDir()}.Open()
	assert.True(t, errors.Is(err, ErrSourceUnavailable))
}

func TestFileUTF8(t *testing.T) {
	path := writeFile(t, "a.txt", []byte("سلام world"))
	assert.Equal(t, "سلام world", readAll(t, File{Path: path}))
}

func TestFileWindows1256(t *testing.T) {
	// "سلام" in windows-1256
	path := writeFile(t, "a.txt", []byte{0xD3, 0xE1, 0xC7, 0xE3})
	assert.Equal(t, "سلام", readAll(t, File{Path: path, Charset: "Windows-1256"}))
}

func TestFileLatin1(t *testing.T) {
	path := writeFile(t, "a.txt", []byte{'c', 'a', 'f', 0xE9})
	assert.Equal(t, "café", readAll(t, File{Path: path, Charset: "iso-8859-1"}))
}

func TestUnsupportedCharset(t *testing.T) {
	_, err := File{Path: "whatever", Charset: "klingon"}.Open()
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrSourceUnavailable))
}

func TestFileHTML(t *testing.T) {
	path := writeFile(t, "a.html", []byte("<html><body><h1>Moby</h1><p>Call me <b>Ishmael</b>.</p></body></html>"))
	text := readAll(t, File{Path: path, Format: FormatHTML})
	assert.NotContains(t, text, "<")
	assert.Contains(t, text, "Ishmael")
}

func TestFileHTMLInvalidUTF8(t *testing.T) {
	path := writeFile(t, "a.html", []byte("<p>ok</p>\xff<p>more</p>"))
	_, err := File{Path: path, Format: FormatHTML}.Open()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEncoding))

	var encErr *EncodingError
	require.True(t, errors.As(err, &encErr))
	assert.Equal(t, int64(9), encErr.Offset)
}

func TestNFC(t *testing.T) {
	assert.Equal(t, "caf\u00e9", readAll(t, Text{Content: "cafe\u0301"}))

	path := writeFile(t, "a.txt", []byte("cafe\u0301"))
	assert.Equal(t, "caf\u00e9", readAll(t, File{Path: path}))

	path = writeFile(t, "b.html", []byte("<p>cafe\u0301</p>"))
	assert.Contains(t, readAll(t, File{Path: path, Format: FormatHTML}), "caf\u00e9")
}

func TestTextReopens(t *testing.T) {
	src := Text{Content: "again"}
	assert.Equal(t, "again", readAll(t, src))
	assert.Equal(t, "again", readAll(t, src))
	assert.Equal(t, "<text>", src.Name())
}

func TestSample(t *testing.T) {
	s, err := Sample(Text{Content: strings.Repeat("ب", 10)}, 5)
	require.NoError(t, err)
	assert.Equal(t, "بب", s)

	_, err = Sample(File{Path: filepath.Join(t.TempDir(), "missing")}, 5)
	assert.True(t, errors.Is(err, ErrSourceUnavailable))
}

func TestEncodingError(t *testing.T) {
	err := error(&EncodingError{Source: "book.txt", Charset: UTF8, Offset: 12})
	assert.True(t, errors.Is(err, ErrEncoding))
	assert.Equal(t, "book.txt: invalid encoding: invalid utf-8 sequence at byte 12", err.Error())
}
