// Package source opens corpus text for tokenizing: files in a declared charset, plain or HTML
package source

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"jaytaylor.com/html2text"
)

// Supported input formats
const (
	FormatText = "text"
	FormatHTML = "html"
)

// UTF8 is the default charset
const UTF8 = "utf-8"

// Source yields a fresh reader of NFC normalized UTF-8 text on every Open, so
// it can be read again.
type Source interface {
	Name() string
	Open() (io.ReadCloser, error)
}

var charsets = map[string]encoding.Encoding{
	"windows-1256": charmap.Windows1256,
	"cp1256":       charmap.Windows1256,
	"iso-8859-6":   charmap.ISO8859_6,
	"iso-8859-1":   charmap.ISO8859_1,
	"latin1":       charmap.ISO8859_1,
	"windows-1252": charmap.Windows1252,
	"cp1252":       charmap.Windows1252,
}

// CanonicalCharset lowercases a charset name and rejects unsupported ones
func CanonicalCharset(name string) (string, error) {
	c := strings.ToLower(strings.TrimSpace(name))
	switch c {
	case "", "utf8", UTF8:
		return UTF8, nil
	}
	if _, ok := charsets[c]; !ok {
		return "", fmt.Errorf("source: unsupported charset %q", name)
	}
	return c, nil
}

// File is a corpus file on disk
type File struct {
	Path    string
	Charset string // utf-8 when empty
	Format  string // text when empty
}

func (f File) Name() string { return f.Path }

// Open returns the file content decoded to UTF-8 and composed to NFC. A
// missing or unreadable file yields ErrSourceUnavailable; an HTML file with
// invalid UTF-8 yields an *EncodingError before any conversion.
func (f File) Open() (io.ReadCloser, error) {
	charset, err := CanonicalCharset(f.Charset)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(f.Path)
	if err != nil {
		return nil, unavailable(f.Path, err)
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, unavailable(f.Path, err)
	}
	if info.IsDir() {
		file.Close()
		return nil, unavailable(f.Path, fmt.Errorf("is a directory"))
	}

	var r io.Reader = file
	if enc, ok := charsets[charset]; ok {
		r = transform.NewReader(file, enc.NewDecoder())
	}

	if f.Format != FormatHTML {
		return readCloser{Reader: transform.NewReader(r, norm.NFC), Closer: file}, nil
	}

	// html2text needs the whole document
	defer file.Close()
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, unavailable(f.Path, err)
	}
	if offset := invalidUTF8(b); offset >= 0 {
		return nil, &EncodingError{Source: f.Path, Charset: charset, Offset: int64(offset)}
	}
	plain, err := html2text.FromString(string(b), html2text.Options{PrettyTables: false})
	if err != nil {
		return nil, fmt.Errorf("%s: html2text: %w", f.Path, err)
	}
	return ioutil.NopCloser(strings.NewReader(norm.NFC.String(plain))), nil
}

// invalidUTF8 returns the offset of the first invalid sequence in b, -1 if none
func invalidUTF8(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}

// Text is an in-memory source
type Text struct {
	Label   string
	Content string
}

func (t Text) Name() string {
	if t.Label == "" {
		return "<text>"
	}
	return t.Label
}

func (t Text) Open() (io.ReadCloser, error) {
	return ioutil.NopCloser(transform.NewReader(strings.NewReader(t.Content), norm.NFC)), nil
}

type readCloser struct {
	io.Reader
	io.Closer
}

// Sample returns at most n bytes of decoded text from the start of src,
// trimmed back to a rune boundary.
func Sample(src Source, n int) (string, error) {
	rc, err := src.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	b, err := ioutil.ReadAll(io.LimitReader(rc, int64(n)))
	if err != nil {
		return "", unavailable(src.Name(), err)
	}
	return strings.ToValidUTF8(string(b), ""), nil
}
