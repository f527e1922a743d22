package source

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceUnavailable means the input is missing or cannot be read
	ErrSourceUnavailable = errors.New("source unavailable")
	// ErrEncoding means the input bytes do not decode under the declared charset
	ErrEncoding = errors.New("invalid encoding")
)

// EncodingError reports where decoding failed
type EncodingError struct {
	Source  string
	Charset string
	// Offset is the byte offset of the offending sequence. For plain text it
	// counts bytes of the decoded, NFC normalized stream; for HTML it counts
	// bytes of the file itself, checked before conversion to text.
	Offset int64
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%s: %s: invalid %s sequence at byte %d", e.Source, ErrEncoding, e.Charset, e.Offset)
}

func (e *EncodingError) Unwrap() error { return ErrEncoding }

func unavailable(name string, err error) error {
	return fmt.Errorf("%s: %w: %v", name, ErrSourceUnavailable, err)
}
