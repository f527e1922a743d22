// Package script classifies characters as word letters or separators for the supported writing systems
package script

import (
	"fmt"
	"strings"
	"unicode"
)

// Separator replaces every character that is not part of the script alphabet
const Separator = ' '

const (
	zwnj = '\u200C' // zero-width non-joiner
	zwj  = '\u200D' // zero-width joiner
)

// Script knows which characters form words and how to normalize them.
type Script interface {
	Name() string
	IsAlphabet(r rune) bool
	Normalize(r rune) rune
}

type latin struct{}

func (latin) Name() string { return "latin" }

// IsAlphabet is true for any letter, ASCII or not
func (latin) IsAlphabet(r rune) bool { return unicode.IsLetter(r) }

// Normalize folds to lower case
func (latin) Normalize(r rune) rune { return unicode.ToLower(r) }

type arabic struct{}

func (arabic) Name() string { return "arabic" }

// IsAlphabet is true inside the Arabic block U+0600..U+06FF
func (arabic) IsAlphabet(r rune) bool { return r >= '\u0600' && r <= '\u06FF' }

// Normalize is the identity: Arabic has no letter case
func (arabic) Normalize(r rune) rune { return r }

var (
	Latin  Script = latin{}
	Arabic Script = arabic{}
)

// Classify returns the normalized rune when r belongs to the alphabet of s,
// Separator otherwise. Joiners and whitespace always separate.
func Classify(s Script, r rune) rune {
	if r == zwnj || r == zwj || unicode.IsSpace(r) {
		return Separator
	}
	if !s.IsAlphabet(r) {
		return Separator
	}
	return s.Normalize(r)
}

// Parse maps a configuration name to its script
func Parse(name string) (Script, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "latin", "english", "ascii":
		return Latin, nil
	case "arabic":
		return Arabic, nil
	}
	return nil, fmt.Errorf("script: unknown script %q", name)
}
