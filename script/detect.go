package script

import (
	"github.com/chrisport/go-lang-detector/langdet/langdetdef"
)

// Detect guesses the script of a text sample. Anything the language detector
// does not recognize as Arabic falls back to Latin.
func Detect(sample string) Script {
	if sample == "" {
		return Latin
	}

	detector := langdetdef.NewWithDefaultLanguages()
	if detector.GetClosestLanguage(sample) == "arabic" {
		return Arabic
	}

	// short samples may be below the detector confidence threshold
	var arabicLetters, otherLetters int
	for _, r := range sample {
		switch {
		case Arabic.IsAlphabet(r):
			arabicLetters++
		case Latin.IsAlphabet(r):
			otherLetters++
		}
	}
	if arabicLetters > otherLetters {
		return Arabic
	}
	return Latin
}
