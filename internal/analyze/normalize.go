package analyze

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldChain builds the diacritic-stripping transformer. Transformers carry
// internal state, so each call gets its own; documents are normalized
// concurrently.
func foldChain() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// Normalize lowercases the text, strips diacritics and control characters,
// and collapses runs of whitespace into single spaces. All matching against
// the vocabularies happens on normalized text, so "Compétences" and
// "competences" compare equal.
func Normalize(text string) string {
	folded, _, err := transform.String(foldChain(), text)
	if err != nil {
		// The fold chain cannot fail on valid UTF-8; keep the raw text
		// for anything else.
		folded = text
	}

	folded = strings.ToLower(folded)

	var b strings.Builder
	b.Grow(len(folded))

	space := false
	for _, r := range folded {
		if r == '’' {
			r = '\''
		}
		switch {
		case unicode.IsSpace(r):
			space = true
		case unicode.IsControl(r):
			// drop
		default:
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteRune(r)
		}
	}

	return b.String()
}
