package phrase

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Phrase is the token stream derived from an input phrase.
type Phrase struct {
	Words []string // lowercase word tokens, in order
	Name  string   // concatenated proper name; empty when the phrase has none
}

// HasName reports whether the phrase ends in a proper name.
func (p Phrase) HasName() bool { return p.Name != "" }

// Parse splits text into word tokens and a proper name.
//
// The text is NFC-normalized and split on whitespace. The first token whose
// first rune is uppercase ends the word region; it and all remaining tokens
// are joined without separators into Name. A capitalized token therefore never
// appears among Words.
func Parse(text string) Phrase {
	tokens := strings.Fields(norm.NFC.String(text))

	var p Phrase
	for i, tok := range tokens {
		if startsUpper(tok) {
			p.Name = strings.Join(tokens[i:], "")
			break
		}
		p.Words = append(p.Words, tok)
	}
	return p
}

func startsUpper(tok string) bool {
	r, _ := utf8.DecodeRuneInString(tok)
	return unicode.IsUpper(r)
}
