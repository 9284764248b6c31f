package phrase

import (
	"strings"

	"github.com/matzehuels/kalamapona/pkg/errors"
)

// Default alphabet values.
const (
	DefaultConsonants = "mnptkwjls"
	DefaultVowels     = "aeiou"
	DefaultNullOnset  = "x"
)

// nasal is the only coda consonant.
const nasal = 'n'

// Alphabet holds the phonotactic inventory used for syllable extraction.
type Alphabet struct {
	Consonants string // onset consonants
	Vowels     string // nuclei
	NullOnset  string // asset key prefix for vowel-initial syllables
}

// DefaultAlphabet returns the Toki Pona inventory.
func DefaultAlphabet() Alphabet {
	return Alphabet{
		Consonants: DefaultConsonants,
		Vowels:     DefaultVowels,
		NullOnset:  DefaultNullOnset,
	}
}

// Validate checks that the alphabet can drive extraction.
func (a Alphabet) Validate() error {
	if a.Consonants == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "alphabet has no consonants")
	}
	if a.Vowels == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "alphabet has no vowels")
	}
	if strings.ContainsAny(a.Consonants, a.Vowels) {
		return errors.New(errors.ErrCodeInvalidConfig, "consonants %q and vowels %q overlap", a.Consonants, a.Vowels)
	}
	if a.NullOnset == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "null onset marker cannot be empty")
	}
	return nil
}

func (a Alphabet) isConsonant(r rune) bool { return strings.ContainsRune(a.Consonants, r) }
func (a Alphabet) isVowel(r rune) bool     { return strings.ContainsRune(a.Vowels, r) }

// Syllables splits name into syllables with a single maximal-munch pass.
//
// The name is lowercased first. A consonant starts a syllable and takes a
// following vowel; a vowel starts a syllable on its own. After a vowel, an "n"
// that is not itself followed by a vowel closes the syllable as a coda. Any
// rune outside the alphabet is skipped.
func (a Alphabet) Syllables(name string) []string {
	rs := []rune(strings.ToLower(name))
	var out []string

	for i := 0; i < len(rs); {
		switch {
		case a.isConsonant(rs[i]):
			start := i
			i++
			if i < len(rs) && a.isVowel(rs[i]) {
				i++
				i = a.coda(rs, i)
			}
			out = append(out, string(rs[start:i]))
		case a.isVowel(rs[i]):
			start := i
			i = a.coda(rs, i+1)
			out = append(out, string(rs[start:i]))
		default:
			i++
		}
	}
	return out
}

// coda consumes a nasal at i when it does not begin the next syllable.
func (a Alphabet) coda(rs []rune, i int) int {
	if i < len(rs) && rs[i] == nasal && (i+1 >= len(rs) || !a.isVowel(rs[i+1])) {
		return i + 1
	}
	return i
}

// AssetKey returns the glyph file key for a syllable. Syllables without a
// consonant onset get the null-onset prefix.
func (a Alphabet) AssetKey(syllable string) string {
	for _, r := range syllable {
		if a.isConsonant(r) {
			return syllable
		}
		break
	}
	return a.NullOnset + syllable
}

// AssetKeys maps AssetKey over syllables.
func (a Alphabet) AssetKeys(syllables []string) []string {
	keys := make([]string, len(syllables))
	for i, s := range syllables {
		keys[i] = a.AssetKey(s)
	}
	return keys
}
