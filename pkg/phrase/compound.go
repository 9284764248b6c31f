package phrase

import "strings"

// MaxCompoundLength is the longest run of words folded into one compound glyph.
const MaxCompoundLength = 4

// CompoundSeparator joins the words of a compound key.
const CompoundSeparator = "-"

// CompoundSet is the set of known compound keys, e.g. "jan-sewi".
type CompoundSet map[string]struct{}

// NewCompoundSet builds a set from keys.
func NewCompoundSet(keys ...string) CompoundSet {
	s := make(CompoundSet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Has reports whether key is a known compound.
func (s CompoundSet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// MatchCompounds greedily folds words into compound keys.
//
// At each position windows of min(4, remaining) down to 2 words are tried and
// the first key found in compounds wins; otherwise the single word is emitted.
// Matching never backtracks, so a greedy choice may strand a word that would
// have joined a later compound.
func MatchCompounds(words []string, compounds CompoundSet) []string {
	out := make([]string, 0, len(words))
	for i := 0; i < len(words); {
		n := 1
		for length := min(MaxCompoundLength, len(words)-i); length > 1; length-- {
			if compounds.Has(strings.Join(words[i:i+length], CompoundSeparator)) {
				n = length
				break
			}
		}
		out = append(out, strings.Join(words[i:i+n], CompoundSeparator))
		i += n
	}
	return out
}
