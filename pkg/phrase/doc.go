// Package phrase turns a Toki Pona phrase into the token streams the
// compositor draws.
//
// A phrase has two regions. Lowercase tokens before the first capitalized
// token are words, each drawn with its own glyph. The first capitalized token
// and everything after it form a proper name, which is concatenated and split
// into phonetic syllables for a sitelen kalama pona cartouche:
//
//	p := phrase.Parse("jan sewi Amatelasu")
//	// p.Words == []string{"jan", "sewi"}
//	// p.Name  == "Amatelasu"
//
// # Compounds
//
// [MatchCompounds] folds runs of 2 to 4 words into hyphenated compound keys
// ("jan-sewi") when a compound glyph exists. Matching is greedy: the longest
// window at the current position wins and there is no backtracking.
//
// # Syllables
//
// [Alphabet.Syllables] scans a name left to right with maximal munch:
// optional consonant onset, one vowel, and an optional trailing "n" that is not
// followed by a vowel. Runes outside the alphabet are dropped.
// [Alphabet.AssetKey] maps a syllable to its glyph file key, marking a null
// onset with a prefix:
//
//	phrase.DefaultAlphabet().Syllables("Amatelasu") // [a ma te la su]
//	phrase.DefaultAlphabet().AssetKey("a")          // "xa"
package phrase
