package assets

// CommonsBase is the Wikimedia Commons file page prefix.
const CommonsBase = "https://commons.wikimedia.org/wiki/File:"

// Source kinds.
const (
	SourceWord     = "word"
	SourceSyllable = "syllable"
)

// Source is a provenance entry for one placed glyph.
type Source struct {
	Kind string `json:"kind"`
	Key  string `json:"key"`
	URL  string `json:"url"`
}

// WordURL returns the Commons page of a word glyph. Overridden phrases link
// to their irregular file.
func WordURL(word string, overrides map[string]string) string {
	if name, ok := overrides[OverrideKey(word)]; ok {
		return CommonsBase + name
	}
	return CommonsBase + "Sitelen_seli_kiwen_-_" + word + ".svg"
}

// SyllableURL returns the Commons page of a syllable glyph by asset key.
func SyllableURL(key string) string {
	return CommonsBase + "Sitelen_kalama_pona_-_" + key + ".svg"
}

// WordSource builds the provenance entry for a word key.
func (r *Resolver) WordSource(key string) Source {
	return Source{Kind: SourceWord, Key: key, URL: WordURL(key, r.opts.Overrides)}
}

// SyllableSource builds the provenance entry for a syllable asset key.
func (r *Resolver) SyllableSource(key string) Source {
	return Source{Kind: SourceSyllable, Key: key, URL: SyllableURL(key)}
}
