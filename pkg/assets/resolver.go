package assets

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/kalamapona/pkg/errors"
	"github.com/matzehuels/kalamapona/pkg/glyph"
	"github.com/matzehuels/kalamapona/pkg/phrase"
)

// Options configures a Resolver.
type Options struct {
	WordsDir       string
	SyllablesDir   string
	WordPrefix     string
	SyllablePrefix string

	// Overrides maps a phrase (words separated by spaces) to an irregular
	// word glyph file name.
	Overrides map[string]string

	Logger *log.Logger
}

// candidate proposes a file name for a word key; ok is false when the
// generator does not apply to key.
type candidate func(key string) (name string, ok bool)

// Resolver maps word and syllable keys to loaded glyph assets. Each file is
// read at most once per Resolver, so repeated words share one asset.
//
// A Resolver is safe for concurrent use.
type Resolver struct {
	opts       Options
	candidates []candidate
	logger     *log.Logger

	mu     sync.Mutex
	loaded map[string]*glyph.Asset
}

// NewResolver creates a resolver over the given directories.
func NewResolver(opts Options) *Resolver {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	r := &Resolver{
		opts:   opts,
		logger: logger,
		loaded: make(map[string]*glyph.Asset),
	}
	r.candidates = []candidate{
		r.overrideLiteral,
		r.overrideSpaced,
		r.standardWord,
	}
	return r
}

// OverrideKey is the override table key for a word token: hyphens become
// spaces, so "tomo-sewi" looks up "tomo sewi".
func OverrideKey(word string) string {
	return strings.ReplaceAll(word, phrase.CompoundSeparator, " ")
}

func (r *Resolver) overrideLiteral(key string) (string, bool) {
	name, ok := r.opts.Overrides[OverrideKey(key)]
	return name, ok
}

func (r *Resolver) overrideSpaced(key string) (string, bool) {
	name, ok := r.opts.Overrides[OverrideKey(key)]
	if !ok || !strings.Contains(name, "_") {
		return "", false
	}
	return strings.ReplaceAll(name, "_", " "), true
}

func (r *Resolver) standardWord(key string) (string, bool) {
	return r.opts.WordPrefix + key + ".svg", true
}

// WordCandidates lists the files tried for a word key, in priority order.
func (r *Resolver) WordCandidates(key string) []string {
	var out []string
	for _, c := range r.candidates {
		if name, ok := c(key); ok {
			out = append(out, filepath.Join(r.opts.WordsDir, name))
		}
	}
	return out
}

// SyllablePath is the file holding the glyph for a syllable asset key.
func (r *Resolver) SyllablePath(key string) string {
	return filepath.Join(r.opts.SyllablesDir, r.opts.SyllablePrefix+key+".svg")
}

// Word loads the glyph for a word or compound key. The first existing
// candidate file wins.
func (r *Resolver) Word(key string) (*glyph.Asset, error) {
	if err := errors.ValidateAssetKey(key); err != nil {
		return nil, err
	}
	candidates := r.WordCandidates(key)
	for _, path := range candidates {
		if !fileExists(path) {
			continue
		}
		return r.load(key, path)
	}
	return nil, errors.New(errors.ErrCodeAssetNotFound, "no glyph for word %q (tried %s)", key, strings.Join(candidates, ", "))
}

// Syllable loads the glyph for a syllable asset key such as "ma" or "xa".
func (r *Resolver) Syllable(key string) (*glyph.Asset, error) {
	if err := errors.ValidateAssetKey(key); err != nil {
		return nil, err
	}
	path := r.SyllablePath(key)
	if !fileExists(path) {
		return nil, errors.New(errors.ErrCodeAssetNotFound, "no glyph for syllable %q (tried %s)", key, path)
	}
	return r.load(key, path)
}

func (r *Resolver) load(key, path string) (*glyph.Asset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a, ok := r.loaded[path]; ok {
		return a, nil
	}
	a, err := glyph.Load(key, path)
	if err != nil {
		if errors.Is(err, errors.ErrCodeFileNotFound) {
			return nil, errors.Wrap(errors.ErrCodeAssetNotFound, err, "glyph %q", key)
		}
		if !errors.Is(err, errors.ErrCodeInvalidAsset) {
			return nil, errors.Wrap(errors.ErrCodeInvalidAsset, err, "glyph %q", key)
		}
		return nil, err
	}
	r.logger.Debug("loaded glyph", "key", key, "path", path, "paths", len(a.Paths))
	r.loaded[path] = a
	return a, nil
}

// Compounds scans the words directory for compound glyphs, files named
// "<word prefix><a>-<b>[-...].svg", and returns their keys. Multi-word
// overrides whose file exists count as compounds too. A missing directory
// yields an empty set and an ErrCodeFileNotFound error the caller may log
// and ignore.
func (r *Resolver) Compounds() (phrase.CompoundSet, error) {
	if info, err := os.Stat(r.opts.WordsDir); err != nil || !info.IsDir() {
		return phrase.NewCompoundSet(), errors.New(errors.ErrCodeFileNotFound, "words directory %s not found", r.opts.WordsDir)
	}
	pattern := filepath.Join(r.opts.WordsDir, escapeGlob(r.opts.WordPrefix)+"*"+phrase.CompoundSeparator+"*.svg")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return phrase.NewCompoundSet(), errors.Wrap(errors.ErrCodeInternal, err, "scan %s", r.opts.WordsDir)
	}
	sort.Strings(matches)

	keys := make([]string, 0, len(matches))
	for _, m := range matches {
		stem := strings.TrimSuffix(filepath.Base(m), ".svg")
		keys = append(keys, strings.TrimPrefix(stem, r.opts.WordPrefix))
	}
	keys = append(keys, r.overrideCompounds()...)
	r.logger.Debug("discovered compounds", "dir", r.opts.WordsDir, "count", len(keys))
	return phrase.NewCompoundSet(keys...), nil
}

// overrideCompounds returns the hyphenated keys of multi-word overrides that
// resolve to an existing file, sorted.
func (r *Resolver) overrideCompounds() []string {
	var keys []string
	for phr := range r.opts.Overrides {
		words := strings.Fields(phr)
		if len(words) < 2 {
			continue
		}
		key := strings.Join(words, phrase.CompoundSeparator)
		if errors.ValidateAssetKey(key) != nil {
			continue
		}
		for _, path := range r.WordCandidates(key) {
			if fileExists(path) {
				keys = append(keys, key)
				break
			}
		}
	}
	sort.Strings(keys)
	return keys
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func escapeGlob(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '*', '?', '[', '\\':
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
