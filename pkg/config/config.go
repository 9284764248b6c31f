// Package config loads kalamapona settings from TOML.
//
// Every setting has a default, so a missing configuration file is not an
// error. A file only needs to name the values it changes:
//
//	spacing = 60
//
//	[assets]
//	words = "~/glyphs/sitelen-seli-kiwen"
//
//	[overrides]
//	"tomo sewi" = "Tomo_sewi_old.svg"
//
// Unknown keys are rejected so that typos do not silently fall back to
// defaults.
package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/kalamapona/pkg/errors"
	"github.com/matzehuels/kalamapona/pkg/phrase"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultTargetHeight is the canvas height every glyph is normalized to.
	DefaultTargetHeight = 1000.0

	// DefaultSpacing is the horizontal gap between placed glyphs.
	DefaultSpacing = 80.0

	// DefaultCartoucheInset is the syllable height relative to the frame.
	DefaultCartoucheInset = 0.8

	// DefaultOutputDir receives composed files.
	DefaultOutputDir = "output"

	// DefaultFill is the fill colour of every emitted path.
	DefaultFill = "#000000"

	// DefaultWordsDir holds the pre-rendered word glyphs.
	DefaultWordsDir = "sitelen_seli_kiwen_svgs"

	// DefaultSyllablesDir holds the pre-rendered syllable glyphs.
	DefaultSyllablesDir = "uniform_syllables"

	// DefaultCartouche is the three-part frame template.
	DefaultCartouche = "cartouche.svg"

	// DefaultWordPrefix prefixes word glyph file names.
	DefaultWordPrefix = "Sitelen seli kiwen - "

	// DefaultSyllablePrefix prefixes syllable glyph file names.
	DefaultSyllablePrefix = "sitelen kalama pona - "
)

// FileName is the project-local configuration file.
const FileName = "kalamapona.toml"

// DefaultOverrides maps phrases to historically irregular word glyph files.
func DefaultOverrides() map[string]string {
	return map[string]string{
		"tomo sewi": "Tomo_sewi_old.svg",
	}
}

// =============================================================================
// Config
// =============================================================================

// Config holds all compositor settings.
type Config struct {
	TargetHeight   float64           `toml:"target_height"`
	Spacing        float64           `toml:"spacing"`
	CartoucheInset float64           `toml:"cartouche_inset"`
	OutputDir      string            `toml:"output_dir"`
	Fill           string            `toml:"fill"`
	Alphabet       Alphabet          `toml:"alphabet"`
	Assets         Assets            `toml:"assets"`
	Overrides      map[string]string `toml:"overrides"`

	// Source is the file the configuration was read from, empty for defaults.
	Source string `toml:"-"`
}

// Alphabet is the [alphabet] table.
type Alphabet struct {
	Consonants string `toml:"consonants"`
	Vowels     string `toml:"vowels"`
	NullOnset  string `toml:"null_onset"`
}

// Phrase converts the table into the extractor's alphabet.
func (a Alphabet) Phrase() phrase.Alphabet {
	return phrase.Alphabet{Consonants: a.Consonants, Vowels: a.Vowels, NullOnset: a.NullOnset}
}

// Assets is the [assets] table.
type Assets struct {
	Words          string `toml:"words"`
	Syllables      string `toml:"syllables"`
	Cartouche      string `toml:"cartouche"`
	WordPrefix     string `toml:"word_prefix"`
	SyllablePrefix string `toml:"syllable_prefix"`
}

// Default returns the built-in configuration.
func Default() *Config {
	a := phrase.DefaultAlphabet()
	return &Config{
		TargetHeight:   DefaultTargetHeight,
		Spacing:        DefaultSpacing,
		CartoucheInset: DefaultCartoucheInset,
		OutputDir:      DefaultOutputDir,
		Fill:           DefaultFill,
		Alphabet:       Alphabet{Consonants: a.Consonants, Vowels: a.Vowels, NullOnset: a.NullOnset},
		Assets: Assets{
			Words:          DefaultWordsDir,
			Syllables:      DefaultSyllablesDir,
			Cartouche:      DefaultCartouche,
			WordPrefix:     DefaultWordPrefix,
			SyllablePrefix: DefaultSyllablePrefix,
		},
		Overrides: DefaultOverrides(),
	}
}

// Load reads the file at path over the defaults and validates the result.
// Keys the file leaves out keep their default values; a present but empty
// [overrides] table clears the default overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s does not exist", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	cfg, err := Parse(string(data))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	cfg.Source = path
	return cfg, nil
}

// Parse decodes TOML text over the defaults and validates the result.
func Parse(data string) (*Config, error) {
	cfg := Default()
	cfg.Overrides = nil

	md, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if !md.IsDefined("overrides") {
		cfg.Overrides = DefaultOverrides()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Resolve loads the configuration named by explicit, or the first file found
// among [SearchPaths], or the defaults. An explicit path must exist.
func Resolve(explicit string) (*Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	for _, p := range SearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Default(), nil
}

// SearchPaths lists the implicit configuration locations in lookup order:
// ./kalamapona.toml, then $XDG_CONFIG_HOME/kalamapona/config.toml (falling
// back to ~/.config).
func SearchPaths() []string {
	paths := []string{FileName}
	if dir := configHome(); dir != "" {
		paths = append(paths, filepath.Join(dir, "kalamapona", "config.toml"))
	}
	return paths
}

func configHome() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config")
}

// =============================================================================
// Validation
// =============================================================================

// Validate checks that the configuration can drive a compose run.
func (c *Config) Validate() error {
	if c.TargetHeight <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "target_height must be positive, got %v", c.TargetHeight)
	}
	if c.Spacing < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "spacing cannot be negative, got %v", c.Spacing)
	}
	if c.CartoucheInset <= 0 || c.CartoucheInset > 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "cartouche_inset must be in (0, 1], got %v", c.CartoucheInset)
	}
	if c.Fill == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "fill cannot be empty")
	}
	if c.OutputDir == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "output_dir cannot be empty")
	}
	if c.Assets.Words == "" || c.Assets.Syllables == "" || c.Assets.Cartouche == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "assets: words, syllables and cartouche are required")
	}
	if err := c.Alphabet.Phrase().Validate(); err != nil {
		return err
	}
	for k, v := range c.Overrides {
		if strings.TrimSpace(k) == "" || strings.TrimSpace(v) == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "overrides: empty entry %q = %q", k, v)
		}
	}
	return nil
}
