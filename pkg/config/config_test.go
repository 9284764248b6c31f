package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/kalamapona/pkg/errors"
	"github.com/matzehuels/kalamapona/pkg/phrase"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() error: %v", err)
	}
	if cfg.TargetHeight != 1000 || cfg.Spacing != 80 || cfg.CartoucheInset != 0.8 {
		t.Errorf("geometry defaults = %v/%v/%v", cfg.TargetHeight, cfg.Spacing, cfg.CartoucheInset)
	}
	if diff := cmp.Diff(phrase.DefaultAlphabet(), cfg.Alphabet.Phrase()); diff != "" {
		t.Errorf("alphabet mismatch (-want +got):\n%s", diff)
	}
	if cfg.Overrides["tomo sewi"] != "Tomo_sewi_old.svg" {
		t.Errorf("Overrides = %v", cfg.Overrides)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, c *Config)
	}{
		{
			name:  "empty keeps defaults",
			input: "",
			check: func(t *testing.T, c *Config) {
				if diff := cmp.Diff(Default(), c); diff != "" {
					t.Errorf("mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name:  "partial top level",
			input: "spacing = 60\nfill = \"#333\"\n",
			check: func(t *testing.T, c *Config) {
				if c.Spacing != 60 || c.Fill != "#333" {
					t.Errorf("got spacing %v fill %q", c.Spacing, c.Fill)
				}
				if c.TargetHeight != DefaultTargetHeight {
					t.Errorf("TargetHeight = %v, want default", c.TargetHeight)
				}
			},
		},
		{
			name:  "partial tables",
			input: "[assets]\nwords = \"glyphs\"\n[alphabet]\nnull_onset = \"q\"\n",
			check: func(t *testing.T, c *Config) {
				if c.Assets.Words != "glyphs" || c.Assets.Syllables != DefaultSyllablesDir {
					t.Errorf("Assets = %+v", c.Assets)
				}
				if c.Alphabet.NullOnset != "q" || c.Alphabet.Vowels != phrase.DefaultVowels {
					t.Errorf("Alphabet = %+v", c.Alphabet)
				}
			},
		},
		{
			name:  "overrides replace defaults",
			input: "[overrides]\n\"jan pona\" = \"Jan_pona_alt.svg\"\n",
			check: func(t *testing.T, c *Config) {
				want := map[string]string{"jan pona": "Jan_pona_alt.svg"}
				if diff := cmp.Diff(want, c.Overrides); diff != "" {
					t.Errorf("Overrides mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name:  "empty overrides table clears defaults",
			input: "[overrides]\n",
			check: func(t *testing.T, c *Config) {
				if len(c.Overrides) != 0 {
					t.Errorf("Overrides = %v, want empty", c.Overrides)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			tt.check(t, c)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{"unknown key", "spacingg = 1", "spacingg"},
		{"unknown table key", "[assets]\nfonts = \"x\"", "assets.fonts"},
		{"bad toml", "spacing = ", ""},
		{"wrong type", "spacing = \"wide\"", ""},
		{"zero height", "target_height = 0", "target_height"},
		{"negative spacing", "spacing = -1", "spacing"},
		{"inset too large", "cartouche_inset = 1.5", "cartouche_inset"},
		{"empty fill", "fill = \"\"", "fill"},
		{"overlapping alphabet", "[alphabet]\nvowels = \"aeioum\"", "overlap"},
		{"empty override", "[overrides]\n\"jan\" = \"\"", "overrides"},
		{"missing words dir", "[assets]\nwords = \"\"", "assets"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Fatalf("Parse() error = %v, want %v", err, errors.ErrCodeInvalidConfig)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "k.toml")
	if err := os.WriteFile(path, []byte("spacing = 40\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Spacing != 40 || cfg.Source != path {
		t.Errorf("Load() = spacing %v source %q", cfg.Spacing, cfg.Source)
	}

	_, err = Load(filepath.Join(dir, "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) error = %v, want %v", err, errors.ErrCodeFileNotFound)
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))

	cfg, err := Resolve("")
	if err != nil {
		t.Fatalf("Resolve() without files error: %v", err)
	}
	if cfg.Source != "" {
		t.Errorf("Source = %q, want defaults", cfg.Source)
	}

	xdg := filepath.Join(dir, "xdg", "kalamapona", "config.toml")
	if err := os.MkdirAll(filepath.Dir(xdg), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(xdg, []byte("spacing = 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Resolve("")
	if err != nil || cfg.Spacing != 10 {
		t.Fatalf("Resolve() = %+v, %v; want XDG config", cfg, err)
	}

	if err := os.WriteFile(FileName, []byte("spacing = 20\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Resolve("")
	if err != nil || cfg.Spacing != 20 {
		t.Fatalf("Resolve() = %+v, %v; want local config first", cfg, err)
	}

	explicit := filepath.Join(dir, "explicit.toml")
	if err := os.WriteFile(explicit, []byte("spacing = 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Resolve(explicit)
	if err != nil || cfg.Spacing != 30 {
		t.Fatalf("Resolve(explicit) = %+v, %v", cfg, err)
	}

	if _, err := Resolve(filepath.Join(dir, "nope.toml")); err == nil {
		t.Error("Resolve(missing explicit) error = nil")
	}
}
