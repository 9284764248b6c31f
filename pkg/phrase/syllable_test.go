package phrase

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/matzehuels/kalamapona/pkg/errors"
)

func TestSyllables(t *testing.T) {
	a := DefaultAlphabet()

	tests := []struct {
		name string
		want []string
	}{
		{"Amatelasu", []string{"a", "ma", "te", "la", "su"}},
		{"Isukusima", []string{"i", "su", "ku", "si", "ma"}},
		{"", nil},
		{"Kanata", []string{"ka", "na", "ta"}},
		{"Pensin", []string{"pen", "sin"}},
		{"Anna", []string{"an", "na"}},
		{"Anu", []string{"a", "nu"}},
		{"Mun", []string{"mun"}},
		{"Ilon", []string{"i", "lon"}},
		{"Kt", []string{"k", "t"}},
		{"Rosa", []string{"o", "sa"}},
		{"Ba-Ma", []string{"a", "ma"}},
		{"AEIOU", []string{"a", "e", "i", "o", "u"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Syllables(tt.name)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Syllables(%q) mismatch (-want +got):\n%s", tt.name, diff)
			}
		})
	}
}

func TestSyllablesIdempotentWithoutDrops(t *testing.T) {
	a := DefaultAlphabet()
	for _, name := range []string{"Amatelasu", "Isukusima", "Pensin", "Kanata"} {
		first := a.Syllables(name)
		again := a.Syllables(strings.Join(first, ""))
		if diff := cmp.Diff(first, again); diff != "" {
			t.Errorf("re-parse of %q differs (-first +again):\n%s", name, diff)
		}
	}
}

func TestSyllableShape(t *testing.T) {
	a := DefaultAlphabet()
	for _, s := range a.Syllables("Amatelasu Isukusima Pensin Wawa Jolanta") {
		if n := len([]rune(s)); n < 1 || n > 3 {
			t.Errorf("syllable %q has length %d, want 1..3", s, n)
		}
	}
}

func TestAssetKey(t *testing.T) {
	a := DefaultAlphabet()
	tests := []struct {
		syllable string
		want     string
	}{
		{"ma", "ma"},
		{"a", "xa"},
		{"an", "xan"},
		{"mun", "mun"},
		{"n", "n"},
	}

	for _, tt := range tests {
		t.Run(tt.syllable, func(t *testing.T) {
			if got := a.AssetKey(tt.syllable); got != tt.want {
				t.Errorf("AssetKey(%q) = %q, want %q", tt.syllable, got, tt.want)
			}
		})
	}

	keys := a.AssetKeys([]string{"a", "ma"})
	if diff := cmp.Diff([]string{"xa", "ma"}, keys); diff != "" {
		t.Errorf("AssetKeys mismatch (-want +got):\n%s", diff)
	}
}

func TestAlphabetValidate(t *testing.T) {
	tests := []struct {
		name    string
		a       Alphabet
		wantErr bool
	}{
		{"default", DefaultAlphabet(), false},
		{"no consonants", Alphabet{Vowels: "aeiou", NullOnset: "x"}, true},
		{"no vowels", Alphabet{Consonants: "mn", NullOnset: "x"}, true},
		{"overlap", Alphabet{Consonants: "ma", Vowels: "a", NullOnset: "x"}, true},
		{"no marker", Alphabet{Consonants: "m", Vowels: "a"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.a.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidConfig)
			}
		})
	}
}
