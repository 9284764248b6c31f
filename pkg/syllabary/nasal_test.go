package syllabary

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/kalamapona/pkg/errors"
	"github.com/matzehuels/kalamapona/pkg/svgdoc"
)

const lunGlyph = `<svg xmlns="http://www.w3.org/2000/svg" xmlns:inkscape="http://www.inkscape.org/namespaces/inkscape" viewBox="0 0 70 130">
  <g id="lu"><path d="M 0 0 H 10" /></g>
  <path inkscape:label="nasal" d="M 0 120 H 70" />
</svg>`

const maGlyph = `<svg xmlns="http://www.w3.org/2000/svg" xmlns:sodipodi="http://sodipodi.sourceforge.net/DTD/sodipodi-0.dtd" viewBox="0 0 70 130">
  <sodipodi:namedview id="base" sodipodi:docname="sitelen kalama pona - ma.svg" />
  <g id="ma"><path d="M 0 0 H 10" /></g>
</svg>`

func writeSyllables(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for key, content := range files {
		path := filepath.Join(dir, DefaultPrefix+key+".svg")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestNasalVariants(t *testing.T) {
	dir := writeSyllables(t, map[string]string{
		"lun": lunGlyph,
		"ma":  maGlyph,
		"xa":  maGlyph,
		"sin": maGlyph,
	})

	report, err := NasalVariants(dir, NasalOptions{Logger: quietLogger()})
	if err != nil {
		t.Fatalf("NasalVariants() error: %v", err)
	}
	if diff := cmp.Diff([]string{"man", "xan"}, report.Created); diff != "" {
		t.Errorf("Created (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"sin"}, report.Skipped); diff != "" {
		t.Errorf("Skipped (-want +got):\n%s", diff)
	}

	root, err := svgdoc.ParseFile(filepath.Join(dir, DefaultPrefix+"man.svg"))
	if err != nil {
		t.Fatal(err)
	}
	marker := root.Find(func(n *svgdoc.Node) bool {
		return n.Is("path") && n.AttrValue("inkscape:label") == "nasal"
	})
	if marker == nil || marker.AttrValue("d") != "M 0 120 H 70" {
		t.Errorf("variant should carry the nasal marker, got %+v", marker)
	}
	nv := root.Find(func(n *svgdoc.Node) bool { return n.Is("namedview") })
	if got := nv.AttrValue("sodipodi:docname"); got != DefaultPrefix+"man.svg" {
		t.Errorf("docname = %q, want the variant's file name", got)
	}

	// The base glyph is not modified.
	data, err := os.ReadFile(filepath.Join(dir, DefaultPrefix+"ma.svg"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "nasal") {
		t.Error("base glyph should not gain the marker")
	}
}

func TestNasalVariantsErrors(t *testing.T) {
	t.Run("missing source", func(t *testing.T) {
		dir := writeSyllables(t, map[string]string{"ma": maGlyph})
		_, err := NasalVariants(dir, NasalOptions{Logger: quietLogger()})
		if !errors.Is(err, errors.ErrCodeFileNotFound) {
			t.Errorf("error = %v, want FILE_NOT_FOUND", err)
		}
	})

	t.Run("no marker", func(t *testing.T) {
		dir := writeSyllables(t, map[string]string{"lun": maGlyph})
		_, err := NasalVariants(dir, NasalOptions{Logger: quietLogger()})
		if !errors.Is(err, errors.ErrCodeInvalidAsset) {
			t.Errorf("error = %v, want INVALID_ASSET", err)
		}
	})

	t.Run("custom label", func(t *testing.T) {
		dir := writeSyllables(t, map[string]string{"lun": lunGlyph, "ma": maGlyph})
		_, err := NasalVariants(dir, NasalOptions{Label: "tail", Logger: quietLogger()})
		if !errors.Is(err, errors.ErrCodeInvalidAsset) {
			t.Errorf("error = %v, want INVALID_ASSET for an absent label", err)
		}
	})
}
