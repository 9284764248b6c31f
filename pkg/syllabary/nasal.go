package syllabary

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/kalamapona/pkg/errors"
	"github.com/matzehuels/kalamapona/pkg/svgdoc"
)

const (
	// DefaultNasalSource is the syllable whose glyph carries the marker.
	DefaultNasalSource = "lun"

	// DefaultNasalLabel is the inkscape:label of the marker path.
	DefaultNasalLabel = "nasal"
)

// NasalOptions configures [NasalVariants].
type NasalOptions struct {
	Source string      // syllable key holding the marker; empty means DefaultNasalSource
	Label  string      // marker label; empty means DefaultNasalLabel
	Prefix string      // file name prefix; empty means DefaultPrefix
	Logger *log.Logger // nil means log.Default()
}

func (o NasalOptions) withDefaults() NasalOptions {
	if o.Source == "" {
		o.Source = DefaultNasalSource
	}
	if o.Label == "" {
		o.Label = DefaultNasalLabel
	}
	if o.Prefix == "" {
		o.Prefix = DefaultPrefix
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	return o
}

// NasalReport summarizes a [NasalVariants] run.
type NasalReport struct {
	Created []string // keys of the written variants, e.g. "man"
	Skipped []string // keys that already end in the nasal
}

// NasalVariants writes a "<key>n" glyph next to every syllable glyph in dir
// by appending a copy of the nasal marker found in the source glyph.
// Syllables that already end in "n" get no variant.
func NasalVariants(dir string, opts NasalOptions) (*NasalReport, error) {
	opts = opts.withDefaults()

	sourcePath := filepath.Join(dir, opts.Prefix+opts.Source+".svg")
	src, err := svgdoc.ParseFile(sourcePath)
	if err != nil {
		return nil, err
	}
	marker := src.Find(func(n *svgdoc.Node) bool {
		return n.Is("path") && n.AttrValue("inkscape:label") == opts.Label
	})
	if marker == nil {
		return nil, errors.New(errors.ErrCodeInvalidAsset, "%s has no path labeled %q", sourcePath, opts.Label)
	}

	keys, err := syllableKeys(dir, opts.Prefix)
	if err != nil {
		return nil, err
	}

	report := &NasalReport{}
	for _, key := range keys {
		if key == opts.Source {
			continue
		}
		if strings.HasSuffix(key, "n") {
			report.Skipped = append(report.Skipped, key)
			continue
		}

		root, err := svgdoc.ParseFile(filepath.Join(dir, opts.Prefix+key+".svg"))
		if err != nil {
			return report, err
		}

		variant := key + "n"
		name := opts.Prefix + variant + ".svg"
		root.Append(marker.Clone())
		if _, ok := root.Get("xmlns:inkscape"); !ok {
			root.Set("xmlns:inkscape", svgdoc.NamespaceInkscape)
		}
		for _, nv := range root.FindAll("namedview") {
			nv.Set("sodipodi:docname", name)
		}

		if err := svgdoc.WriteFile(filepath.Join(dir, name), root); err != nil {
			return report, err
		}
		opts.Logger.Debug("wrote nasal variant", "from", key, "to", variant)
		report.Created = append(report.Created, variant)
	}
	return report, nil
}

// syllableKeys lists the keys of the syllable files in dir, sorted.
func syllableKeys(dir, prefix string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "syllables directory %s not found", dir)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read %s", dir)
	}
	var keys []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ".svg") {
			continue
		}
		keys = append(keys, strings.TrimSuffix(strings.TrimPrefix(name, prefix), ".svg"))
	}
	sort.Strings(keys)
	return keys, nil
}
