package cli

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/kalamapona/pkg/buildinfo"
	"github.com/matzehuels/kalamapona/pkg/config"
	"github.com/matzehuels/kalamapona/pkg/observability"
	"github.com/matzehuels/kalamapona/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "kalamapona"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Compose Toki Pona phrases in sitelen kalama pona",
		Long: `kalamapona writes a Toki Pona phrase as one SVG: each word becomes its
sitelen seli kiwen glyph and a trailing proper name is spelled with
sitelen kalama pona syllables inside a stretched cartouche.`,
		Version:      buildinfo.Read().Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			observability.SetComposeHooks(logHooks{logger: c.Logger})
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.composeCommand())
	root.AddCommand(c.syllablesCommand())
	root.AddCommand(c.sliceCommand())
	root.AddCommand(c.nasalCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Configuration
// =============================================================================

// configFlags are the flags that override configuration file values.
type configFlags struct {
	path      string
	words     string
	syllables string
	cartouche string
	output    string
	fill      string
	spacing   float64
	height    float64
}

func (f *configFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.path, "config", "", "config file (default: ./kalamapona.toml or ~/.config/kalamapona/config.toml)")
	flags.StringVar(&f.words, "words", "", "word glyph directory")
	flags.StringVar(&f.syllables, "syllables", "", "syllable glyph directory")
	flags.StringVar(&f.cartouche, "cartouche", "", "cartouche template file")
	flags.StringVar(&f.fill, "fill", "", "glyph fill color")
	flags.Float64Var(&f.spacing, "spacing", config.DefaultSpacing, "gap between glyphs in output units")
	flags.Float64Var(&f.height, "height", config.DefaultTargetHeight, "canvas height in output units")
}

// load resolves the configuration file and applies the flags the user set.
func (f *configFlags) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Resolve(f.path)
	if err != nil {
		return nil, err
	}
	changed := cmd.Flags().Changed

	if changed("words") {
		cfg.Assets.Words = f.words
	}
	if changed("syllables") {
		cfg.Assets.Syllables = f.syllables
	}
	if changed("cartouche") {
		cfg.Assets.Cartouche = f.cartouche
	}
	if changed("fill") {
		cfg.Fill = f.fill
	}
	if changed("spacing") {
		cfg.Spacing = f.spacing
	}
	if changed("height") {
		cfg.TargetHeight = f.height
	}
	if changed("output") {
		cfg.OutputDir = f.output
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return pipeline.DefaultFormats
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// joinPhrase joins positional arguments into one phrase.
func joinPhrase(args []string) string {
	return strings.Join(args, " ")
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
