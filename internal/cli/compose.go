package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/kalamapona/pkg/config"
	"github.com/matzehuels/kalamapona/pkg/errors"
	"github.com/matzehuels/kalamapona/pkg/pipeline"
	"github.com/matzehuels/kalamapona/pkg/render"
)

// composeOpts holds the command-line flags for the compose command.
type composeOpts struct {
	config  configFlags
	formats string
	strict  bool // fail instead of skipping missing glyphs
	sources bool // print provenance for every placed glyph
}

// composeCommand creates the compose command.
func (c *CLI) composeCommand() *cobra.Command {
	var opts composeOpts

	cmd := &cobra.Command{
		Use:   "compose <phrase...>",
		Short: "Render a phrase as sitelen seli kiwen with a sitelen kalama pona name",
		Long: `Render a Toki Pona phrase to SVG.

Lowercase words become word glyphs. Capitalized tokens at the end form a
proper name, spelled syllable by syllable inside a cartouche. Arguments are
joined with spaces, so quoting the phrase is optional.`,
		Example: `  kalamapona compose jan sewi Amatelasu
  kalamapona compose "ma Nijon" -f svg,png -o out`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config.load(cmd)
			if err != nil {
				return err
			}
			formats := parseFormats(opts.formats)
			if err := pipeline.ValidateFormats(formats); err != nil {
				return err
			}
			return c.runCompose(cmd.Context(), cfg, joinPhrase(args), formats, opts)
		},
	}

	opts.config.register(cmd)
	cmd.Flags().StringVarP(&opts.config.output, "output", "o", config.DefaultOutputDir, "output directory")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg (default), json, png, pdf (comma-separated)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail when any glyph is missing")
	cmd.Flags().BoolVar(&opts.sources, "sources", false, "list the source of every placed glyph")

	return cmd
}

func (c *CLI) runCompose(ctx context.Context, cfg *config.Config, text string, formats []string, opts composeOpts) error {
	logger := loggerFromContext(ctx)
	if cfg.Source != "" {
		logger.Debug("using config", "path", cfg.Source)
	}
	if err := errors.ValidateOutputName(text); err != nil {
		return err
	}

	prog := newProgress(logger)
	runner := pipeline.NewRunner(cfg, logger)

	res, err := runner.Compose(ctx, text)
	if err != nil {
		return err
	}
	for _, m := range res.Missing {
		printWarning("no %s glyph for %q", m.Kind, m.Key)
	}
	if opts.strict && !res.Complete() {
		return errors.New(errors.ErrCodeAssetNotFound, "%d glyph(s) missing", len(res.Missing))
	}

	if needsConverter(formats) && !render.Available() {
		return errors.New(errors.ErrCodeInvalidFormat, "png and pdf output need rsvg-convert on PATH")
	}

	var paths []string
	if needsConverter(formats) {
		spin := newSpinnerWithContext(ctx, "Converting with rsvg-convert...")
		spin.Start()
		paths, err = runner.Write(ctx, res, cfg.OutputDir, formats)
		if err != nil {
			if ctx.Err() != nil {
				spin.Stop()
				return ctx.Err()
			}
			spin.StopWithError("Conversion failed")
			return err
		}
		spin.StopWithSuccess("Converted")
	} else {
		paths, err = runner.Write(ctx, res, cfg.OutputDir, formats)
		if err != nil {
			return err
		}
	}

	prog.done(fmt.Sprintf("Composed %q", text))
	printSuccess("Wrote %d file(s)", len(paths))
	for _, p := range paths {
		printFile(p)
	}
	printStats(res.Stats.Words, res.Stats.Syllables, res.Stats.Missing)

	if opts.sources {
		printNewline()
		for _, s := range res.Sources {
			printKeyValue(s.Key, StyleLink.Render(s.URL))
		}
	}
	return nil
}

func needsConverter(formats []string) bool {
	for _, f := range formats {
		if f == pipeline.FormatPNG || f == pipeline.FormatPDF {
			return true
		}
	}
	return false
}
