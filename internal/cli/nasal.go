package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/kalamapona/pkg/syllabary"
)

// nasalCommand creates the nasal command for deriving "-n" syllables.
func (c *CLI) nasalCommand() *cobra.Command {
	var opts syllabary.NasalOptions

	cmd := &cobra.Command{
		Use:   "nasal <dir>",
		Short: "Derive nasal (-n) syllable glyphs from an existing nasal glyph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			opts.Logger = logger
			prog := newProgress(logger)

			report, err := syllabary.NasalVariants(args[0], opts)
			if err != nil {
				return err
			}

			prog.done("Created nasal variants")
			printSuccess("Created %d nasal variant(s)", len(report.Created))
			if len(report.Skipped) > 0 {
				printInfo("%d syllable(s) already end in n", len(report.Skipped))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Source, "source", syllabary.DefaultNasalSource, "syllable whose glyph carries the nasal marker")
	cmd.Flags().StringVar(&opts.Label, "label", syllabary.DefaultNasalLabel, "inkscape:label of the marker path")

	return cmd
}
