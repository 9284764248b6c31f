package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/kalamapona/pkg/config"
	"github.com/matzehuels/kalamapona/pkg/syllabary"
)

// sliceCommand creates the slice command for cutting a master syllable sheet.
func (c *CLI) sliceCommand() *cobra.Command {
	opts := syllabary.SliceOptions{
		OutputDir: config.DefaultSyllablesDir,
		Padding:   syllabary.DefaultPadding,
		Uniform:   true,
	}

	cmd := &cobra.Command{
		Use:   "slice <master.svg>",
		Short: "Cut a master syllable sheet into one SVG per syllable",
		Long: `Cut a master syllable sheet into one SVG per syllable.

Every top-level group with an id and a translate transform becomes
"sitelen kalama pona - <id>.svg". With --uniform (the default) all files
share the widest glyph's width so the compositor can center syllables in
equal slots.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			opts.Logger = logger
			prog := newProgress(logger)

			report, err := syllabary.Slice(args[0], opts)
			if err != nil {
				return err
			}

			prog.done(fmt.Sprintf("Sliced %s", args[0]))
			printSuccess("Wrote %d syllable(s) to %s", len(report.Paths), opts.OutputDir)
			if report.UniformWidth > 0 {
				printDetail("uniform width %.0f", report.UniformWidth)
			}
			for _, id := range report.Skipped {
				printWarning("skipped %q: no measurable content", id)
			}
			printNextStep("Add nasal variants", "kalamapona nasal "+opts.OutputDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.OutputDir, "output", "o", opts.OutputDir, "output directory")
	cmd.Flags().Float64Var(&opts.Padding, "padding", opts.Padding, "padding around each glyph")
	cmd.Flags().BoolVar(&opts.Uniform, "uniform", opts.Uniform, "give every syllable the same width")

	return cmd
}
