package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/kalamapona/pkg/assets"
	"github.com/matzehuels/kalamapona/pkg/pipeline"
)

// syllablesCommand creates the syllables command, a dry run of the analysis
// stage that shows which glyph each part of the phrase maps to.
func (c *CLI) syllablesCommand() *cobra.Command {
	var flags configFlags

	cmd := &cobra.Command{
		Use:   "syllables <phrase...>",
		Short: "Show words, compounds and name syllables without rendering",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load(cmd)
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())
			runner := pipeline.NewRunner(cfg, logger)

			compounds, err := runner.Resolver.Compounds()
			if err != nil {
				logger.Warn("compound glyphs unavailable", "err", err)
			}
			a := pipeline.Analyze(joinPhrase(args), compounds, cfg.Alphabet.Phrase())

			printKeyValue("words", strings.Join(a.Phrase.Words, " "))
			printKeyValue("matched", strings.Join(a.Words, " "))
			if a.Phrase.HasName() {
				printKeyValue("name", a.Phrase.Name)
			}
			printNewline()
			fmt.Println(glyphTable(runner.Resolver, a))
			if !a.HasName() && a.Phrase.HasName() {
				printWarning("name %q has no syllables in the alphabet", a.Phrase.Name)
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

// glyphTable lists every glyph the phrase needs and the file it resolves to.
func glyphTable(r *assets.Resolver, a pipeline.Analysis) *table.Table {
	rows := make([][]string, 0, len(a.Words)+len(a.Keys))
	for _, w := range a.Words {
		rows = append(rows, []string{assets.SourceWord, w, glyphFile(r.WordCandidates(w))})
	}
	for i, k := range a.Keys {
		rows = append(rows, []string{assets.SourceSyllable, a.Syllables[i] + " → " + k, glyphFile([]string{r.SyllablePath(k)})})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("KIND", "GLYPH", "FILE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return StyleTitle.Padding(0, 1)
			}
			if col == 1 {
				return StyleHighlight.Padding(0, 1)
			}
			return StyleValue.Padding(0, 1)
		})
}

// glyphFile returns the first existing candidate, or a dim marker.
func glyphFile(candidates []string) string {
	for _, p := range candidates {
		if fileExists(p) {
			return p
		}
	}
	return StyleDim.Render("(missing)")
}
