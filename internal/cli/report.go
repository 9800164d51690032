package cli

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sprite-ai/revmark/internal/parse"
	"github.com/sprite-ai/revmark/internal/render"
)

var reportCmd = &cobra.Command{
	Use:   "report [file]",
	Short: "Parse a review report and print the structured document",
	Long: `Parse an AI-generated markdown review report into its structured form
and print it.

Examples:
  revmark report review.md               # parse a saved report
  revmark report review.md -f json       # machine-readable output
  some-reviewer | revmark report -       # pipe a report in`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringP("format", "f", "", "output format: text, json, markdown")
}

func runReport(cmd *cobra.Command, args []string) error {
	text, err := readReport(args)
	if err != nil {
		return err
	}

	doc := parse.Parse(text)
	log.Debug().
		Int("issues", len(doc.Issues)).
		Int("code_blocks", len(doc.CodeBlocks)).
		Bool("has_diff", doc.DiffContent != "").
		Msg("report parsed")

	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		format = cfg.Output.Format
	}

	w, err := render.New(format, render.Options{
		Color:          cfg.Output.Color,
		HighlightStyle: cfg.Output.HighlightStyle,
	})
	if err != nil {
		return err
	}
	return w.Write(os.Stdout, doc)
}
