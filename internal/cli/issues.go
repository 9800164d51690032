package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sprite-ai/revmark/internal/model"
	"github.com/sprite-ai/revmark/internal/parse"
)

var issuesCmd = &cobra.Command{
	Use:   "issues [file]",
	Short: "List recovered issues, filtered and ready for CI",
	Long: `List the issues recovered from a report, optionally filtered by
severity, category, or file.

Exit codes:
  0 — nothing at medium severity or above
  1 — medium issues present
  2 — high or critical issues present`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIssues,
}

func init() {
	issuesCmd.Flags().String("min-severity", "", "lowest severity to show (critical, high, medium, low, info)")
	issuesCmd.Flags().String("category", "", "only show one category")
	issuesCmd.Flags().String("file", "", "only show issues in one file")
}

func runIssues(cmd *cobra.Command, args []string) error {
	text, err := readReport(args)
	if err != nil {
		return err
	}

	doc := parse.Parse(text)

	minName, _ := cmd.Flags().GetString("min-severity")
	if minName == "" {
		minName = cfg.Issues.MinSeverity
	}
	minSev, err := severityByName(minName)
	if err != nil {
		return err
	}

	category, _ := cmd.Flags().GetString("category")
	fileFilter, _ := cmd.Flags().GetString("file")

	shown := 0
	for _, iss := range doc.Issues {
		if iss.Severity.Rank() > minSev.Rank() {
			continue
		}
		if category != "" && iss.Category.String() != strings.ToLower(category) {
			continue
		}
		if fileFilter != "" && iss.File != fileFilter {
			continue
		}
		fmt.Printf("%-8s %-13s %-20s %s\n", iss.Severity, iss.Category, iss.Location(), iss.Title)
		shown++
	}

	if shown == 0 {
		fmt.Println("No matching issues.")
	}

	// CI signal reflects everything recovered, not just what the
	// filters let through.
	switch {
	case worstAtMost(doc, model.SeverityHigh):
		os.Exit(2)
	case worstAtMost(doc, model.SeverityMedium):
		os.Exit(1)
	}
	return nil
}

func worstAtMost(doc *model.Document, sev model.Severity) bool {
	return len(doc.Issues) > 0 && doc.MaxSeverity().Rank() <= sev.Rank()
}

func severityByName(name string) (model.Severity, error) {
	for _, sev := range model.Severities {
		if sev.String() == strings.ToLower(name) {
			return sev, nil
		}
	}
	return 0, fmt.Errorf("unknown severity %q", name)
}
