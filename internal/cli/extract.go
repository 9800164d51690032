package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sprite-ai/revmark/internal/diff"
	"github.com/sprite-ai/revmark/internal/parse"
)

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract the diff and code blocks from a report",
	Long: `Extract machine-consumable artifacts from a report: the embedded
unified diff and the per-file fenced code blocks.

Examples:
  revmark extract review.md              # list recovered blocks
  revmark extract review.md --diff       # print the diff to stdout
  revmark extract review.md --out fixes  # write code blocks into fixes/`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().Bool("diff", false, "print the recovered diff")
	extractCmd.Flags().StringP("out", "o", "", "write code blocks into this directory")
}

func runExtract(cmd *cobra.Command, args []string) error {
	text, err := readReport(args)
	if err != nil {
		return err
	}

	doc := parse.Parse(text)

	printDiff, _ := cmd.Flags().GetBool("diff")
	if printDiff {
		if doc.DiffContent == "" {
			fmt.Fprintln(os.Stderr, "No diff found in report.")
			return nil
		}
		if ds, err := diff.Parse(doc.DiffContent); err != nil {
			log.Warn().Err(err).Msg("recovered diff is not a valid unified diff")
		} else {
			log.Debug().Str("stat", ds.Summary()).Msg("diff verified")
		}
		fmt.Println(doc.DiffContent)
		return nil
	}

	outDir, _ := cmd.Flags().GetString("out")
	if outDir != "" {
		return writeBlocks(doc.CodeBlocks, outDir)
	}

	if len(doc.CodeBlocks) == 0 && doc.DiffContent == "" {
		fmt.Println("No code blocks or diff found.")
		return nil
	}
	if doc.DiffContent != "" {
		fmt.Printf("diff (%d bytes)\n", len(doc.DiffContent))
	}
	for _, name := range sortedBlockNames(doc.CodeBlocks) {
		fmt.Printf("%s (%d bytes)\n", name, len(doc.CodeBlocks[name]))
	}
	return nil
}

func sortedBlockNames(blocks map[string]string) []string {
	names := make([]string, 0, len(blocks))
	for name := range blocks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func writeBlocks(blocks map[string]string, dir string) error {
	if len(blocks) == 0 {
		fmt.Println("No code blocks to write.")
		return nil
	}

	for _, name := range sortedBlockNames(blocks) {
		source := blocks[name]
		// Block names can carry relative paths from filename comments;
		// keep them under dir.
		path := filepath.Join(dir, filepath.Clean("/"+name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
		if err := os.WriteFile(path, []byte(source+"\n"), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", path)
	}
	return nil
}
