// Package cli wires up the revmark command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sprite-ai/revmark/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "revmark",
	Short: "Extract structured findings from AI-generated review reports",
	Long: `revmark parses free-form, AI-generated markdown review reports into
structured documents: typed issues with severity and category, document
metadata, the embedded diff, and per-file code blocks.

The parser is best-effort by design: it never fails on malformed input,
it just recovers less.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}

		configPath, _ := cmd.Flags().GetString("config")
		c, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = c

		if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
			cfg.Output.Color = false
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "path to config file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable ANSI colors")

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(issuesCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// readReport loads the report from a file argument, or stdin when the
// argument is "-" or absent.
func readReport(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := os.ReadFile("/dev/stdin")
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading report: %w", err)
	}
	return string(data), nil
}
