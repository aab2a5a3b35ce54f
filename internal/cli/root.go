// Package cli provides the command-line interface for obsidian-brain.
package cli

import (
	"os"

	"github.com/raelum/obsidian-brain/internal/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
	quiet      bool
	noColor    bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "obsidian-brain",
	Short: "Archive checklist tasks into a dated History section",
	Long: `obsidian-brain archives checklist tasks inside structured plain-text
documents. It locates the task on a given line, marks it completed or
in-progress, and files it under a dated subsection of the document's
"# History" section, carrying along the ancestor bullets needed to keep
the entry unambiguous.

Archived entries merge into the day's existing nested list: shared
ancestors are reused, siblings append in archive order, and re-archiving
a task updates its earlier entry instead of duplicating it.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Configure logging based on flags
		logger := log.Default()

		if verbose {
			logger.SetLevel(log.LevelDebug)
		} else if quiet {
			logger.SetLevel(log.LevelWarn)
		}

		if noColor {
			logger.SetColorEnabled(false)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", ".obsidian-brain.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output (debug level)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress informational output (warnings and errors only)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable color output")
}

// GetConfigPath returns the config path from flags.
func GetConfigPath() string {
	return configPath
}
