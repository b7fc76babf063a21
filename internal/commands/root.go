package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/garyjia/fapiao-helper/internal/buildinfo"
)

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	configPath string
	logLevel   string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "fapiao",
		Short:   "Tag invoice PDFs with their amount and build a reimbursement report",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(
		newProcessCommand(opts),
		newRenameCommand(opts),
		newReportCommand(opts),
		newServeCommand(opts),
		newExtractTextCommand(opts),
		newHistoryCommand(opts),
	)

	return rootCmd
}
