package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/garyjia/fapiao-helper/internal/config"
	"github.com/garyjia/fapiao-helper/internal/renamer"
)

func newProcessCommand(opts *globalOptions) *cobra.Command {
	var verbose bool
	var asJSON bool
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "process <folder>",
		Short: "Rename every invoice PDF in a folder, then write the reimbursement report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(opts, dryRunOverride(cmd, dryRun))
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := a.container.RunService().Process(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}
			if verbose {
				printOutcomes(out, result.Files)
			}
			fmt.Fprintln(out, result.Summary())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "list the outcome of every PDF")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show planned renames without moving files or writing a report")

	return cmd
}

func printOutcomes(w io.Writer, files []renamer.FileOutcome) {
	for _, f := range files {
		switch f.Status {
		case renamer.StatusRenamed:
			fmt.Fprintf(w, "[renamed] %s -> %s\n", f.Name, f.NewName)
		case renamer.StatusPlanned:
			fmt.Fprintf(w, "[planned] %s -> %s\n", f.Name, f.NewName)
		case renamer.StatusSkipped:
			fmt.Fprintf(w, "[skipped] %s\n", f.Name)
		default:
			fmt.Fprintf(w, "[failed]  %s: %v\n", f.Name, f.Err)
		}
	}
	if len(files) > 0 {
		fmt.Fprintln(w)
	}
}

// dryRunOverride applies --dry-run on top of rename.dry_run when the flag is given.
func dryRunOverride(cmd *cobra.Command, dryRun bool) func(*config.Config) {
	return func(cfg *config.Config) {
		if cmd.Flags().Changed("dry-run") {
			cfg.Rename.DryRun = dryRun
		}
	}
}
