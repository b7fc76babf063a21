package commands

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func newHistoryCommand(opts *globalOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history [run-id]",
		Short: "List recent runs, or show the files of one run",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			svc := a.container.RunService()
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				run, err := svc.GetRun(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s  %s  合计 %s 元\n", run.ID, run.Dir, run.Total.StringFixed(2))
				w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "STATUS\tFILE\tNEW NAME\tAMOUNT\tERROR")
				for _, f := range run.Files {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", f.Status, f.Name, f.NewName, f.Amount, f.Error)
				}
				return w.Flush()
			}

			runs, err := svc.History(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(out, "no runs recorded")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSTARTED\tFOLDER\tSCANNED\tRENAMED\tFAILED\tTOTAL")
			for _, run := range runs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
					run.ID,
					run.StartedAt.Local().Format(time.DateTime),
					run.Dir,
					run.Scanned,
					run.Renamed,
					run.Failed,
					run.Total.StringFixed(2))
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of runs to list")

	return cmd
}
