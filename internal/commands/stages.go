package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRenameCommand(opts *globalOptions) *cobra.Command {
	var verbose bool
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "rename <folder>",
		Short: "Only tag the folder's PDFs with their amount",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(opts, dryRunOverride(cmd, dryRun))
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := a.container.RunService().Rename(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if verbose {
				printOutcomes(out, result.Files)
			}
			fmt.Fprintf(out, "PDF 扫描数量：%d\n成功改名：%d\n", result.Scanned, result.Renamed)
			if result.DryRun {
				fmt.Fprintf(out, "预计改名：%d\n", result.Planned)
			}
			fmt.Fprintf(out, "失败/跳过：%d\n", result.Failed)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "list the outcome of every PDF")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show planned renames without moving files")

	return cmd
}

func newReportCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "report <folder>",
		Short: "Only build the report from already tagged files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := a.container.RunService().Report(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "报表条目数：%d\n合计金额：%s 元\n报表文件：%s\n",
				result.Count, result.Total.StringFixed(2), result.Path)
			return nil
		},
	}
}
