package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/garyjia/fapiao-helper/internal/invoice"
)

const previewRunes = 500

func newExtractTextCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "extract-text <pdf>",
		Short: "Save a PDF's extracted text as a .txt file next to it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			dump, err := invoice.DumpText(a.container.TextSource(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if dump.Empty {
				fmt.Fprintln(out, "警告：未能从PDF中提取到任何文本内容")
			}
			fmt.Fprintf(out, "输入文件: %s\n", args[0])
			fmt.Fprintf(out, "输出文件: %s\n", dump.OutputPath)
			fmt.Fprintf(out, "文本长度: %d 字符\n", dump.Length())
			if dump.HasAmount {
				fmt.Fprintf(out, "识别金额: %s 元\n", dump.Amount.Raw)
			}

			rule := strings.Repeat("-", 50)
			fmt.Fprintf(out, "\n文本预览:\n%s\n%s\n%s\n", rule, dump.Preview(previewRunes), rule)
			return nil
		},
	}
}
