package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"sizelint/internal/languages"

	"github.com/spf13/cobra"
)

// newLanguageCmd 创建 language 子命令。
// 命令用于展示内置语言画像：文件后缀、注释标记与函数体形态。
func newLanguageCmd(registry *languages.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "language",
		Short: "展示支持的语言及其注释/函数体规则",
		RunE: func(cmd *cobra.Command, _ []string) error {
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			if _, err := fmt.Fprintln(writer, "LANGUAGE\tEXTENSIONS\tLINE\tBLOCK\tBODY"); err != nil {
				return err
			}

			for _, profile := range registry.Languages() {
				block := "-"
				if profile.BlockCommentOpen != "" {
					block = profile.BlockCommentOpen + " " + profile.BlockCommentClose
				}
				if _, err := fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n",
					profile.Name,
					strings.Join(registry.ExtensionsForLanguage(profile.Name), ", "),
					strings.Join(profile.LineCommentMarkers, " "),
					block,
					profile.Body,
				); err != nil {
					return err
				}
			}

			return writer.Flush()
		},
	}
}
