// Package cmd 提供 sizelint 的命令行入口与子命令编排。
package cmd

import (
	"sizelint/internal/languages"

	"github.com/spf13/cobra"
)

// Execute 组装根命令并执行。
// version 参数由 main 包注入，便于在 CI/CD 中打包不同版本。
func Execute(version string) error {
	registry := languages.NewRegistry()
	rootCmd := newRootCmd(version, registry)
	return rootCmd.Execute()
}

// newRootCmd 创建根命令并注册全部子命令。
func newRootCmd(version string, registry *languages.Registry) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sizelint",
		Short: "多语言代码规模合规检查工具",
		Long: "sizelint 按语言画像对源码逐行分类（code/comment/blank），\n" +
			"统计文件与函数的代码行数并按阈值生成排名与合规报告，\n" +
			"支持并发扫描、排除规则与 JSON 导出。",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newVersionCmd(version))
	rootCmd.AddCommand(newLanguageCmd(registry))
	rootCmd.AddCommand(newScanCmd(registry))
	rootCmd.AddCommand(newInitCmd())

	return rootCmd
}
