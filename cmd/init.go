package cmd

import (
	"fmt"

	"sizelint/internal/config"
	"sizelint/internal/output"

	"github.com/spf13/cobra"
)

// initOptions 存放 init 命令的可配置参数。
type initOptions struct {
	force bool
}

// newInitCmd 创建 init 子命令，用于在当前目录生成默认配置文件。
// 示例：
//
//	sizelint init
//	sizelint init --force
func newInitCmd() *cobra.Command {
	options := initOptions{}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "在当前目录生成默认配置文件",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			path := config.DefaultConfigName + "." + config.DefaultConfigType
			if err := config.WriteDefault(path, options.force); err != nil {
				return err
			}
			output.Success(fmt.Sprintf("Created %s", path))
			output.Step("edit it to adjust limits and exclude rules, then run: sizelint scan .")
			return nil
		},
	}

	initCmd.Flags().BoolVar(&options.force, "force", false, "覆盖已存在的配置文件")

	return initCmd
}
