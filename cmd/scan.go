package cmd

import (
	"errors"
	"fmt"
	"strings"

	"sizelint/internal/config"
	"sizelint/internal/languages"
	"sizelint/internal/output"
	"sizelint/internal/report"
	"sizelint/internal/scanner"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// ErrNonCompliant 是扫描发现超标项时返回的哨兵错误。
// 报告正文已经给出了全部细节，main 包只需把它映射成非零退出码。
var ErrNonCompliant = errors.New("code metrics violations found")

// scanOptions 存放 scan 命令的可配置参数。
type scanOptions struct {
	configFile   string
	format       string
	outputPath   string
	maxFileLines int64
	maxFuncLines int64
	top          int
	workers      int
	exclude      []string
	noColor      bool
	verbose      bool
}

// newScanCmd 创建 scan 子命令。
// 示例：
//
//	sizelint scan .
//	sizelint scan ./lib ./src --format json --output report.json
func newScanCmd(registry *languages.Registry) *cobra.Command {
	defaults := config.Default()
	options := scanOptions{}

	scanCmd := &cobra.Command{
		Use:   "scan [paths...]",
		Short: "扫描目录或文件并生成代码规模合规报告",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.Load(options.configFile)
			if err != nil {
				return err
			}
			mergeFlagOverrides(cmd, &options, conf)

			conf.Format = strings.ToLower(strings.TrimSpace(conf.Format))
			if err := conf.Validate(); err != nil {
				return err
			}

			if options.noColor {
				color.NoColor = true
				output.SetNoColor(true)
			}
			output.SetVerbose(options.verbose)

			return runScan(cmd, registry, conf, args)
		},
	}

	registerScanFlags(scanCmd, &options, defaults)

	return scanCmd
}

// registerScanFlags 注册 scan 命令的全部 flag 并与 options 绑定。
func registerScanFlags(scanCmd *cobra.Command, options *scanOptions, defaults config.Config) {
	flags := scanCmd.Flags()
	flags.StringVar(&options.configFile, "config", "", "配置文件路径，默认查找当前目录下的 .sizelint.yaml")
	flags.StringVar(&options.format, "format", defaults.Format, "输出格式: text 或 json")
	flags.StringVar(&options.outputPath, "output", defaults.Output, "报告导出文件路径，留空则只打印到终端")
	flags.Int64Var(&options.maxFileLines, "max-file-lines", defaults.MaxFileLines, "单文件代码行数上限")
	flags.Int64Var(&options.maxFuncLines, "max-func-lines", defaults.MaxFuncLines, "单函数代码行数上限")
	flags.IntVar(&options.top, "top", defaults.Top, "排名列表长度")
	flags.IntVar(&options.workers, "workers", defaults.Workers, "并发 worker 数量，0 表示按 CPU 核数")
	flags.StringArrayVar(&options.exclude, "exclude", nil, "排除规则（可重复），显式指定后整体替换内置规则")
	flags.BoolVar(&options.noColor, "no-color", false, "禁用彩色输出")
	flags.BoolVar(&options.verbose, "verbose", false, "输出更详细的过程信息")
}

// mergeFlagOverrides 把显式传入的命令行参数覆盖到已加载配置上。
// 只有被用户设置过的 flag 才参与覆盖，
// 维持 flag > 配置文件 > 环境变量 > 默认值 的优先级。
func mergeFlagOverrides(cmd *cobra.Command, options *scanOptions, conf *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("format") {
		conf.Format = options.format
	}
	if flags.Changed("output") {
		conf.Output = options.outputPath
	}
	if flags.Changed("max-file-lines") {
		conf.MaxFileLines = options.maxFileLines
	}
	if flags.Changed("max-func-lines") {
		conf.MaxFuncLines = options.maxFuncLines
	}
	if flags.Changed("top") {
		conf.Top = options.top
	}
	if flags.Changed("workers") {
		conf.Workers = options.workers
	}
	if flags.Changed("exclude") {
		conf.Exclude = options.exclude
	}
}

// runScan 执行一次扫描并按配置渲染结果。
// text 模式在报告前后输出人机状态行；json 模式保持标准输出只含
// JSON 本体，导出提示改走标准错误。
func runScan(cmd *cobra.Command, registry *languages.Registry, conf *config.Config, roots []string) error {
	service := scanner.NewService(registry, scanner.Options{
		Limits:  conf.Limits(),
		TopN:    conf.Top,
		Workers: conf.Workers,
		Exclude: conf.Exclude,
	})

	if conf.Format == config.FormatText {
		output.Scanning(fmt.Sprintf("Verifying code metrics for %s", strings.Join(roots, ", ")))
		output.Verbose(fmt.Sprintf("limits: file %d, function %d; top %d; %d exclude rule(s)",
			conf.MaxFileLines, conf.MaxFuncLines, conf.Top, len(conf.Exclude)))
	}

	summary, err := service.Scan(roots)
	if err != nil {
		return err
	}

	exportPath := strings.TrimSpace(conf.Output)

	switch conf.Format {
	case config.FormatJSON:
		if err := report.PrintJSON(cmd.OutOrStdout(), summary); err != nil {
			return err
		}
		if exportPath != "" {
			if err := report.WriteJSONFile(exportPath, summary); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "\nJSON exported to %s\n", exportPath)
		}
	default:
		if err := report.PrintText(cmd.OutOrStdout(), summary); err != nil {
			return err
		}
		if exportPath != "" {
			if err := report.WriteTextFile(exportPath, summary); err != nil {
				return err
			}
			output.Info(fmt.Sprintf("Report saved to %s", exportPath))
		}
	}

	if !summary.Compliant() {
		if conf.Format == config.FormatText {
			output.Error(fmt.Sprintf("FAILED: %d violation(s) found", summary.Total.Violations))
		}
		return ErrNonCompliant
	}
	if conf.Format == config.FormatText {
		output.Success("PASSED: all code metrics within limits")
	}
	return nil
}
