// Package config 负责 sizelint 的配置加载与校验。
// 配置来源按“默认值 < 配置文件 < 环境变量 < 命令行参数”逐层覆盖，
// 最后一层由命令层合并。
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"sizelint/internal/model"
	"sizelint/internal/scanner"
)

const (
	// DefaultConfigName 默认配置文件名（不含扩展名）。
	DefaultConfigName = ".sizelint"
	// DefaultConfigType 默认配置文件类型。
	DefaultConfigType = "yaml"
	// EnvPrefix 环境变量前缀，例如 SIZELINT_MAX_FILE_LINES。
	EnvPrefix = "SIZELINT"

	// FormatText 与 FormatJSON 是合法的报告格式取值。
	FormatText = "text"
	FormatJSON = "json"
)

// Config 汇集一次扫描的全部可配置项。
type Config struct {
	// MaxFileLines 单文件代码行数上限（排除上界）。
	MaxFileLines int64 `mapstructure:"max_file_lines" yaml:"max_file_lines"`
	// MaxFuncLines 单函数代码行数上限（排除上界）。
	MaxFuncLines int64 `mapstructure:"max_func_lines" yaml:"max_func_lines"`
	// Top 排行榜长度。
	Top int `mapstructure:"top" yaml:"top"`
	// Workers 并发 worker 数，0 表示按 CPU 核数自动决定。
	Workers int `mapstructure:"workers" yaml:"workers"`
	// Exclude 排除规则列表，一经设置就整体替换默认规则。
	Exclude []string `mapstructure:"exclude" yaml:"exclude"`
	// Format 报告格式（text 或 json）。
	Format string `mapstructure:"format" yaml:"format"`
	// Output 报告导出路径，空串表示只打印到标准输出。
	Output string `mapstructure:"output" yaml:"output"`
}

// Default 返回内置默认配置。
func Default() Config {
	return Config{
		MaxFileLines: model.DefaultMaxFileCodeLines,
		MaxFuncLines: model.DefaultMaxFunctionCodeLines,
		Top:          model.DefaultTopN,
		Workers:      0,
		Exclude:      scanner.DefaultExcludeRules(),
		Format:       FormatText,
		Output:       "",
	}
}

// Load 装配并校验配置。
// configFile 非空时强制使用该文件；为空时在当前目录查找 .sizelint.yaml，
// 找不到默认配置文件不算错误。
func Load(configFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType(DefaultConfigType)
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate 校验配置值的合法性。
func (c *Config) Validate() error {
	if c.MaxFileLines <= 0 {
		return fmt.Errorf("max_file_lines must be positive, got %d", c.MaxFileLines)
	}
	if c.MaxFuncLines <= 0 {
		return fmt.Errorf("max_func_lines must be positive, got %d", c.MaxFuncLines)
	}
	if c.Top <= 0 {
		return fmt.Errorf("top must be positive, got %d", c.Top)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.Format != FormatText && c.Format != FormatJSON {
		return fmt.Errorf("format must be 'text' or 'json', got %q", c.Format)
	}
	return nil
}

// Limits 把配置转换成模型层阈值。
func (c *Config) Limits() model.Limits {
	return model.Limits{
		MaxFileCodeLines:     c.MaxFileLines,
		MaxFunctionCodeLines: c.MaxFuncLines,
	}
}

// setDefaults 写入内置默认值。
func setDefaults(v *viper.Viper) {
	defaults := Default()
	v.SetDefault("max_file_lines", defaults.MaxFileLines)
	v.SetDefault("max_func_lines", defaults.MaxFuncLines)
	v.SetDefault("top", defaults.Top)
	v.SetDefault("workers", defaults.Workers)
	v.SetDefault("exclude", defaults.Exclude)
	v.SetDefault("format", defaults.Format)
	v.SetDefault("output", defaults.Output)
}
