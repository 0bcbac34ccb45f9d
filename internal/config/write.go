package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WriteDefault 把默认配置连同注释头写入指定路径。
// force 为 false 且目标文件已存在时直接报错，避免覆盖用户配置。
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists: %s", path)
		}
	}

	defaults := Default()
	data, err := yaml.Marshal(&defaults)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	content := "# sizelint configuration\n" + string(data)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
