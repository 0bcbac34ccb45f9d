package cmd

import (
	"io"
	"os"
	"strings"
	"testing"
)

// TestInitCommandCreatesConfig 验证 init 命令生成默认配置并拒绝静默覆盖。
func TestInitCommandCreatesConfig(t *testing.T) {
	t.Chdir(t.TempDir())

	initCmd := newInitCmd()
	initCmd.SetArgs([]string{})
	if err := initCmd.Execute(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	content, err := os.ReadFile(".sizelint.yaml")
	if err != nil {
		t.Fatalf("config file not created: %v", err)
	}
	if !strings.Contains(string(content), "max_file_lines: 500") {
		t.Fatalf("unexpected config content:\n%s", content)
	}

	repeatCmd := newInitCmd()
	repeatCmd.SetArgs([]string{})
	repeatCmd.SetErr(io.Discard)
	if err := repeatCmd.Execute(); err == nil {
		t.Fatalf("expected error when config file already exists")
	}

	forceCmd := newInitCmd()
	forceCmd.SetArgs([]string{"--force"})
	if err := forceCmd.Execute(); err != nil {
		t.Fatalf("init --force failed: %v", err)
	}
}
