package scanner

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultExcludeRules 返回默认排除规则。
// 覆盖各平台构建产物、生成代码与测试文件的常见路径特征。
func DefaultExcludeRules() []string {
	return []string{
		"/build/",
		"/target/",
		"/.dart_tool/",
		"generated",
		"/ios/",
		"/android/",
		"/windows/",
		"/linux/",
		"/macos/",
		"/web/",
		"_test.dart",
		".g.dart",
		".freezed.dart",
	}
}

// Excluder 依据规则判断路径是否应跳过。
// 含通配元字符的规则按 glob 匹配，其余规则做子串匹配。
// 子串匹配在路径前补一个斜杠，使 “/build/” 这类规则也能命中根下首层目录。
type Excluder struct {
	globs      []string
	substrings []string
}

// NewExcluder 把规则预先分成 glob 与子串两类。
func NewExcluder(rules []string) *Excluder {
	excluder := &Excluder{}
	for _, rule := range rules {
		rule = strings.TrimSpace(rule)
		if rule == "" {
			continue
		}
		if strings.ContainsAny(rule, "*?[{") {
			excluder.globs = append(excluder.globs, rule)
			continue
		}
		excluder.substrings = append(excluder.substrings, rule)
	}
	return excluder
}

// Match 判断斜杠分隔的文件路径是否命中任一规则。
func (e *Excluder) Match(relPath string) bool {
	probe := "/" + relPath
	for _, rule := range e.substrings {
		if strings.Contains(probe, rule) {
			return true
		}
	}
	for _, pattern := range e.globs {
		if ok, err := doublestar.Match(pattern, relPath); err == nil && ok {
			return true
		}
	}
	return false
}

// MatchDir 判断目录是否可以整体剪枝。
// 子串规则命中目录即可剪枝（后代路径必然保留该子串），
// glob 规则不剪枝，留待逐文件判断。
func (e *Excluder) MatchDir(relPath string) bool {
	probe := "/" + relPath + "/"
	for _, rule := range e.substrings {
		if strings.Contains(probe, rule) {
			return true
		}
	}
	return false
}
