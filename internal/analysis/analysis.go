// Package analysis 实现行分类与函数提取两级分析。
// 分类器对整个文件做单遍扫描，提取器在分类结果之上定位函数边界。
package analysis

import (
	"strings"

	"sizelint/internal/languages"
	"sizelint/internal/model"
)

// AnalyzeSource 对单个源文件内容执行完整分析。
// 返回的记录不含违规信息，阈值判定由扫描器完成。
func AnalyzeSource(profile *languages.Profile, path string, content string) model.FileRecord {
	lines := splitLines(content)
	labels := ClassifyAll(profile, lines)

	return model.FileRecord{
		Path:      path,
		Language:  profile.Name,
		Metrics:   CountLabels(labels),
		Functions: ExtractFunctions(profile, path, lines, labels),
	}
}

// splitLines 把文件内容拆成物理行。
// 兼容 Windows 的 \r\n，文件末尾的换行符不会产生多余的空行。
func splitLines(content string) []string {
	if content == "" {
		return nil
	}

	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
