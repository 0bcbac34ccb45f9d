package report

import (
	"encoding/json"
	"fmt"
	"io"

	"sizelint/internal/model"
)

// Document 是面向机器消费的报告镜像。
// Compliant 恒等于“违规总数为零”。
type Document struct {
	Compliant        bool                 `json:"compliant"`
	Roots            []string             `json:"roots"`
	Limits           model.Limits         `json:"limits"`
	TopN             int                  `json:"top_n"`
	Total            model.Totals         `json:"total"`
	Violations       []model.Violation    `json:"violations"`
	Warnings         []model.ScanWarning  `json:"warnings"`
	LargestFiles     []model.FileRank     `json:"largest_files"`
	LargestFunctions []model.FunctionRank `json:"largest_functions"`
	Files            []model.FileRecord   `json:"files"`
}

// BuildDocument 从扫描汇总构造 JSON 文档。
// 违规明细在文件列表之外再做一次平铺，便于下游直接消费。
func BuildDocument(summary model.ScanSummary) Document {
	violations := make([]model.Violation, 0)
	for _, file := range summary.Files {
		violations = append(violations, file.Violations...)
	}

	return Document{
		Compliant:        summary.Compliant(),
		Roots:            summary.Roots,
		Limits:           summary.Limits,
		TopN:             summary.TopN,
		Total:            summary.Total,
		Violations:       violations,
		Warnings:         summary.Warnings,
		LargestFiles:     summary.LargestFiles,
		LargestFunctions: summary.LargestFunctions,
		Files:            summary.Files,
	}
}

// PrintJSON 把报告按易读 JSON 输出到任意 writer。
func PrintJSON(writer io.Writer, summary model.ScanSummary) error {
	content, err := json.MarshalIndent(BuildDocument(summary), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if _, err := writer.Write(content); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// WriteJSONFile 将 JSON 报告导出到指定路径。
// 如果目录不存在会自动创建。
func WriteJSONFile(path string, summary model.ScanSummary) error {
	content, err := json.MarshalIndent(BuildDocument(summary), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	return writeFile(path, content)
}
