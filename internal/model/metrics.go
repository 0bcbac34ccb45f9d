// Package model 定义 sizelint 的核心数据模型。
// 这些结构会被分析器、扫描器、报告层和命令层共同使用。
package model

// LineLabel 表示单个物理行的分类结果。
// 每行有且仅有一个标签，三种标签互斥。
type LineLabel uint8

const (
	// LabelBlank 空白行：去除首尾空白后为空。
	LabelBlank LineLabel = iota
	// LabelComment 注释行：行注释、块注释内部或块注释边界行。
	LabelComment
	// LabelCode 代码行：其余所有行，包括带行尾注释的代码行。
	LabelCode
)

// String 返回标签的英文名，用于测试与调试输出。
func (l LineLabel) String() string {
	switch l {
	case LabelBlank:
		return "blank"
	case LabelComment:
		return "comment"
	case LabelCode:
		return "code"
	default:
		return "unknown"
	}
}

// LineMetrics 表示一组行级统计值。
//
// 注意：
// - Total 表示总行数（每行计 1）
// - 三类标签互斥，恒有 Total == Code + Comment + Blank
// - 行尾注释不改变代码行属性（x := 1 // note 仍计为 Code）
type LineMetrics struct {
	Total   int64 `json:"total"`
	Code    int64 `json:"code"`
	Comment int64 `json:"comment"`
	Blank   int64 `json:"blank"`
}

// Add 将另一个统计结果叠加到当前对象。
func (m *LineMetrics) Add(other LineMetrics) {
	m.Total += other.Total
	m.Code += other.Code
	m.Comment += other.Comment
	m.Blank += other.Blank
}

// FunctionRecord 表示从源文件中提取出的一个函数或方法。
// 行号从 1 开始，区间两端均含；CodeLines 只统计区间内的代码行。
type FunctionRecord struct {
	Name      string `json:"name"`
	File      string `json:"file"`
	StartLine int    `json:"start_line"`
	EndLine   int    `json:"end_line"`
	CodeLines int64  `json:"code_lines"`
}

// FileRecord 表示单文件分析结果。
// Path 为相对扫描根的斜杠分隔路径，保证跨平台输出一致。
type FileRecord struct {
	Path       string           `json:"path"`
	Language   string           `json:"language"`
	Metrics    LineMetrics      `json:"metrics"`
	Functions  []FunctionRecord `json:"functions"`
	Violations []Violation      `json:"violations"`
}
