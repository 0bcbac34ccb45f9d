package model

// 默认阈值与排行长度。阈值为排除上界：实测值严格大于阈值才记违规。
const (
	DefaultMaxFileCodeLines     int64 = 500
	DefaultMaxFunctionCodeLines int64 = 50
	DefaultTopN                 int   = 10
)

// ViolationKind 区分违规类型。
type ViolationKind string

const (
	// ViolationFileTooLarge 表示文件代码行数超过上限。
	ViolationFileTooLarge ViolationKind = "file_too_large"
	// ViolationFunctionTooLarge 表示单个函数代码行数超过上限。
	ViolationFunctionTooLarge ViolationKind = "function_too_large"
)

// Violation 记录一次阈值违规。
// Function 与 Line 仅在函数违规时填写。
type Violation struct {
	Kind     ViolationKind `json:"kind"`
	Path     string        `json:"path"`
	Function string        `json:"function,omitempty"`
	Line     int           `json:"line,omitempty"`
	Measured int64         `json:"measured"`
	Limit    int64         `json:"limit"`
}

// ScanWarning 记录单文件读取或解码失败信息。
// 设计为“告警不阻断全量扫描”，失败文件仍以零统计值计入结果。
type ScanWarning struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// Limits 描述文件与函数两级体量阈值，均为排除上界。
type Limits struct {
	MaxFileCodeLines     int64 `json:"max_file_code_lines"`
	MaxFunctionCodeLines int64 `json:"max_function_code_lines"`
}

// DefaultLimits 返回默认阈值组合。
func DefaultLimits() Limits {
	return Limits{
		MaxFileCodeLines:     DefaultMaxFileCodeLines,
		MaxFunctionCodeLines: DefaultMaxFunctionCodeLines,
	}
}

// Totals 表示项目级总计信息。
// 在 LineMetrics 基础上增加文件数、函数数与三类违规计数。
type Totals struct {
	Files     int64 `json:"files"`
	Functions int64 `json:"functions"`
	LineMetrics
	Violations         int64 `json:"violations"`
	FileViolations     int64 `json:"file_violations"`
	FunctionViolations int64 `json:"function_violations"`
}

// AddFile 累加一个文件的统计值到项目总计中。
func (t *Totals) AddFile(rec FileRecord) {
	t.Files++
	t.Functions += int64(len(rec.Functions))
	t.LineMetrics.Add(rec.Metrics)
	for _, v := range rec.Violations {
		t.Violations++
		switch v.Kind {
		case ViolationFileTooLarge:
			t.FileViolations++
		case ViolationFunctionTooLarge:
			t.FunctionViolations++
		}
	}
}

// FileRank 表示文件代码行排行中的一项。
type FileRank struct {
	Path      string `json:"path"`
	CodeLines int64  `json:"code_lines"`
}

// FunctionRank 表示函数代码行排行中的一项。
type FunctionRank struct {
	Path      string `json:"path"`
	Function  string `json:"function"`
	StartLine int    `json:"start_line"`
	CodeLines int64  `json:"code_lines"`
}

// ScanSummary 是 scan 命令的完整输出模型。
// 对同一棵未变更的目录树重复扫描，本结构逐字段一致。
type ScanSummary struct {
	Roots            []string       `json:"roots"`
	Limits           Limits         `json:"limits"`
	TopN             int            `json:"top_n"`
	Files            []FileRecord   `json:"files"`
	Warnings         []ScanWarning  `json:"warnings"`
	Total            Totals         `json:"total"`
	LargestFiles     []FileRank     `json:"largest_files"`
	LargestFunctions []FunctionRank `json:"largest_functions"`
}

// Compliant 报告本次扫描是否没有任何违规。
func (s *ScanSummary) Compliant() bool {
	return s.Total.Violations == 0
}
