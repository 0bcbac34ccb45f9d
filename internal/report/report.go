// Package report 提供 sizelint 的输出能力。
// 当前实现支持 text 合规报告和 JSON 格式，两者均可导出到文件。
package report

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"sizelint/internal/model"
)

const (
	checkMark = "✅"
	crossMark = "❌"
)

var (
	heavyRule = strings.Repeat("=", 80)
	lightRule = strings.Repeat("-", 80)
)

// Renderer 把扫描汇总渲染成文本合规报告。
// 渲染是汇总的纯函数，输出是否带彩色转义由 color.NoColor 全局开关决定。
type Renderer struct {
	printer *message.Printer
}

// NewRenderer 创建文本报告渲染器。
func NewRenderer() *Renderer {
	return &Renderer{printer: message.NewPrinter(language.English)}
}

// Render 渲染完整报告文本。
func (r *Renderer) Render(summary model.ScanSummary) string {
	var builder strings.Builder

	r.writeHeader(&builder, summary)
	r.writeSummary(&builder, summary)
	r.writeWarnings(&builder, summary)
	r.writeViolations(&builder, summary)
	r.writeLargestFiles(&builder, summary)
	r.writeLargestFunctions(&builder, summary)
	builder.WriteString(heavyRule + "\n")

	return builder.String()
}

func (r *Renderer) writeHeader(builder *strings.Builder, summary model.ScanSummary) {
	fmt.Fprintln(builder, heavyRule)
	fmt.Fprintln(builder, color.CyanString("CODE METRICS COMPLIANCE REPORT"))
	fmt.Fprintln(builder, heavyRule)
	fmt.Fprintln(builder)
	fmt.Fprintln(builder, "Standards:")
	fmt.Fprintf(builder, "  - Max file size: %d lines (excluding comments/blanks)\n", summary.Limits.MaxFileCodeLines)
	fmt.Fprintf(builder, "  - Max function size: %d lines (excluding comments/blanks)\n", summary.Limits.MaxFunctionCodeLines)
	fmt.Fprintln(builder)
}

func (r *Renderer) writeSummary(builder *strings.Builder, summary model.ScanSummary) {
	filesWithViolations := 0
	for _, file := range summary.Files {
		if len(file.Violations) > 0 {
			filesWithViolations++
		}
	}

	fmt.Fprintln(builder, "Summary:")
	fmt.Fprintf(builder, "  - Total files analyzed: %d\n", summary.Total.Files)
	fmt.Fprintf(builder, "  - Total functions analyzed: %d\n", summary.Total.Functions)
	fmt.Fprintf(builder, "  - Total code lines: %s\n", r.printer.Sprintf("%d", summary.Total.Code))
	fmt.Fprintf(builder, "  - Files with violations: %d\n", filesWithViolations)
	fmt.Fprintf(builder, "  - Total violations: %d\n", summary.Total.Violations)
	fmt.Fprintln(builder)
}

func (r *Renderer) writeWarnings(builder *strings.Builder, summary model.ScanSummary) {
	if len(summary.Warnings) == 0 {
		return
	}

	fmt.Fprintln(builder, "Warnings:")
	for _, warning := range summary.Warnings {
		fmt.Fprintf(builder, "  - %s: %s\n", warning.Path, warning.Reason)
	}
	fmt.Fprintln(builder)
}

// writeViolations 按“违规数降序、同数保持发现顺序”逐文件列出违规明细。
func (r *Renderer) writeViolations(builder *strings.Builder, summary model.ScanSummary) {
	if summary.Total.Violations == 0 {
		fmt.Fprintln(builder, color.GreenString("%s All files comply with code metrics standards!", checkMark))
		fmt.Fprintln(builder)
		return
	}

	violating := make([]model.FileRecord, 0)
	for _, file := range summary.Files {
		if len(file.Violations) > 0 {
			violating = append(violating, file)
		}
	}
	sort.SliceStable(violating, func(i int, j int) bool {
		return len(violating[i].Violations) > len(violating[j].Violations)
	})

	fmt.Fprintln(builder, lightRule)
	fmt.Fprintln(builder, color.CyanString("VIOLATIONS"))
	fmt.Fprintln(builder, lightRule)
	fmt.Fprintln(builder)

	for _, file := range violating {
		fmt.Fprintf(builder, "File: %s\n", file.Path)
		fmt.Fprintf(builder, "  Code lines: %d\n", file.Metrics.Code)
		for _, violation := range file.Violations {
			fmt.Fprintf(builder, "  %s %s\n", crossMark, color.RedString(formatViolation(violation)))
		}
		fmt.Fprintln(builder)
	}
}

func (r *Renderer) writeLargestFiles(builder *strings.Builder, summary model.ScanSummary) {
	fmt.Fprintln(builder, lightRule)
	fmt.Fprintln(builder, color.CyanString("TOP %d LARGEST FILES (by code lines)", summary.TopN))
	fmt.Fprintln(builder, lightRule)
	fmt.Fprintln(builder)

	tw := tabwriter.NewWriter(builder, 0, 4, 2, ' ', 0)
	for i, rank := range summary.LargestFiles {
		mark := checkMark
		if rank.CodeLines > summary.Limits.MaxFileCodeLines {
			mark = crossMark
		}
		fmt.Fprintf(tw, "%2d.\t%s\t%s\t%d lines\n", i+1, mark, rank.Path, rank.CodeLines)
	}
	_ = tw.Flush()
	fmt.Fprintln(builder)
}

func (r *Renderer) writeLargestFunctions(builder *strings.Builder, summary model.ScanSummary) {
	fmt.Fprintln(builder, lightRule)
	fmt.Fprintln(builder, color.CyanString("TOP %d LARGEST FUNCTIONS (by code lines)", summary.TopN))
	fmt.Fprintln(builder, lightRule)
	fmt.Fprintln(builder)

	tw := tabwriter.NewWriter(builder, 0, 4, 2, ' ', 0)
	for i, rank := range summary.LargestFunctions {
		mark := checkMark
		if rank.CodeLines > summary.Limits.MaxFunctionCodeLines {
			mark = crossMark
		}
		fmt.Fprintf(tw, "%2d.\t%s\t%s\t%d lines\t(%s:%d)\n",
			i+1, mark, rank.Function, rank.CodeLines, path.Base(rank.Path), rank.StartLine)
	}
	_ = tw.Flush()
	fmt.Fprintln(builder)
}

// formatViolation 生成单条违规的英文描述。
func formatViolation(violation model.Violation) string {
	if violation.Kind == model.ViolationFunctionTooLarge {
		return fmt.Sprintf("Function '%s' at line %d exceeds %d code lines: %d lines",
			violation.Function, violation.Line, violation.Limit, violation.Measured)
	}
	return fmt.Sprintf("File exceeds %d code lines: %d lines", violation.Limit, violation.Measured)
}

// PrintText 把文本合规报告写入任意 writer。
func PrintText(writer io.Writer, summary model.ScanSummary) error {
	_, err := io.WriteString(writer, NewRenderer().Render(summary))
	return err
}

// WriteTextFile 将文本报告导出到指定路径。
// 导出的内容始终不带彩色转义；如果目录不存在会自动创建。
func WriteTextFile(path string, summary model.ScanSummary) error {
	previous := color.NoColor
	color.NoColor = true
	content := NewRenderer().Render(summary)
	color.NoColor = previous

	return writeFile(path, []byte(content))
}

// writeFile 建目录并落盘，供文本与 JSON 导出复用。
func writeFile(path string, content []byte) error {
	directory := filepath.Dir(path)
	if directory != "." && directory != "" {
		if mkErr := os.MkdirAll(directory, 0o755); mkErr != nil {
			return fmt.Errorf("create output directory: %w", mkErr)
		}
	}

	if writeErr := os.WriteFile(path, content, 0o644); writeErr != nil {
		return fmt.Errorf("write output file: %w", writeErr)
	}
	return nil
}
