// Package output 提供 CLI 的状态行输出。
// 报告正文由 report 包负责，这里只承担扫描前后的人机提示；
// 样式经 lipgloss 渲染，verbose 级别默认关闭。
package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	verboseMode bool
	noColorMode bool
)

// SetVerbose 开关 verbose 级别输出，由命令层在解析 --verbose 后调用。
func SetVerbose(v bool) {
	verboseMode = v
}

// SetNoColor 关闭状态行的样式渲染，与报告层的 color.NoColor 一同受 --no-color 控制。
func SetNoColor(v bool) {
	noColorMode = v
}

// render 按全局开关决定是否套用样式。
func render(style lipgloss.Style, msg string) string {
	if noColorMode {
		return msg
	}
	return style.Render(msg)
}

// Success 输出绿色成功消息。
func Success(msg string) {
	fmt.Println(render(successStyle, "✅ "+msg))
}

// Error 输出红色错误消息。
func Error(msg string) {
	fmt.Println(render(errorStyle, "❌ "+msg))
}

// Info 输出青色提示消息。
func Info(msg string) {
	fmt.Println(render(infoStyle, "📊 "+msg))
}

// Scanning 输出扫描进度提示。
func Scanning(msg string) {
	fmt.Println(render(infoStyle, "🔍 "+msg))
}

// Step 输出灰色缩进子项。
func Step(msg string) {
	fmt.Println(render(stepStyle, "   "+msg))
}

// Verbose 仅在 verbose 级别开启时输出调试消息。
func Verbose(msg string) {
	if verboseMode {
		fmt.Println(render(stepStyle, "🔍 "+msg))
	}
}
