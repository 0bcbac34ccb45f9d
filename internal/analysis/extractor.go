package analysis

import (
	"strings"

	"sizelint/internal/languages"
	"sizelint/internal/model"
)

// ExtractFunctions 在分类结果之上定位函数边界并统计区间代码行。
//
// 约定：
// - 只有代码行才可能命中签名，被注释掉的声明不会开始提取
// - 命中后从签名行的下一行继续寻找签名，嵌套定义各自独立成记录，
//   内层函数的行会同时计入外层记录
// - 花括号配对只看代码行，注释里的花括号不参与计数
// - 函数体无法闭合时放弃该函数并终止整个文件的提取
func ExtractFunctions(profile *languages.Profile, path string, lines []string, labels []model.LineLabel) []model.FunctionRecord {
	var records []model.FunctionRecord
	classifier := NewClassifier(profile)

	for i := 0; i < len(lines); i++ {
		if labels[i] != model.LabelCode {
			continue
		}

		name, ok := profile.MatchSignature(lines[i])
		if !ok {
			continue
		}

		end, ok := delimitBody(profile, lines, labels, i)
		if !ok {
			// fail-soft：剩余行不再扫描，已提取的记录原样返回。
			return records
		}

		records = append(records, model.FunctionRecord{
			Name:      name,
			File:      path,
			StartLine: i + 1,
			EndLine:   end + 1,
			CodeLines: spanCodeLines(classifier, lines[i:end+1]),
		})
	}

	return records
}

// spanCodeLines 统计一个函数区间内的代码行数。
// 区间从签名行起算，每次统计前复位分类器，
// 上一个区间遗留的块注释状态不会串到下一个区间。
func spanCodeLines(classifier *Classifier, lines []string) int64 {
	classifier.Reset()

	var code int64
	for _, line := range lines {
		if classifier.Classify(line) == model.LabelCode {
			code++
		}
	}
	return code
}

// delimitBody 返回从 start 行开始的函数体结束行下标（含）。
// 函数体无法闭合时第二个返回值为 false。
func delimitBody(profile *languages.Profile, lines []string, labels []model.LineLabel, start int) (int, bool) {
	// 签名行带箭头且没有左花括号时走表达式体路径，其余一律按花括号配对。
	if profile.Body == languages.BodyArrow &&
		strings.Contains(lines[start], profile.ArrowMarker) &&
		!strings.Contains(lines[start], "{") {
		return delimitArrowBody(profile, lines, start), true
	}

	return delimitBraceBody(lines, labels, start)
}

// delimitArrowBody 处理 “=> 表达式 ;” 形式的函数体。
// 终止符紧跟在签名行的箭头之后时函数就是单行；
// 到文件末尾仍未出现终止符时按最后一行截断。
func delimitArrowBody(profile *languages.Profile, lines []string, start int) int {
	marker := strings.Index(lines[start], profile.ArrowMarker)
	rest := lines[start][marker+len(profile.ArrowMarker):]
	if strings.Contains(rest, profile.StatementTerminator) {
		return start
	}

	for i := start + 1; i < len(lines); i++ {
		if strings.Contains(lines[i], profile.StatementTerminator) {
			return i
		}
	}
	return len(lines) - 1
}

// delimitBraceBody 用花括号配对定位函数体结束行。
// 签名行没有左花括号时先向后寻找首个含左花括号的代码行，
// 再从该行的净值开始累计，深度回到零的行就是结束行。
func delimitBraceBody(lines []string, labels []model.LineLabel, start int) (int, bool) {
	opening := start
	for opening < len(lines) {
		if labels[opening] == model.LabelCode && strings.Contains(lines[opening], "{") {
			break
		}
		opening++
	}
	if opening == len(lines) {
		return 0, false
	}

	depth := netBraces(lines[opening])
	if depth <= 0 {
		return opening, true
	}

	for i := opening + 1; i < len(lines); i++ {
		if labels[i] != model.LabelCode {
			continue
		}
		depth += netBraces(lines[i])
		if depth <= 0 {
			return i, true
		}
	}
	return 0, false
}

// netBraces 统计一行的花括号净值。
func netBraces(line string) int {
	return strings.Count(line, "{") - strings.Count(line, "}")
}
