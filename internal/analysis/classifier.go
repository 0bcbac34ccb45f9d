package analysis

import (
	"strings"

	"sizelint/internal/languages"
	"sizelint/internal/model"
)

// Classifier 是带跨行状态的行分类器。
// 唯一的跨行状态是“当前是否处于块注释内部”这一个布尔量。
type Classifier struct {
	profile *languages.Profile
	inBlock bool
}

// NewClassifier 创建指定语言的行分类器。
func NewClassifier(profile *languages.Profile) *Classifier {
	return &Classifier{profile: profile}
}

// Reset 清除跨行状态，使分类器可复用于下一段输入。
func (c *Classifier) Reset() {
	c.inBlock = false
}

// Classify 给单个物理行打标签并推进跨行状态。
//
// 判定顺序固定：
// 1) 空白行，不触碰块注释状态
// 2) 处于块注释内部：整行为注释；行内出现结束符则清除状态，
//    结束符之后的内容不再重新分类
// 3) 行内出现块注释起始符：整行为注释；同一行未闭合则进入块注释状态
// 4) 以行注释标记开头：注释行
// 5) 其余为代码行，行尾注释不改变代码行属性
//
// 块注释起始符优先于行注释标记，“// 说明 /*” 这样的行仍会打开块注释状态。
// 字符串字面量里的注释标记会被误判，这是既定的近似处理。
func (c *Classifier) Classify(line string) model.LineLabel {
	trimmed := strings.TrimSpace(line)

	if trimmed == "" {
		return model.LabelBlank
	}

	if c.inBlock {
		if strings.Contains(trimmed, c.profile.BlockCommentClose) {
			c.inBlock = false
		}
		return model.LabelComment
	}

	if c.profile.BlockCommentOpen != "" && strings.Contains(trimmed, c.profile.BlockCommentOpen) {
		rest := trimmed[strings.Index(trimmed, c.profile.BlockCommentOpen)+len(c.profile.BlockCommentOpen):]
		if !strings.Contains(rest, c.profile.BlockCommentClose) {
			c.inBlock = true
		}
		return model.LabelComment
	}

	if c.profile.HasLineComment(trimmed) {
		return model.LabelComment
	}

	return model.LabelCode
}

// ClassifyAll 以全新状态对整段行序列打标签。
func ClassifyAll(profile *languages.Profile, lines []string) []model.LineLabel {
	classifier := NewClassifier(profile)
	labels := make([]model.LineLabel, len(lines))
	for i, line := range lines {
		labels[i] = classifier.Classify(line)
	}
	return labels
}

// CountLabels 汇总标签序列的行级统计值。
func CountLabels(labels []model.LineLabel) model.LineMetrics {
	var metrics model.LineMetrics
	for _, label := range labels {
		metrics.Total++
		switch label {
		case model.LabelBlank:
			metrics.Blank++
		case model.LabelComment:
			metrics.Comment++
		case model.LabelCode:
			metrics.Code++
		}
	}
	return metrics
}
