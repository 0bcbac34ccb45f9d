// Package languages 以纯数据档案描述受支持语言的词法特征。
// 所有语言共享 analysis 包里同一套分类与提取引擎，
// 新增语言只需在内置表中登记一条档案。
package languages

import (
	"regexp"
	"strings"
)

// BodyKind 区分函数体的定界方式。
type BodyKind string

const (
	// BodyBrace 表示函数体仅由花括号配对定界。
	BodyBrace BodyKind = "brace"
	// BodyArrow 表示除花括号外还允许“=> 表达式 ;”形式的函数体。
	BodyArrow BodyKind = "arrow"
)

// Profile 描述一种语言的注释标记、函数签名与函数体定界规则。
type Profile struct {
	// Name 语言名称（例如 Dart、Rust）。
	Name string
	// Extensions 该语言的文件后缀列表（包含点号，如 .dart）。
	Extensions []string
	// LineCommentMarkers 行注释前缀。含 “*” 时块注释的续行也会被识别为注释。
	LineCommentMarkers []string
	// BlockCommentOpen 与 BlockCommentClose 为块注释定界符。
	BlockCommentOpen  string
	BlockCommentClose string
	// Body 函数体定界方式。
	Body BodyKind
	// ArrowMarker 与 StatementTerminator 仅在 Body 为 BodyArrow 时使用。
	ArrowMarker         string
	StatementTerminator string

	signature *regexp.Regexp
}

// MatchSignature 判断一行是否为函数（或方法）签名，命中时返回捕获到的函数名。
// 只做逐行文本匹配，跨行签名由调用方的定界逻辑兜底。
func (p *Profile) MatchSignature(line string) (string, bool) {
	if p.signature == nil {
		return "", false
	}
	match := p.signature.FindStringSubmatch(line)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// HasLineComment 判断去除首部空白后的一行是否以行注释标记开头。
func (p *Profile) HasLineComment(trimmed string) bool {
	for _, marker := range p.LineCommentMarkers {
		if strings.HasPrefix(trimmed, marker) {
			return true
		}
	}
	return false
}
