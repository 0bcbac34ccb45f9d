package languages

import "regexp"

// builtinProfiles 是内置语言档案表。
// 签名正则的第 1 个捕获组必须是函数名。
var builtinProfiles = []*Profile{
	{
		Name:                "Dart",
		Extensions:          []string{".dart"},
		LineCommentMarkers:  []string{"//", "*"},
		BlockCommentOpen:    "/*",
		BlockCommentClose:   "*/",
		Body:                BodyArrow,
		ArrowMarker:         "=>",
		StatementTerminator: ";",
		// 匹配 void foo() {、Future<T> bar() async =>、static int baz() { 等形式。
		// 签名行必须带出函数体起点（{ 或 =>），构造函数与 getter 不在提取范围内。
		signature: regexp.MustCompile(`^\s*(?:@\w+\s+)*(?:static\s+)?(?:final\s+)?(?:const\s+)?` +
			`(?:Future<[^>]+>|Stream<[^>]+>|[A-Za-z_]\w*(?:<[^>]+>)?)\s+` +
			`([A-Za-z_]\w*)\s*\([^)]*\)\s*(?:async\s*)?(?:=>|\{)`),
	},
	{
		Name:               "Rust",
		Extensions:         []string{".rs"},
		LineCommentMarkers: []string{"//", "*"},
		BlockCommentOpen:   "/*",
		BlockCommentClose:  "*/",
		Body:               BodyBrace,
		// 匹配 fn foo()、pub fn bar()、pub(crate) async fn baz() 等形式。
		// 左花括号允许出现在后续行，以便处理参数跨行的长签名。
		signature: regexp.MustCompile(`^\s*(?:#\[[^\]]+\]\s*)*(?:pub(?:\([^)]+\))?\s+)?` +
			`(?:async\s+)?(?:unsafe\s+)?fn\s+([A-Za-z_]\w*)`),
	},
	{
		Name:               "Go",
		Extensions:         []string{".go"},
		LineCommentMarkers: []string{"//"},
		BlockCommentOpen:   "/*",
		BlockCommentClose:  "*/",
		Body:               BodyBrace,
		// 匹配 func foo(、func (r *T) foo(、func foo[T any]( 等形式。
		// 匿名函数没有函数名，不会命中。
		signature: regexp.MustCompile(`^\s*func\s+(?:\([^)]*\)\s*)?([A-Za-z_]\w*)\s*(?:\[[^\]]*\])?\s*\(`),
	},
	{
		Name:               "Java",
		Extensions:         []string{".java"},
		LineCommentMarkers: []string{"//", "*"},
		BlockCommentOpen:   "/*",
		BlockCommentClose:  "*/",
		Body:               BodyBrace,
		// 要求左花括号与签名同行（K&R 风格），避免把方法调用误判为声明；
		// 构造函数与声明泛型参数的方法不在提取范围内。
		signature: regexp.MustCompile(`^\s*(?:@\w+(?:\([^)]*\))?\s+)*` +
			`(?:(?:public|protected|private|static|final|abstract|synchronized|native|default|strictfp)\s+)*` +
			`(?:[A-Za-z_$][\w$]*(?:<[^>]+>)?(?:\[\])*)\s+([A-Za-z_$][\w$]*)\s*\([^)]*\)\s*` +
			`(?:throws\s+[\w$.,\s]+)?\s*\{`),
	},
}
