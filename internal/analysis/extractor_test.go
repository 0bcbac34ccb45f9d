package analysis

import (
	"testing"
)

// TestExtractBraceFunction 验证花括号体函数的边界与区间代码行统计。
func TestExtractBraceFunction(t *testing.T) {
	profile := profileFor(t, "main.go")
	lines := []string{
		"package main",
		"",
		"func add(a int, b int) int {",
		"\t// sum two values",
		"\treturn a + b",
		"}",
	}
	labels := ClassifyAll(profile, lines)

	records := ExtractFunctions(profile, "main.go", lines, labels)

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	record := records[0]
	if record.Name != "add" || record.File != "main.go" {
		t.Fatalf("unexpected identity: %+v", record)
	}
	if record.StartLine != 3 || record.EndLine != 6 {
		t.Fatalf("unexpected span: %+v", record)
	}
	if record.CodeLines != 3 {
		t.Fatalf("code lines = %d, want 3", record.CodeLines)
	}
}

// TestExtractArrowSingleLine 验证终止符紧随箭头时函数就是单行，
// 下一行的声明不会被吞掉。
func TestExtractArrowSingleLine(t *testing.T) {
	profile := profileFor(t, "app.dart")
	lines := []string{
		"int add(int a, int b) => a + b;",
		"int twice(int a) => a * 2;",
	}
	labels := ClassifyAll(profile, lines)

	records := ExtractFunctions(profile, "app.dart", lines, labels)

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Name != "add" || records[0].StartLine != 1 || records[0].EndLine != 1 {
		t.Fatalf("unexpected first record: %+v", records[0])
	}
	if records[1].Name != "twice" || records[1].StartLine != 2 || records[1].EndLine != 2 {
		t.Fatalf("unexpected second record: %+v", records[1])
	}
}

// TestExtractArrowMultiLine 验证跨行表达式体：从签名行起到首个含终止符的行结束。
func TestExtractArrowMultiLine(t *testing.T) {
	profile := profileFor(t, "app.dart")
	lines := []string{
		"String describe(User user) =>",
		"    'name: ' +",
		"    user.name;",
		"var after = 1;",
	}
	labels := ClassifyAll(profile, lines)

	records := ExtractFunctions(profile, "app.dart", lines, labels)

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	record := records[0]
	if record.StartLine != 1 || record.EndLine != 3 || record.CodeLines != 3 {
		t.Fatalf("unexpected record: %+v", record)
	}
}

// TestExtractArrowBodyTruncatedAtEOF 验证表达式体直到文件末尾都没有终止符时
// 以最后一行截断。
func TestExtractArrowBodyTruncatedAtEOF(t *testing.T) {
	profile := profileFor(t, "app.dart")
	lines := []string{
		"int pending() =>",
		"    1 +",
		"    2",
	}
	labels := ClassifyAll(profile, lines)

	records := ExtractFunctions(profile, "app.dart", lines, labels)

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].EndLine != 3 {
		t.Fatalf("unexpected end line: %+v", records[0])
	}
}

// TestExtractArrowWithBracesPrefersBraceBody 验证签名行同时出现箭头与
// 左花括号时走花括号配对路径。
func TestExtractArrowWithBracesPrefersBraceBody(t *testing.T) {
	profile := profileFor(t, "app.dart")
	lines := []string{
		"int apply(int x) { return call(() => x); }",
	}
	labels := ClassifyAll(profile, lines)

	records := ExtractFunctions(profile, "app.dart", lines, labels)

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].StartLine != 1 || records[0].EndLine != 1 {
		t.Fatalf("unexpected record: %+v", records[0])
	}
}

// TestExtractNestedFunctionsDoubleCount 验证嵌套定义各自独立成记录，
// 内层行同时计入外层。
func TestExtractNestedFunctionsDoubleCount(t *testing.T) {
	profile := profileFor(t, "lib.rs")
	lines := []string{
		"fn outer() {",
		"    let x = 1;",
		"    fn inner() {",
		"        let y = 2;",
		"    }",
		"}",
	}
	labels := ClassifyAll(profile, lines)

	records := ExtractFunctions(profile, "lib.rs", lines, labels)

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	outer, inner := records[0], records[1]
	if outer.Name != "outer" || outer.StartLine != 1 || outer.EndLine != 6 || outer.CodeLines != 6 {
		t.Fatalf("unexpected outer record: %+v", outer)
	}
	if inner.Name != "inner" || inner.StartLine != 3 || inner.EndLine != 5 || inner.CodeLines != 3 {
		t.Fatalf("unexpected inner record: %+v", inner)
	}
}

// TestExtractSignatureBraceOnLaterLine 验证参数跨行的长签名：
// 先找到首个含左花括号的代码行，再开始配对。
func TestExtractSignatureBraceOnLaterLine(t *testing.T) {
	profile := profileFor(t, "lib.rs")
	lines := []string{
		"fn configure(",
		"    host: String,",
		"    port: u16,",
		") {",
		"    apply(host, port);",
		"}",
	}
	labels := ClassifyAll(profile, lines)

	records := ExtractFunctions(profile, "lib.rs", lines, labels)

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	record := records[0]
	if record.Name != "configure" || record.StartLine != 1 || record.EndLine != 6 || record.CodeLines != 6 {
		t.Fatalf("unexpected record: %+v", record)
	}
}

// TestExtractSkipsCommentedSignatures 验证注释中的签名不会开始提取。
func TestExtractSkipsCommentedSignatures(t *testing.T) {
	profile := profileFor(t, "lib.rs")
	lines := []string{
		"/*",
		"fn hidden() {",
		"}",
		"*/",
		"// fn also_hidden() {",
		"fn visible() {}",
	}
	labels := ClassifyAll(profile, lines)

	records := ExtractFunctions(profile, "lib.rs", lines, labels)

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Name != "visible" || records[0].StartLine != 6 || records[0].EndLine != 6 {
		t.Fatalf("unexpected record: %+v", records[0])
	}
}

// TestExtractBracesInCommentsIgnored 验证注释行里的花括号不参与配对。
func TestExtractBracesInCommentsIgnored(t *testing.T) {
	profile := profileFor(t, "lib.rs")
	lines := []string{
		"fn tricky() {",
		"    // unmatched } in comment",
		"    /* also { unmatched */",
		"    body();",
		"}",
	}
	labels := ClassifyAll(profile, lines)

	records := ExtractFunctions(profile, "lib.rs", lines, labels)

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].EndLine != 5 || records[0].CodeLines != 3 {
		t.Fatalf("unexpected record: %+v", records[0])
	}
}

// TestExtractUnterminatedBodyAborts 验证深度无法归零时放弃该函数，
// 已完成的记录原样保留，文件剩余部分不再扫描。
func TestExtractUnterminatedBodyAborts(t *testing.T) {
	profile := profileFor(t, "lib.rs")
	lines := []string{
		"fn good() {",
		"}",
		"fn broken() {",
		"    let x = 1;",
	}
	labels := ClassifyAll(profile, lines)

	records := ExtractFunctions(profile, "lib.rs", lines, labels)

	if len(records) != 1 {
		t.Fatalf("expected only the closed function, got %d records", len(records))
	}
	if records[0].Name != "good" {
		t.Fatalf("unexpected record: %+v", records[0])
	}
}

// TestExtractMissingOpeningBraceAborts 验证签名后始终没有左花括号时放弃提取。
func TestExtractMissingOpeningBraceAborts(t *testing.T) {
	profile := profileFor(t, "lib.rs")
	lines := []string{
		"fn declaration_only(",
		"    a: i32,",
	}
	labels := ClassifyAll(profile, lines)

	if records := ExtractFunctions(profile, "lib.rs", lines, labels); len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}

// TestExtractSpanStateDoesNotLeak 验证一个区间以未闭合的块注释收尾时，
// 下一个区间仍从干净状态起算。
func TestExtractSpanStateDoesNotLeak(t *testing.T) {
	profile := profileFor(t, "app.dart")
	lines := []string{
		"String first() =>",
		"    '/*' + tail;",
		"*/",
		"String second() => 'ok';",
	}
	labels := ClassifyAll(profile, lines)

	records := ExtractFunctions(profile, "app.dart", lines, labels)

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d: %+v", len(records), records)
	}
	if records[0].Name != "first" || records[0].StartLine != 1 || records[0].EndLine != 2 || records[0].CodeLines != 1 {
		t.Fatalf("unexpected first record: %+v", records[0])
	}
	if records[1].Name != "second" || records[1].StartLine != 4 || records[1].EndLine != 4 || records[1].CodeLines != 1 {
		t.Fatalf("unexpected second record: %+v", records[1])
	}
}
