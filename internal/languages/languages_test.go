package languages

import (
	"testing"
)

// profileByName 是测试辅助函数，按名称获取内置语言档案。
func profileByName(t *testing.T, name string) *Profile {
	t.Helper()

	for _, profile := range NewRegistry().Languages() {
		if profile.Name == name {
			return profile
		}
	}
	t.Fatalf("missing builtin profile: %s", name)
	return nil
}

// TestRegistryLanguages 确认注册中心包含全部内置语言档案。
func TestRegistryLanguages(t *testing.T) {
	registry := NewRegistry()
	languages := registry.Languages()

	if len(languages) != 4 {
		t.Fatalf("unexpected language count: %d", len(languages))
	}

	requiredExtensions := []string{".dart", ".rs", ".go", ".java"}
	for _, extension := range requiredExtensions {
		if _, ok := registry.ProfileForFile("x" + extension); !ok {
			t.Fatalf("missing profile for extension %s", extension)
		}
	}
}

// TestProfileLookupIsCaseInsensitive 验证后缀匹配忽略大小写。
func TestProfileLookupIsCaseInsensitive(t *testing.T) {
	registry := NewRegistry()

	profile, ok := registry.ProfileForFile("lib/Main.DART")
	if !ok {
		t.Fatalf("expected .DART to resolve")
	}
	if profile.Name != "Dart" {
		t.Fatalf("expected Dart profile, got %s", profile.Name)
	}

	if _, ok := registry.ProfileForFile("README.txt"); ok {
		t.Fatalf("expected .txt to stay unresolved")
	}
}

// TestExtensionsForLanguage 验证按语言名反查后缀列表。
func TestExtensionsForLanguage(t *testing.T) {
	registry := NewRegistry()

	extensions := registry.ExtensionsForLanguage("Rust")
	if len(extensions) != 1 || extensions[0] != ".rs" {
		t.Fatalf("unexpected extensions for Rust: %v", extensions)
	}

	if extensions := registry.ExtensionsForLanguage("COBOL"); extensions != nil {
		t.Fatalf("expected nil for unknown language, got %v", extensions)
	}
}

// signatureCase 描述一条签名匹配用例。
type signatureCase struct {
	line     string
	wantName string
	wantOK   bool
}

// runSignatureCases 是测试辅助函数，对指定语言逐条验证签名匹配结果。
func runSignatureCases(t *testing.T, language string, cases []signatureCase) {
	t.Helper()

	profile := profileByName(t, language)
	for _, item := range cases {
		name, ok := profile.MatchSignature(item.line)
		if ok != item.wantOK {
			t.Fatalf("%s: match=%v for line %q", language, ok, item.line)
		}
		if ok && name != item.wantName {
			t.Fatalf("%s: name=%q, want %q for line %q", language, name, item.wantName, item.line)
		}
	}
}

// TestDartSignatures 覆盖 Dart 的花括号体、箭头体与常见非函数行。
func TestDartSignatures(t *testing.T) {
	runSignatureCases(t, "Dart", []signatureCase{
		{line: "void main() {", wantName: "main", wantOK: true},
		{line: "int add(int a, int b) => a + b;", wantName: "add", wantOK: true},
		{line: "Future<void> fetchUser() async {", wantName: "fetchUser", wantOK: true},
		{line: "  Widget build(BuildContext context) {", wantName: "build", wantOK: true},
		{line: "static String format(int value) {", wantName: "format", wantOK: true},
		{line: "final user = createUser();", wantOK: false},
		{line: "if (condition) {", wantOK: false},
		{line: "return compute(x);", wantOK: false},
	})
}

// TestRustSignatures 覆盖 Rust 的可见性前缀、属性前缀与跨行签名首行。
func TestRustSignatures(t *testing.T) {
	runSignatureCases(t, "Rust", []signatureCase{
		{line: "fn main() {", wantName: "main", wantOK: true},
		{line: "pub fn parse(input: &str) -> Result<Config, Error> {", wantName: "parse", wantOK: true},
		{line: "pub(crate) async fn run_server() {", wantName: "run_server", wantOK: true},
		{line: "    fn helper(", wantName: "helper", wantOK: true},
		{line: "#[inline] fn fast() -> i32 {", wantName: "fast", wantOK: true},
		{line: "let callback = |x| x * 2;", wantOK: false},
		{line: "struct Config {", wantOK: false},
	})
}

// TestGoSignatures 覆盖 Go 的普通函数、方法与泛型函数。
func TestGoSignatures(t *testing.T) {
	runSignatureCases(t, "Go", []signatureCase{
		{line: "func main() {", wantName: "main", wantOK: true},
		{line: "func (s *Service) Scan(roots []string) error {", wantName: "Scan", wantOK: true},
		{line: "func Map[T any](items []T) []T {", wantName: "Map", wantOK: true},
		{line: "x := func() { return }", wantOK: false},
		{line: "func() {", wantOK: false},
	})
}

// TestJavaSignatures 覆盖 Java 的修饰符组合与 throws 子句。
func TestJavaSignatures(t *testing.T) {
	runSignatureCases(t, "Java", []signatureCase{
		{line: "public static void main(String[] args) {", wantName: "main", wantOK: true},
		{line: "private int compute(int x) {", wantName: "compute", wantOK: true},
		{line: "protected List<String> names() throws IOException {", wantName: "names", wantOK: true},
		{line: "@Override public String toString() {", wantName: "toString", wantOK: true},
		{line: "return compute(x);", wantOK: false},
		{line: "} else {", wantOK: false},
	})
}

// TestHasLineComment 验证行注释标记识别，含块注释续行 * 前缀的语言差异。
func TestHasLineComment(t *testing.T) {
	dart := profileByName(t, "Dart")
	if !dart.HasLineComment("// note") {
		t.Fatalf("expected // to be a Dart line comment")
	}
	if !dart.HasLineComment("* continuation") {
		t.Fatalf("expected * to be a Dart comment continuation")
	}

	goProfile := profileByName(t, "Go")
	if goProfile.HasLineComment("* not a comment in go") {
		t.Fatalf("expected * to stay code for Go")
	}
}
