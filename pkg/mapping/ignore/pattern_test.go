package ignore

import (
	"testing"
)

func TestMatches(t *testing.T) {
	testCases := []struct {
		path      string
		directory bool
		pattern   string
		expected  bool
	}{
		// Empty patterns never match.
		{"a", false, "", false},
		{"a", true, "/", false},
		{"a", true, "//", false},
		// Bare names match any segment.
		{"a.pyc", false, "*.pyc", true},
		{"src/a.pyc", false, "*.pyc", true},
		{"src/a.py", false, "*.pyc", false},
		{"node_modules/pkg/index.js", false, "node_modules", true},
		// Directory-only bare names match directories and their contents.
		{"build", true, "build/", true},
		{"build", false, "build/", false},
		{"build/output.txt", false, "build/", true},
		{"src/build/x.o", false, "build/", true},
		{"src/build", true, "build/", true},
		{"src/build", false, "build/", false},
		{".git/config", false, ".git/", true},
		// Directory-only patterns with a slash match by path prefix.
		{"docs/api", true, "docs/api/", true},
		{"docs/api/index.md", false, "docs/api/", true},
		{"src/docs/api", true, "docs/api/", false},
		{"docs/apis", true, "docs/api/", false},
		// Anchored directory-only patterns match by path prefix.
		{"build", true, "/build/", true},
		{"build/a.txt", false, "/build/", true},
		{"src/build", true, "/build/", false},
		// Patterns with a slash match the whole path.
		{"src/a.py", false, "src/*.py", true},
		{"src/pkg/a.py", false, "src/*.py", true},
		{"src/sub/x.py", false, "src/*.py", true},
		{"src/pkg/a.py", false, "src/**/*.py", true},
		{"src/a.py", false, "src/**/*.py", false},
		{"other/src/a.py", false, "src/*.py", false},
		{"src/a.py", false, "/src?a.py", true},
		// Anchored patterns match the whole path.
		{"main.py", false, "/main.py", true},
		{"src/main.py", false, "/main.py", false},
		// Character classes.
		{"a1.log", false, "a[0-9].log", true},
		{"ab.log", false, "a[0-9].log", false},
		{"b.log", false, "[!a].log", true},
		{"a.log", false, "[!a].log", false},
		{"^.log", false, "[^a].log", true},
		{"b.log", false, "[^a].log", false},
		{"].log", false, "[]].log", true},
		{"-.log", false, "[a-].log", true},
		// Braces and backslashes are literal.
		{"x.yml", false, "*.{yml,yaml}", false},
		{"x.{yml,yaml}", false, "*.{yml,yaml}", true},
		{"{a,b}.txt", false, "{a,b}.txt", true},
		{"a.txt", false, "{a,b}.txt", false},
		// Paths are normalized before matching.
		{"./src/a.py", false, "src/*.py", true},
		{"src\\a.py", false, "src/*.py", true},
		// Unclosed classes are literal.
		{"a[", false, "a[", true},
		{"[abc", false, "[abc", true},
		{"a", false, "[abc", false},
	}
	for i, testCase := range testCases {
		if result := Matches(testCase.path, testCase.directory, testCase.pattern); result != testCase.expected {
			t.Errorf("test index %d: match result for %s against %s mismatch: %t != %t",
				i, testCase.path, testCase.pattern, result, testCase.expected,
			)
		}
	}
}

func TestTranslateGlob(t *testing.T) {
	testCases := []struct {
		value    string
		expected string
	}{
		{"*.py", "*.py"},
		{"src/*.py", "src\x00*.py"},
		{"{a,b}", `\{a,b\}`},
		{`a\b`, `a\\b`},
		{"[abc", `\[abc`},
		{"[!a]", "[!a]"},
		{"[^a]", `[\^a]`},
		{"[]]", `[\]]`},
		{"[/]", "[\x00]"},
	}
	for i, testCase := range testCases {
		if result := translateGlob(testCase.value); result != testCase.expected {
			t.Errorf("test index %d: translation of %q mismatch: %q != %q", i, testCase.value, result, testCase.expected)
		}
	}
}

func TestMatchesDefault(t *testing.T) {
	testCases := []struct {
		path      string
		directory bool
		expected  bool
	}{
		{".git", true, true},
		{".git/config", false, true},
		{"src/__pycache__", true, true},
		{"src/__pycache__/a.pyc", false, true},
		{"node_modules", true, true},
		{"build", false, false},
		{"dist", true, true},
		{"src/main.py", false, false},
		{".gitignore", false, false},
	}
	for i, testCase := range testCases {
		if result := MatchesDefault(testCase.path, testCase.directory); result != testCase.expected {
			t.Errorf("test index %d: default match for %s mismatch: %t != %t", i, testCase.path, result, testCase.expected)
		}
	}
}
