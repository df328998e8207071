package core

import (
	"testing"
)

func TestPathJoin(t *testing.T) {
	testCases := []struct {
		base     string
		leaf     string
		expected string
	}{
		{".", "a", "a"},
		{"", "a", "a"},
		{"a", "b", "a/b"},
		{"a/b", "c.txt", "a/b/c.txt"},
	}
	for i, testCase := range testCases {
		if result := pathJoin(testCase.base, testCase.leaf); result != testCase.expected {
			t.Errorf("test index %d: joined path mismatch: %s != %s", i, result, testCase.expected)
		}
	}
}

func TestPathJoinEmptyLeafPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("joining an empty leaf did not panic")
		}
	}()
	pathJoin("a", "")
}

func TestPathParent(t *testing.T) {
	testCases := []struct {
		path     string
		expected string
	}{
		{".", "."},
		{"a", "."},
		{"a/b", "a"},
		{"a/b/c", "a/b"},
	}
	for i, testCase := range testCases {
		if result := PathParent(testCase.path); result != testCase.expected {
			t.Errorf("test index %d: parent mismatch: %s != %s", i, result, testCase.expected)
		}
	}
}

func TestPathAncestors(t *testing.T) {
	testCases := []struct {
		path     string
		expected []string
	}{
		{".", nil},
		{"a", []string{"."}},
		{"pkg/sub/main.py", []string{".", "pkg", "pkg/sub"}},
	}
	for i, testCase := range testCases {
		result := PathAncestors(testCase.path)
		if len(result) != len(testCase.expected) {
			t.Errorf("test index %d: ancestor count mismatch: %d != %d", i, len(result), len(testCase.expected))
			continue
		}
		for j := range result {
			if result[j] != testCase.expected[j] {
				t.Errorf("test index %d: ancestor %d mismatch: %s != %s", i, j, result[j], testCase.expected[j])
			}
		}
	}
}

func TestNormalizePath(t *testing.T) {
	testCases := []struct {
		path     string
		expected string
	}{
		{"", "."},
		{".", "."},
		{"./", "."},
		{"./src/main.py", "src/main.py"},
		{"././src", "src"},
		{"src\\main.py", "src/main.py"},
		{"build/", "build"},
		{"a/b//", "a/b"},
	}
	for i, testCase := range testCases {
		if result := NormalizePath(testCase.path); result != testCase.expected {
			t.Errorf("test index %d: normalized path mismatch: %s != %s", i, result, testCase.expected)
		}
	}
}

func TestExtension(t *testing.T) {
	testCases := []struct {
		name     string
		expected string
	}{
		{"main.py", ".py"},
		{"archive.tar.gz", ".gz"},
		{".bashrc", ""},
		{"name.", ""},
		{"README", ""},
		{"..a", ".a"},
	}
	for i, testCase := range testCases {
		if result := Extension(testCase.name); result != testCase.expected {
			t.Errorf("test index %d: extension mismatch for %s: %q != %q", i, testCase.name, result, testCase.expected)
		}
	}
}
