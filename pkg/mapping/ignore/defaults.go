package ignore

import (
	"github.com/path2map/path2map/pkg/mapping/core"
)

// DefaultPatterns are the built-in ignore patterns applied unless disabled.
var DefaultPatterns = []string{
	".git/",
	".venv/",
	"__pycache__/",
	".mypy_cache/",
	".pytest_cache/",
	"node_modules/",
	"dist/",
	"build/",
}

// defaultPatterns are the parsed forms of DefaultPatterns.
var defaultPatterns []*pattern

func init() {
	// Parse the default patterns.
	for _, value := range DefaultPatterns {
		p := parsePattern(value)
		if p == nil {
			panic("invalid default ignore pattern: " + value)
		}
		defaultPatterns = append(defaultPatterns, p)
	}
}

// MatchesDefault indicates whether or not any default pattern matches the
// specified root-relative path.
func MatchesDefault(path string, directory bool) bool {
	return matchesDefault(core.NormalizePath(path), directory)
}

// matchesDefault is the implementation of MatchesDefault for normalized paths.
func matchesDefault(path string, directory bool) bool {
	for _, p := range defaultPatterns {
		if p.matches(path, directory) {
			return true
		}
	}
	return false
}
