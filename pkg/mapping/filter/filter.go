// Package filter implements path2map's include filtering. Entries matching any
// filter expression are kept along with the directories that contain them.
package filter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/path2map/path2map/pkg/mapping/core"
)

// CompilePatterns compiles include filter expressions. Blank values are
// skipped.
func CompilePatterns(values []string) ([]*regexp.Regexp, error) {
	var result []*regexp.Regexp
	for _, value := range values {
		if strings.TrimSpace(value) == "" {
			continue
		}
		expression, err := regexp.Compile(value)
		if err != nil {
			return nil, fmt.Errorf("invalid filter expression (%s): %w", value, err)
		}
		result = append(result, expression)
	}
	return result, nil
}

// FilterWithAncestors returns the entries whose normalized paths match at least
// one expression (anywhere in the path), together with every directory entry
// that is a strict ancestor of a match. Input order is preserved. With no
// expressions, the entries are returned unchanged. If nothing matches, the
// result is empty.
func FilterWithAncestors(entries []core.PathEntry, expressions []*regexp.Regexp) []core.PathEntry {
	// Handle the pass-through case.
	if len(expressions) == 0 {
		return entries
	}

	// Normalize paths and identify matches. Along the way, record the set of
	// directories that must be retained as ancestors.
	paths := make([]string, len(entries))
	matched := make(map[string]bool)
	ancestors := make(map[string]bool)
	for i, entry := range entries {
		paths[i] = core.NormalizePath(entry.Path)
		for _, expression := range expressions {
			if expression.MatchString(paths[i]) {
				matched[paths[i]] = true
				for _, ancestor := range core.PathAncestors(paths[i]) {
					ancestors[ancestor] = true
				}
				break
			}
		}
	}

	// If nothing matched, then nothing is kept.
	if len(matched) == 0 {
		return nil
	}

	// Retain matches and ancestor directories in order.
	result := make([]core.PathEntry, 0, len(matched)+len(ancestors))
	for i, entry := range entries {
		if matched[paths[i]] || (entry.Directory && ancestors[paths[i]]) {
			result = append(result, entry)
		}
	}
	return result
}
