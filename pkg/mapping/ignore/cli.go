package ignore

import (
	"fmt"
	"regexp"
	"strings"
)

// CompileCLIPatterns compiles a comma-separated list of regular expressions.
// Each part is trimmed and empty parts are dropped. Note that a comma can't
// appear inside an expression since the value is split before compilation.
func CompileCLIPatterns(value string) ([]*regexp.Regexp, error) {
	var result []*regexp.Regexp
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		expression, err := regexp.Compile(part)
		if err != nil {
			return nil, fmt.Errorf("invalid ignore expression (%s): %w", part, err)
		}
		result = append(result, expression)
	}
	return result, nil
}

// matchesAny indicates whether or not any expression matches anywhere within
// the path.
func matchesAny(expressions []*regexp.Regexp, path string) bool {
	for _, expression := range expressions {
		if expression.MatchString(path) {
			return true
		}
	}
	return false
}
