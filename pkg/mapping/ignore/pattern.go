package ignore

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/path2map/path2map/pkg/mapping/core"
)

// separatorStandIn replaces "/" in translated globs and in the paths matched
// against them. Paths can't contain NUL, so doublestar never sees a separator
// and its wildcards span path components the way fnmatch wildcards do.
const separatorStandIn = "\x00"

// pattern represents a single parsed glob pattern.
type pattern struct {
	// directoryOnly indicates whether or not the pattern had a trailing slash.
	directoryOnly bool
	// wholePath indicates whether or not the pattern should be matched against
	// the whole path (because it contained a slash or was anchored) rather
	// than individual path segments.
	wholePath bool
	// literal is the pattern with anchoring and trailing slashes removed.
	literal string
	// glob is the translated doublestar expression.
	glob string
}

// parsePattern parses a glob pattern. It returns nil if the pattern is empty
// after removing leading and trailing slashes, since such a pattern never
// matches. Every other pattern is valid: characters that don't form wildcard
// syntax match literally.
func parsePattern(value string) *pattern {
	// Remove any anchoring slashes.
	cleaned := strings.TrimLeft(value, "/")
	anchored := len(cleaned) != len(value)

	// Remove any trailing slashes.
	trimmed := strings.TrimRight(cleaned, "/")
	directoryOnly := len(trimmed) != len(cleaned)

	// Patterns that reduce to nothing never match.
	if trimmed == "" {
		return nil
	}

	// Success.
	return &pattern{
		directoryOnly: directoryOnly,
		wholePath:     anchored || strings.IndexByte(trimmed, '/') >= 0,
		literal:       trimmed,
		glob:          translateGlob(trimmed),
	}
}

// translateGlob converts fnmatch syntax into an equivalent doublestar
// expression. Only "*", "?", and closed "[...]" classes (negated with a
// leading "!") are special. Braces and backslashes match literally, as does a
// "[" without a closing "]".
func translateGlob(value string) string {
	var builder strings.Builder
	for i := 0; i < len(value); i++ {
		switch c := value[i]; c {
		case '*', '?':
			builder.WriteByte(c)
		case '[':
			// Locate the end of the class. A "]" immediately after the opening
			// bracket (or its negation) is part of the class.
			j := i + 1
			if j < len(value) && value[j] == '!' {
				j++
			}
			if j < len(value) && value[j] == ']' {
				j++
			}
			for j < len(value) && value[j] != ']' {
				j++
			}
			if j >= len(value) {
				builder.WriteString(`\[`)
				continue
			}

			// Emit the class with doublestar's escaping rules.
			body := value[i+1 : j]
			builder.WriteByte('[')
			if strings.HasPrefix(body, "!") {
				builder.WriteByte('!')
				body = body[1:]
			} else if strings.HasPrefix(body, "^") {
				builder.WriteString(`\^`)
				body = body[1:]
			}
			for k := 0; k < len(body); k++ {
				if body[k] == '\\' || body[k] == ']' {
					builder.WriteByte('\\')
				}
				builder.WriteByte(body[k])
			}
			builder.WriteByte(']')
			i = j
		case '\\', '{', '}':
			builder.WriteByte('\\')
			builder.WriteByte(c)
		default:
			builder.WriteByte(c)
		}
	}
	return strings.ReplaceAll(builder.String(), "/", separatorStandIn)
}

// matchGlob matches a translated glob against a normalized path or segment.
// Translated globs are always well-formed, so errors can't occur.
func matchGlob(glob, name string) bool {
	match, _ := doublestar.Match(glob, strings.ReplaceAll(name, "/", separatorStandIn))
	return match
}

// matches indicates whether or not the pattern matches the specified
// normalized root-relative path.
func (p *pattern) matches(path string, directory bool) bool {
	// Handle patterns that target a directory subtree by path. These compare
	// literally.
	if p.directoryOnly && p.wholePath {
		return path == p.literal || strings.HasPrefix(path, p.literal+"/")
	}

	// Handle whole-path patterns, where wildcards may span path components.
	if p.wholePath {
		return matchGlob(p.glob, path)
	}

	// Otherwise match against individual segments. A directory-only pattern
	// matches a segment if it's an intermediate segment (and thus necessarily
	// a directory) or if the entry itself is a directory.
	segments := strings.Split(path, "/")
	for s, segment := range segments {
		if !matchGlob(p.glob, segment) {
			continue
		}
		if !p.directoryOnly || s < len(segments)-1 || directory {
			return true
		}
	}
	return false
}

// Matches indicates whether or not a glob pattern matches a root-relative path.
// A leading slash anchors the pattern to the scan root and a trailing slash
// restricts it to directories (and their contents). Patterns without a slash
// match any single path segment, while in other patterns "*" and "?" also
// match "/".
func Matches(path string, directory bool, value string) bool {
	p := parsePattern(value)
	if p == nil {
		return false
	}
	return p.matches(core.NormalizePath(path), directory)
}
