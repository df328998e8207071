package core

import (
	"strings"
)

const (
	// RootPath is the root-relative path of the scan root.
	RootPath = "."
)

// pathJoin joins a root-relative parent path and a leaf name. It avoids the
// path cleaning performed by path.Join. The provided leaf name must be
// non-empty, otherwise this function will panic.
func pathJoin(base, leaf string) string {
	// Disallow empty leaf names.
	if leaf == "" {
		panic("empty leaf name")
	}

	// When joining a path to the scan root, we don't want to concatenate.
	if base == RootPath || base == "" {
		return leaf
	}

	// Concatenate the paths.
	return base + "/" + leaf
}

// PathParent returns the root-relative path of the parent of a root-relative
// path. Paths without a slash have the scan root as their parent. The parent
// of the scan root is the scan root itself.
func PathParent(path string) string {
	// Identify the index of the last slash in the path.
	lastSlashIndex := strings.LastIndexByte(path, '/')

	// If there is no slash (or the only slash is leading, which can't occur
	// for a normalized path), then the parent is the scan root.
	if lastSlashIndex <= 0 {
		return RootPath
	}

	// Trim off the slash and everything that follows.
	return path[:lastSlashIndex]
}

// PathAncestors returns the strict ancestors of a root-relative path, starting
// with the scan root and ending with the immediate parent. The scan root has no
// ancestors.
func PathAncestors(path string) []string {
	// The scan root has no ancestors.
	if path == RootPath || path == "" {
		return nil
	}

	// Every other path has the scan root as an ancestor.
	result := []string{RootPath}

	// Add each intermediate directory.
	for i := 0; i < len(path); i++ {
		if path[i] == '/' {
			result = append(result, path[:i])
		}
	}

	// Done.
	return result
}

// NormalizePath converts a relative path to the canonical root-relative form:
// backslashes become forward slashes, leading "./" prefixes are removed, and
// trailing slashes are removed. The scan root normalizes to ".".
func NormalizePath(path string) string {
	// Convert separators.
	path = strings.ReplaceAll(path, "\\", "/")

	// Strip any leading "./" sequences.
	for strings.HasPrefix(path, "./") {
		path = path[2:]
	}

	// Strip any trailing slashes, but don't reduce the path to nothing.
	for len(path) > 1 && strings.HasSuffix(path, "/") {
		path = path[:len(path)-1]
	}

	// Map empty paths and bare slashes to the scan root.
	if path == "" || path == "/" {
		return RootPath
	}

	// Done.
	return path
}

// Extension returns the final dot suffix of a file name, including the dot. A
// name whose only dot is leading (e.g. ".bashrc") or whose final dot is
// trailing (e.g. "name.") has no extension.
func Extension(name string) string {
	// Find the last dot.
	lastDotIndex := strings.LastIndexByte(name, '.')

	// Handle names without a usable suffix.
	if lastDotIndex <= 0 || lastDotIndex == len(name)-1 {
		return ""
	}

	// Extract the suffix.
	return name[lastDotIndex:]
}
