// Package treetest provides helpers for creating on-disk directory trees in
// tests.
package treetest

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"
)

// Tree describes an on-disk directory tree. All paths are slash-separated and
// relative to the tree root. Parent directories are created implicitly.
type Tree struct {
	// Directories are directories to create.
	Directories []string
	// Files maps file paths to their contents.
	Files map[string]string
	// SymbolicLinks maps link paths to their raw targets.
	SymbolicLinks map[string]string
	// ModificationTime, if non-zero, is applied to all files and directories
	// after creation.
	ModificationTime time.Time
}

// Create creates the tree inside a fresh temporary directory and returns the
// path of the tree root. The test is skipped if symbolic links are requested
// but can't be created on the current platform.
func Create(t testing.TB, tree *Tree) string {
	t.Helper()

	// Create the root.
	root := filepath.Join(t.TempDir(), "project")
	if err := os.Mkdir(root, 0700); err != nil {
		t.Fatal("unable to create tree root:", err)
	}

	// Create directories.
	for _, directory := range tree.Directories {
		if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(directory)), 0700); err != nil {
			t.Fatalf("unable to create directory %s: %v", directory, err)
		}
	}

	// Create files in a stable order.
	for _, path := range sortedKeys(tree.Files) {
		target := filepath.Join(root, filepath.FromSlash(path))
		if err := os.MkdirAll(filepath.Dir(target), 0700); err != nil {
			t.Fatalf("unable to create parent of %s: %v", path, err)
		}
		if err := os.WriteFile(target, []byte(tree.Files[path]), 0600); err != nil {
			t.Fatalf("unable to create file %s: %v", path, err)
		}
	}

	// Apply modification times before links are created so that link
	// creation doesn't disturb them.
	if !tree.ModificationTime.IsZero() {
		Touch(t, root, tree.ModificationTime)
	}

	// Create symbolic links.
	for _, path := range sortedKeys(tree.SymbolicLinks) {
		link := filepath.Join(root, filepath.FromSlash(path))
		if err := os.MkdirAll(filepath.Dir(link), 0700); err != nil {
			t.Fatalf("unable to create parent of %s: %v", path, err)
		}
		if err := os.Symlink(filepath.FromSlash(tree.SymbolicLinks[path]), link); err != nil {
			t.Skip("symbolic links unsupported:", err)
		}
	}

	// Done.
	return root
}

// Touch sets the access and modification times of every file and directory
// under root (root included) to the specified time. Symbolic links are
// skipped.
func Touch(t testing.TB, root string, modificationTime time.Time) {
	t.Helper()

	// Collect paths first, then apply in reverse so that directory times are
	// set after their contents.
	var paths []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		} else if info.Mode()&os.ModeSymlink == 0 {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		t.Fatal("unable to walk tree:", err)
	}
	for i := len(paths) - 1; i >= 0; i-- {
		if err := os.Chtimes(paths[i], modificationTime, modificationTime); err != nil {
			t.Fatalf("unable to set times on %s: %v", paths[i], err)
		}
	}
}

// Lines splits text into lines, dropping a single trailing newline.
func Lines(text string) []string {
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// sortedKeys returns the keys of a map in sorted order.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
