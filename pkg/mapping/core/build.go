package core

import (
	"fmt"
	"path/filepath"
)

// Build assembles a flat list of traversal entries into a logical tree. The
// root node is named after the base name of the scan root. Each entry is
// appended to its parent's children in input order. Entries whose parent isn't
// present (e.g. because the parent was excluded) are skipped. An entry whose
// parent is a file is a construction error.
func Build(scanRoot string, entries []*Entry, maxDepth *int) (*Model, error) {
	// Create the root node.
	root := &Node{
		Path: RootPath,
		Name: filepath.Base(scanRoot),
		Kind: NodeKindDirectory,
	}

	// Track nodes by path so that children can locate their parents.
	nodes := make(map[string]*Node, len(entries)+1)
	nodes[RootPath] = root

	// Attach entries.
	for _, entry := range entries {
		// Skip orphans.
		parent, ok := nodes[PathParent(entry.Path)]
		if !ok {
			continue
		}

		// Create and attach the node.
		node := newNode(entry)
		if err := parent.AddChild(node); err != nil {
			return nil, fmt.Errorf("unable to build tree: %w", err)
		}
		nodes[entry.Path] = node
	}

	// Success.
	return &Model{
		Root:     root,
		ScanRoot: scanRoot,
		MaxDepth: maxDepth,
	}, nil
}
