package core

import (
	"errors"
	"fmt"
)

// Model is a complete logical tree along with scan-level metadata.
type Model struct {
	// Root is the root node, with path "." and depth 0.
	Root *Node
	// ScanRoot is the resolved absolute path of the scanned directory.
	ScanRoot string
	// MaxDepth is the maximum traversal depth, or nil if unlimited.
	MaxDepth *int
}

// Preorder returns the nodes of the tree in deterministic preorder (parents
// before children, children in stored order).
func (m *Model) Preorder() []*Node {
	// Handle empty models.
	if m == nil || m.Root == nil {
		return nil
	}

	// Walk the tree with an explicit stack, pushing children in reverse so
	// that they're popped in order.
	var result []*Node
	stack := []*Node{m.Root}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		result = append(result, current)
		for i := len(current.Children) - 1; i >= 0; i-- {
			stack = append(stack, current.Children[i])
		}
	}
	return result
}

// EnsureValid ensures that the model is well-formed.
func (m *Model) EnsureValid() error {
	if m == nil {
		return errors.New("nil model")
	} else if m.Root == nil {
		return errors.New("nil root node")
	} else if m.Root.Path != RootPath {
		return fmt.Errorf("root node has path %q", m.Root.Path)
	} else if m.Root.Depth != 0 {
		return errors.New("root node has non-zero depth")
	} else if m.Root.Kind != NodeKindDirectory {
		return errors.New("root node is not a directory")
	} else if m.MaxDepth != nil && *m.MaxDepth < 0 {
		return errors.New("negative maximum depth")
	}
	return m.Root.EnsureValid()
}
