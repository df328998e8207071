package core

import (
	"errors"
	"fmt"
	"time"
)

// NodeKind encodes the kind of a tree node.
type NodeKind uint8

const (
	// NodeKindDirectory indicates a directory node.
	NodeKindDirectory NodeKind = iota
	// NodeKindFile indicates a file node.
	NodeKindFile
)

// String returns the lowercase name used for the node kind in rendered output.
func (k NodeKind) String() string {
	switch k {
	case NodeKindDirectory:
		return "directory"
	case NodeKindFile:
		return "file"
	default:
		return "unknown"
	}
}

// Node is a node in the logical tree. Each node exclusively owns its children.
type Node struct {
	// Path is the root-relative path of the node, or "." for the root.
	Path string
	// Name is the base name of the node.
	Name string
	// Kind is the kind of the node.
	Kind NodeKind
	// Depth is the depth of the node, with the root at depth 0.
	Depth int
	// Extension is the final dot suffix of file nodes.
	Extension string
	// Children are the node's children, in display order. It is always empty
	// for file nodes.
	Children []*Node
	// Size is the size in bytes, if known.
	Size *uint64
	// ModificationTime is the modification time, if known.
	ModificationTime *time.Time
	// SymbolicLink indicates whether or not the node is a symbolic link.
	SymbolicLink bool
	// SymbolicLinkTarget is the raw target of the symbolic link, if readable.
	SymbolicLinkTarget string
	// SymbolicLinkCycle indicates that the node is a symbolic link whose
	// expansion was suppressed due to a cycle.
	SymbolicLinkCycle bool
}

// errFileChildren indicates an attempt to give a file node children.
var errFileChildren = errors.New("file nodes cannot contain children")

// newNode creates a node from a traversal entry.
func newNode(entry *Entry) *Node {
	node := &Node{
		Path:               entry.Path,
		Name:               entry.Name,
		Kind:               NodeKindFile,
		Depth:              entry.Depth,
		Extension:          entry.Extension,
		Size:               entry.Size,
		ModificationTime:   entry.ModificationTime,
		SymbolicLink:       entry.SymbolicLink,
		SymbolicLinkTarget: entry.SymbolicLinkTarget,
		SymbolicLinkCycle:  entry.SymbolicLinkCycle,
	}
	if entry.Directory {
		node.Kind = NodeKindDirectory
		node.Extension = ""
	}
	return node
}

// IsDirectory indicates whether or not the node is a directory.
func (n *Node) IsDirectory() bool {
	return n.Kind == NodeKindDirectory
}

// AddChild appends a child to the node. It fails if the node is a file.
func (n *Node) AddChild(child *Node) error {
	if n.Kind != NodeKindDirectory {
		return fmt.Errorf("unable to add child %q to %q: %w", child.Path, n.Path, errFileChildren)
	}
	n.Children = append(n.Children, child)
	return nil
}

// EnsureValid ensures that the node and its descendants are well-formed: depths
// are non-negative and increase by one per level, only directories have
// children, and children are non-nil. A nil node is not considered valid.
func (n *Node) EnsureValid() error {
	// A nil node is not valid.
	if n == nil {
		return errors.New("nil node")
	}

	// Validate the node and its descendants using an explicit stack.
	stack := []*Node{n}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Validate the node kind and depth.
		if current.Kind != NodeKindDirectory && current.Kind != NodeKindFile {
			return fmt.Errorf("node %q has unknown kind", current.Path)
		} else if current.Depth < 0 {
			return fmt.Errorf("node %q has negative depth", current.Path)
		}

		// Validate children.
		if current.Kind == NodeKindFile && len(current.Children) > 0 {
			return fmt.Errorf("invalid node %q: %w", current.Path, errFileChildren)
		}
		for _, child := range current.Children {
			if child == nil {
				return fmt.Errorf("node %q has nil child", current.Path)
			} else if child.Depth != current.Depth+1 {
				return fmt.Errorf("node %q has depth %d under parent depth %d",
					child.Path, child.Depth, current.Depth,
				)
			}
			stack = append(stack, child)
		}
	}

	// Success.
	return nil
}
