package render

import (
	"time"

	"github.com/path2map/path2map/pkg/mapping/core"
)

// fixtureTime is the modification time assigned to fixture files.
var fixtureTime = time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC)

// size returns a pointer to a size.
func size(value uint64) *uint64 {
	return &value
}

// directory creates a directory node.
func directory(path, name string, depth int, children ...*core.Node) *core.Node {
	return &core.Node{
		Path:     path,
		Name:     name,
		Kind:     core.NodeKindDirectory,
		Depth:    depth,
		Children: children,
	}
}

// file creates a file node without metadata.
func file(path, name string, depth int, extension string) *core.Node {
	return &core.Node{
		Path:      path,
		Name:      name,
		Kind:      core.NodeKindFile,
		Depth:     depth,
		Extension: extension,
	}
}

// withMetadata attaches metadata to a node.
func withMetadata(node *core.Node, bytes uint64) *core.Node {
	modificationTime := fixtureTime
	node.Size = size(bytes)
	node.ModificationTime = &modificationTime
	return node
}

// model wraps a root node in a model.
func model(root *core.Node) *core.Model {
	return &core.Model{Root: root, ScanRoot: "/tmp/project"}
}

// treeFixture returns a model with an empty directory, a populated directory,
// and files with and without metadata.
func treeFixture() *core.Model {
	return model(directory(".", "project", 0,
		file("z.txt", "z.txt", 1, ".txt"),
		directory("docs", "docs", 1),
		directory("src", "src", 1,
			withMetadata(file("src/main.py", "main.py", 2, ".py"), 12),
			file("src/readme.md", "readme.md", 2, ".md"),
		),
	))
}

// nestedFixture returns a model with a directory containing a single file.
func nestedFixture(bytes uint64) *core.Model {
	return model(directory(".", "project", 0,
		directory("src", "src", 1,
			withMetadata(file("src/main.py", "main.py", 2, ".py"), bytes),
		),
	))
}
