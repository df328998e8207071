package core

import (
	"time"
)

// PathEntry is the minimal view of a traversed entry used by the ignore and
// filter stages.
type PathEntry struct {
	// Path is the root-relative path of the entry.
	Path string
	// Directory indicates whether or not the entry is a directory.
	Directory bool
}

// Entry is a single record produced by traversal. Entries are treated as
// immutable once Enumerate returns them.
type Entry struct {
	// Path is the root-relative, slash-separated path of the entry.
	Path string
	// Name is the base name of the entry.
	Name string
	// Directory indicates whether or not the entry is a directory. A symbolic
	// link that resolves to a directory is a directory entry.
	Directory bool
	// Depth is the depth of the entry, with children of the scan root at depth
	// 1.
	Depth int
	// Extension is the final dot suffix of the entry name. It is always empty
	// for directories.
	Extension string
	// SymbolicLink indicates whether or not the entry is a symbolic link.
	SymbolicLink bool
	// SymbolicLinkTarget is the raw target of the symbolic link. It is empty
	// if the entry is not a symbolic link or if the target couldn't be read.
	SymbolicLinkTarget string
	// SymbolicLinkCycle indicates that the entry is a symbolic link whose
	// target directory is already open on the current traversal path.
	SymbolicLinkCycle bool
	// Size is the size of the entry in bytes. It is nil if metadata wasn't
	// collected or isn't applicable (e.g. for directories).
	Size *uint64
	// ModificationTime is the modification time of the entry. It is nil if
	// metadata wasn't collected or couldn't be read.
	ModificationTime *time.Time
}

// PathEntry returns the PathEntry view of the entry.
func (e *Entry) PathEntry() PathEntry {
	return PathEntry{Path: e.Path, Directory: e.Directory}
}

// PathEntries converts a list of traversal entries to their PathEntry views,
// preserving order.
func PathEntries(entries []*Entry) []PathEntry {
	result := make([]PathEntry, len(entries))
	for i, entry := range entries {
		result[i] = entry.PathEntry()
	}
	return result
}
