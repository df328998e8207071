package core

import (
	"golang.org/x/text/cases"
)

// Candidate is a directory listing entry awaiting ordering. Candidates are
// passed to ordering functions before traversal decides how to process them.
type Candidate struct {
	// Name is the entry name.
	Name string
	// Directory indicates whether or not the entry is, or resolves to, a
	// directory.
	Directory bool
	// SymbolicLink indicates whether or not the entry is a symbolic link.
	SymbolicLink bool
	// folded is the case-folded name, if precomputed.
	folded string
}

// foldedName returns the case-folded name, computing it if it wasn't
// precomputed by traversal.
func (c *Candidate) foldedName() string {
	if c.folded == "" && c.Name != "" {
		return cases.Fold().String(c.Name)
	}
	return c.folded
}

// LessFunc reports whether the first candidate should be listed before the
// second. It must define a strict weak ordering.
type LessFunc func(first, second *Candidate) bool

// DefaultLess is the default ordering for directory listings: directories
// first, then by case-folded name, then by exact name.
func DefaultLess(first, second *Candidate) bool {
	// Order directories before files.
	if first.Directory != second.Directory {
		return first.Directory
	}

	// Order by case-folded name.
	firstFolded, secondFolded := first.foldedName(), second.foldedName()
	if firstFolded != secondFolded {
		return firstFolded < secondFolded
	}

	// Break ties using the exact name.
	return first.Name < second.Name
}
