package core

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"golang.org/x/text/cases"

	"github.com/path2map/path2map/pkg/filesystem"
	"github.com/path2map/path2map/pkg/logging"
)

// ErrRootInaccessible indicates that the scan root could not be resolved or
// isn't a readable directory.
var ErrRootInaccessible = errors.New("scan root inaccessible")

// EnumerationOptions controls the behavior of Enumerate.
type EnumerationOptions struct {
	// MaxDepth is the maximum entry depth. A nil value indicates unlimited
	// depth and a value of 0 yields no entries. Negative values are invalid.
	MaxDepth *int
	// SymbolicLinkMode is the symbolic link handling mode. The default mode is
	// treated as SymbolicLinkModeShow.
	SymbolicLinkMode SymbolicLinkMode
	// Less is the ordering for directory listings. If nil, DefaultLess is used.
	Less LessFunc
	// CollectMetadata indicates whether or not sizes and modification times
	// should be recorded.
	CollectMetadata bool
	// Progress, if non-nil, is invoked each time traversal enters a directory
	// with the number of entries emitted so far and the directory's
	// root-relative path.
	Progress func(entries int, path string)
	// Logger is the logger for per-entry warnings. It may be nil.
	Logger *logging.Logger
}

// enumerator provides the recursive implementation of enumeration.
type enumerator struct {
	// ctx is the enumeration context.
	ctx context.Context
	// options are the (resolved) enumeration options.
	options EnumerationOptions
	// open is the set of directory identities currently open on the traversal
	// path.
	open map[filesystem.Identity]bool
	// entries are the entries emitted so far.
	entries []*Entry
	// caser folds names for ordering. It's reused across listings since
	// enumeration is single-threaded.
	caser cases.Caser
}

// candidate is a directory content awaiting processing.
type candidate struct {
	Candidate
	// path is the absolute path of the content, reached through its parent's
	// logical path.
	path string
}

// list reads and orders the contents of a directory. Symbolic links are
// omitted when traversal is in skip mode.
func (e *enumerator) list(path string) ([]*candidate, error) {
	// Read the directory contents.
	contents, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	// Classify contents.
	candidates := make([]*candidate, 0, len(contents))
	for _, content := range contents {
		name := content.Name()
		contentPath := filepath.Join(path, name)
		symbolicLink := content.Type()&fs.ModeSymlink != 0
		if symbolicLink && e.options.SymbolicLinkMode == SymbolicLinkModeSkip {
			continue
		}
		directory := content.IsDir()
		if symbolicLink {
			if metadata, err := os.Stat(contentPath); err == nil {
				directory = metadata.IsDir()
			}
		}
		candidates = append(candidates, &candidate{
			Candidate: Candidate{
				Name:         name,
				Directory:    directory,
				SymbolicLink: symbolicLink,
				folded:       e.caser.String(name),
			},
			path: contentPath,
		})
	}

	// Order contents.
	less := e.options.Less
	sort.SliceStable(candidates, func(i, j int) bool {
		return less(&candidates[i].Candidate, &candidates[j].Candidate)
	})

	// Success.
	return candidates, nil
}

// metadata populates size and modification time information for an entry.
// Symbolic links report the metadata of their targets, falling back to that of
// the link itself if the target can't be read.
func (e *enumerator) metadata(entry *Entry, path string) {
	metadata, err := os.Stat(path)
	if err != nil && entry.SymbolicLink {
		metadata, err = os.Lstat(path)
	}
	if err != nil {
		e.options.Logger.Warnf("Unable to query metadata for %s: %v", entry.Path, err)
		return
	}
	modificationTime := metadata.ModTime()
	entry.ModificationTime = &modificationTime
	if !entry.Directory {
		size := uint64(metadata.Size())
		entry.Size = &size
	}
}

// directory enumerates the contents of a directory at the specified depth.
// Only cancellation and failure to read the scan root are returned as errors.
func (e *enumerator) directory(path, relativePath string, depth int) error {
	// Check for cancellation.
	select {
	case <-e.ctx.Done():
		return e.ctx.Err()
	default:
	}

	// Report progress.
	if e.options.Progress != nil {
		e.options.Progress(len(e.entries), relativePath)
	}

	// Read directory contents. Failure to read a subdirectory is logged and
	// leaves the directory without children.
	candidates, err := e.list(path)
	if err != nil {
		if relativePath == RootPath {
			return fmt.Errorf("%w: unable to read directory: %v", ErrRootInaccessible, err)
		}
		e.options.Logger.Warnf("Unable to read directory %s: %v", relativePath, err)
		return nil
	}

	// Process contents.
	for _, content := range candidates {
		// Create the entry.
		entry := &Entry{
			Path:         pathJoin(relativePath, content.Name),
			Name:         content.Name,
			Directory:    content.Directory,
			Depth:        depth,
			SymbolicLink: content.SymbolicLink,
		}
		if !entry.Directory {
			entry.Extension = Extension(entry.Name)
		}
		if entry.SymbolicLink {
			if target, err := os.Readlink(content.path); err == nil {
				entry.SymbolicLinkTarget = target
			} else {
				e.options.Logger.Debugf("Unable to read symbolic link target for %s: %v", entry.Path, err)
			}
		}
		if e.options.CollectMetadata {
			e.metadata(entry, content.path)
		}
		e.entries = append(e.entries, entry)

		// Only directories are candidates for recursion.
		if !entry.Directory {
			continue
		}

		// Directories at the maximum depth are emitted but not entered.
		if e.options.MaxDepth != nil && depth >= *e.options.MaxDepth {
			continue
		}

		// Symbolic links are only entered in follow mode.
		if entry.SymbolicLink && e.options.SymbolicLinkMode != SymbolicLinkModeFollow {
			continue
		}

		// Compute the directory identity and check whether or not it's already
		// open on the current traversal path.
		identity, err := filesystem.DirectoryIdentity(content.path)
		if err != nil {
			e.options.Logger.Warnf("Unable to identify directory %s: %v", entry.Path, err)
			continue
		}
		if e.open[identity] {
			entry.SymbolicLinkCycle = entry.SymbolicLink
			e.options.Logger.Debugf("Suppressing cyclic directory %s", entry.Path)
			continue
		}

		// Recurse.
		e.open[identity] = true
		err = e.directory(content.path, entry.Path, depth+1)
		delete(e.open, identity)
		if err != nil {
			return err
		}
	}

	// Success.
	return nil
}

// ResolveRoot computes the absolute path of a scan root with symbolic links
// resolved and verifies that it's a directory. Failures wrap
// ErrRootInaccessible.
func ResolveRoot(root string) (string, error) {
	absolute, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("%w: unable to compute absolute path: %v", ErrRootInaccessible, err)
	}
	resolved, err := filepath.EvalSymlinks(absolute)
	if err != nil {
		return "", fmt.Errorf("%w: unable to resolve path: %v", ErrRootInaccessible, err)
	}
	if metadata, err := os.Stat(resolved); err != nil {
		return "", fmt.Errorf("%w: unable to query metadata: %v", ErrRootInaccessible, err)
	} else if !metadata.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", ErrRootInaccessible, resolved)
	}
	return resolved, nil
}

// Enumerate walks the directory tree rooted at root and returns the resolved
// absolute root path, the flat list of entries in traversal order (each
// directory followed immediately by its descendants), and the effective maximum
// depth. The scan root itself is not included in the entry list. Failure to
// access the root is reported as an error wrapping ErrRootInaccessible. Errors
// on individual entries are logged and the entries degraded or skipped.
func Enumerate(ctx context.Context, root string, options *EnumerationOptions) (string, []*Entry, *int, error) {
	// Resolve options.
	var resolved EnumerationOptions
	if options != nil {
		resolved = *options
	}
	if resolved.SymbolicLinkMode.IsDefault() {
		resolved.SymbolicLinkMode = SymbolicLinkModeShow
	} else if !resolved.SymbolicLinkMode.Supported() {
		return "", nil, nil, errors.New("unsupported symbolic link mode")
	}
	if resolved.MaxDepth != nil && *resolved.MaxDepth < 0 {
		return "", nil, nil, errors.New("maximum depth must be non-negative")
	}
	if resolved.Less == nil {
		resolved.Less = DefaultLess
	}

	// Resolve the scan root.
	resolvedRoot, err := ResolveRoot(root)
	if err != nil {
		return "", nil, nil, err
	}

	// Seed the open set with the scan root.
	identity, err := filesystem.DirectoryIdentity(resolvedRoot)
	if err != nil {
		return "", nil, nil, fmt.Errorf("%w: %v", ErrRootInaccessible, err)
	}
	e := &enumerator{
		ctx:     ctx,
		options: resolved,
		open:    map[filesystem.Identity]bool{identity: true},
		caser:   cases.Fold(),
	}

	// Walk the tree unless the depth limit excludes everything.
	start := time.Now()
	if resolved.MaxDepth == nil || *resolved.MaxDepth > 0 {
		if err := e.directory(resolvedRoot, RootPath, 1); err != nil {
			return "", nil, nil, err
		}
	}
	resolved.Logger.Debugf("Enumerated %d entries under %s in %s",
		len(e.entries), resolvedRoot, time.Since(start),
	)

	// Success.
	return resolvedRoot, e.entries, resolved.MaxDepth, nil
}
