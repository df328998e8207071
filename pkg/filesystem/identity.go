package filesystem

import (
	"path/filepath"

	"github.com/pkg/errors"
)

// Identity uniquely identifies a directory for the purpose of cycle detection.
// It holds either a device and inode pair or, on platforms (or filesystems)
// without inode semantics, the canonical path of the directory. It is
// comparable and thus suitable for use as a map key.
type Identity struct {
	// Device is the device ID. It is only meaningful if Path is empty.
	Device uint64
	// Inode is the inode number. It is only meaningful if Path is empty.
	Inode uint64
	// Path is the canonical path fallback. If non-empty, the identity is
	// path-based.
	Path string
}

// PathBased returns whether or not the identity uses the canonical path
// fallback.
func (i Identity) PathBased() bool {
	return i.Path != ""
}

// pathIdentity computes a path-based identity for a directory.
func pathIdentity(path string) (Identity, error) {
	absolute, err := filepath.Abs(path)
	if err != nil {
		return Identity{}, errors.Wrap(err, "unable to compute absolute path")
	}
	canonical, err := filepath.EvalSymlinks(absolute)
	if err != nil {
		return Identity{}, errors.Wrap(err, "unable to resolve symbolic links")
	}
	return Identity{Path: canonical}, nil
}
