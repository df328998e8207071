//go:build !windows && !plan9

package filesystem

import (
	"github.com/pkg/errors"

	"golang.org/x/sys/unix"
)

// DirectoryIdentity computes the identity of the directory at the specified
// path, following symbolic links. The device and inode pair is used when the
// filesystem reports both, otherwise the canonical path is used.
func DirectoryIdentity(path string) (Identity, error) {
	// Query metadata.
	var metadata unix.Stat_t
	if err := unix.Stat(path, &metadata); err != nil {
		return Identity{}, errors.Wrap(err, "unable to query directory metadata")
	}

	// Use the device and inode if both are available.
	if metadata.Dev != 0 && metadata.Ino != 0 {
		return Identity{
			Device: uint64(metadata.Dev),
			Inode:  uint64(metadata.Ino),
		}, nil
	}

	// Fall back to the canonical path.
	return pathIdentity(path)
}
