package filesystem

import (
	"os"

	"github.com/pkg/errors"
)

// DirectoryIdentity computes the identity of the directory at the specified
// path, following symbolic links. Windows lacks a portable inode concept that
// is exposed through os.FileInfo, so the canonical path is always used.
func DirectoryIdentity(path string) (Identity, error) {
	if _, err := os.Stat(path); err != nil {
		return Identity{}, errors.Wrap(err, "unable to query directory metadata")
	}
	return pathIdentity(path)
}
