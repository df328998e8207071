package filesystem

import (
	"os"

	"github.com/pkg/errors"
)

// HomeDirectory computes the current user's home directory.
func HomeDirectory() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "unable to determine home directory")
	} else if home == "" {
		return "", errors.New("empty home directory")
	}
	return home, nil
}
