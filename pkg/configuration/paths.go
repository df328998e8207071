package configuration

import (
	"path/filepath"

	"github.com/path2map/path2map/pkg/filesystem"
)

const (
	// GlobalConfigurationName is the name of the global configuration file
	// inside the user's home directory.
	GlobalConfigurationName = ".path2map.yml"
)

// GlobalConfigurationPath returns the path of the YAML-based global
// configuration file. It does not verify that the file exists.
func GlobalConfigurationPath() (string, error) {
	// Compute the path to the user's home directory.
	homeDirectoryPath, err := filesystem.HomeDirectory()
	if err != nil {
		return "", err
	}

	// Success.
	return filepath.Join(homeDirectoryPath, GlobalConfigurationName), nil
}
