// Package configuration provides loading facilities for path2map's YAML
// configuration files, which supply defaults for command line flags.
package configuration
