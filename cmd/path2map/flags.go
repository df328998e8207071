package main

import (
	"errors"
	"fmt"

	"github.com/path2map/path2map/pkg/configuration"
	"github.com/path2map/path2map/pkg/mapping/core"
)

// rootFlags stores the raw command line flags for the root command.
type rootFlags struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// directory is the directory specified with --directory.
	directory string
	// output is the output file or directory path.
	output string
	// stdout forces printing even when writing to a file.
	stdout bool
	// outputType is the output format specification.
	outputType string
	// maxDepth is the maximum depth. It's only meaningful if maxDepthSet is
	// true.
	maxDepth int
	// maxDepthSet indicates whether or not the maximum depth was specified.
	maxDepthSet bool
	// followSymlinks requests follow mode if no explicit mode is given.
	followSymlinks bool
	// symlinks is the symbolic link mode specification.
	symlinks string
	// noDefaultIgnores disables the built-in ignore patterns.
	noDefaultIgnores bool
	// noIgnoreFile disables the rules file.
	noIgnoreFile bool
	// ignoreFile is an alternate rules file path.
	ignoreFile string
	// ignore is a comma-separated list of exclusion regular expressions.
	ignore string
	// filters are include filter regular expressions.
	filters []string
	// foldersOnly hides files.
	foldersOnly bool
	// sort sorts directories first and then by name.
	sort bool
	// comments marks empty directories.
	comments bool
	// emojis adds folder and file glyphs.
	emojis bool
	// color is the color mode specification.
	color string
	// theme is the theme specification.
	theme string
	// details is the details specification.
	details string
	// timeFormat is the strftime pattern for modification times.
	timeFormat string
	// sizeFormat is the size format specification.
	sizeFormat string
	// detailsStyle is the details style specification.
	detailsStyle string
	// noGlobalConfiguration disables loading of the global configuration file.
	noGlobalConfiguration bool
	// configurationFiles are additional configuration files.
	configurationFiles []string
	// logLevel is the logging level specification.
	logLevel string
}

// resolveDirectory determines the directory to map from the --directory flag
// and positional arguments.
func (f *rootFlags) resolveDirectory(arguments []string) (string, error) {
	if len(arguments) > 1 {
		return "", errors.New("at most one directory may be specified")
	} else if len(arguments) == 1 {
		if f.directory != "" && f.directory != arguments[0] {
			return "", errors.New("conflicting directories specified")
		}
		return arguments[0], nil
	} else if f.directory != "" {
		return f.directory, nil
	}
	return ".", nil
}

// configuration converts the flags into a configuration object, validating
// any enumeration specifications.
func (f *rootFlags) configuration() (*configuration.Configuration, error) {
	result := &configuration.Configuration{}

	// Convert output settings.
	if f.outputType != "" {
		if err := result.Output.Type.UnmarshalText([]byte(f.outputType)); err != nil {
			return nil, fmt.Errorf("unable to parse output type: %w", err)
		}
	}
	result.Output.Path = f.output
	result.Output.Stdout = f.stdout

	// Convert traversal settings. An explicit symbolic link mode takes
	// precedence over the follow shorthand.
	if f.maxDepthSet {
		if f.maxDepth < 0 {
			return nil, fmt.Errorf("invalid maximum depth: %d", f.maxDepth)
		}
		depth := f.maxDepth
		result.Scan.MaximumDepth = &depth
	}
	if f.symlinks != "" {
		if err := result.Scan.Symlinks.UnmarshalText([]byte(f.symlinks)); err != nil {
			return nil, fmt.Errorf("unable to parse symbolic link mode: %w", err)
		}
	} else if f.followSymlinks {
		result.Scan.Symlinks = core.SymbolicLinkModeFollow
	}

	// Convert exclusion settings.
	result.Ignore.NoDefaults = f.noDefaultIgnores
	result.Ignore.NoFile = f.noIgnoreFile
	result.Ignore.File = f.ignoreFile
	if f.ignore != "" {
		result.Ignore.Patterns = []string{f.ignore}
	}
	result.Filters = f.filters

	// Convert display settings.
	result.Display.FoldersOnly = f.foldersOnly
	result.Display.Sort = f.sort
	result.Display.Comments = f.comments
	result.Display.Emojis = f.emojis
	if f.color != "" {
		if err := result.Display.Color.UnmarshalText([]byte(f.color)); err != nil {
			return nil, fmt.Errorf("unable to parse color mode: %w", err)
		}
	}
	if f.theme != "" {
		if err := result.Display.Theme.UnmarshalText([]byte(f.theme)); err != nil {
			return nil, fmt.Errorf("unable to parse theme: %w", err)
		}
	}
	if f.details != "" {
		if err := result.Display.Details.UnmarshalText([]byte(f.details)); err != nil {
			return nil, fmt.Errorf("unable to parse details: %w", err)
		}
	}
	result.Display.TimeFormat = f.timeFormat
	if f.sizeFormat != "" {
		if err := result.Display.SizeFormat.UnmarshalText([]byte(f.sizeFormat)); err != nil {
			return nil, fmt.Errorf("unable to parse size format: %w", err)
		}
	}
	if f.detailsStyle != "" {
		if err := result.Display.DetailsStyle.UnmarshalText([]byte(f.detailsStyle)); err != nil {
			return nil, fmt.Errorf("unable to parse details style: %w", err)
		}
	}

	// Validate the result.
	if err := result.EnsureValid(); err != nil {
		return nil, err
	}

	// Success.
	return result, nil
}

// loadConfiguration computes the cumulative configuration from the global
// configuration file (unless disabled), any additional configuration files,
// and the command line, in increasing order of priority.
func (f *rootFlags) loadConfiguration() (*configuration.Configuration, error) {
	// Create an empty configuration that will form the basis of our
	// cumulative configuration.
	result := &configuration.Configuration{}

	// Unless disabled, attempt to load configuration from the global
	// configuration file and merge it into our cumulative configuration.
	if !f.noGlobalConfiguration {
		globalConfigurationPath, err := configuration.GlobalConfigurationPath()
		if err != nil {
			return nil, fmt.Errorf("unable to compute path to global configuration file: %w", err)
		}
		global, err := configuration.LoadOptional(globalConfigurationPath)
		if err != nil {
			return nil, fmt.Errorf("unable to load global configuration: %w", err)
		}
		result = configuration.Merge(result, global)
	}

	// If additional configuration files have been specified, then load them
	// and merge them into the cumulative configuration.
	for _, path := range f.configurationFiles {
		c, err := configuration.Load(path)
		if err != nil {
			return nil, fmt.Errorf("unable to load configuration file (%s): %w", path, err)
		}
		result = configuration.Merge(result, c)
	}

	// Merge in command line settings.
	flags, err := f.configuration()
	if err != nil {
		return nil, err
	}
	return configuration.Merge(result, flags), nil
}
