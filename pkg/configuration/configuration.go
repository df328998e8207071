package configuration

import (
	"fmt"
	"os"

	"github.com/path2map/path2map/pkg/encoding"
	"github.com/path2map/path2map/pkg/mapping/core"
	"github.com/path2map/path2map/pkg/mapping/render"
)

// Configuration is the YAML configuration object type. Zero values indicate
// that a setting is unspecified.
type Configuration struct {
	// Output contains parameters related to output routing.
	Output struct {
		// Type specifies the output format.
		Type render.Format `yaml:"type"`
		// Path specifies the output file or directory.
		Path string `yaml:"path"`
		// Stdout specifies that output should be printed even when written to
		// a file.
		Stdout bool `yaml:"stdout"`
	} `yaml:"output"`
	// Scan contains parameters related to traversal.
	Scan struct {
		// MaximumDepth specifies the maximum traversal depth.
		MaximumDepth *int `yaml:"maxDepth"`
		// Symlinks specifies the symbolic link mode.
		Symlinks core.SymbolicLinkMode `yaml:"symlinks"`
	} `yaml:"scan"`
	// Ignore contains parameters related to exclusion.
	Ignore struct {
		// NoDefaults disables the built-in ignore patterns.
		NoDefaults bool `yaml:"noDefaults"`
		// NoFile disables loading of the ignore rules file.
		NoFile bool `yaml:"noFile"`
		// File specifies an alternate ignore rules file.
		File string `yaml:"file"`
		// Patterns specifies regular expressions for paths to exclude.
		Patterns []string `yaml:"patterns"`
	} `yaml:"ignore"`
	// Filters specifies regular expressions for paths to include.
	Filters []string `yaml:"filters"`
	// Display contains parameters related to rendering.
	Display struct {
		// FoldersOnly hides files.
		FoldersOnly bool `yaml:"foldersOnly"`
		// Sort sorts directories first and then by name.
		Sort bool `yaml:"sort"`
		// Comments marks empty directories.
		Comments bool `yaml:"comments"`
		// Emojis adds folder and file glyphs.
		Emojis bool `yaml:"emojis"`
		// Color specifies the color mode.
		Color render.ColorMode `yaml:"color"`
		// Theme specifies the color theme.
		Theme render.Theme `yaml:"theme"`
		// Details specifies the metadata to display.
		Details render.Details `yaml:"details"`
		// TimeFormat specifies the strftime pattern for modification times.
		TimeFormat string `yaml:"timeFormat"`
		// SizeFormat specifies the unit base for sizes.
		SizeFormat render.SizeFormat `yaml:"sizeFormat"`
		// DetailsStyle specifies the metadata layout.
		DetailsStyle render.DetailsStyle `yaml:"detailsStyle"`
	} `yaml:"display"`
}

// EnsureValid ensures that the configuration is valid.
func (c *Configuration) EnsureValid() error {
	// A nil configuration is considered valid.
	if c == nil {
		return nil
	}

	// Validate settings that enumeration parsing doesn't cover.
	if c.Scan.MaximumDepth != nil && *c.Scan.MaximumDepth < 0 {
		return fmt.Errorf("invalid maximum depth: %d", *c.Scan.MaximumDepth)
	}
	renderOptions := &render.Options{TimeFormat: c.Display.TimeFormat}
	if err := renderOptions.EnsureValid(); err != nil {
		return err
	}

	// Success.
	return nil
}

// Load attempts to load a YAML-based configuration file from the specified
// path. If the file doesn't exist, os.IsNotExist errors are passed through.
func Load(path string) (*Configuration, error) {
	// Create the target configuration object.
	result := &Configuration{}

	// Attempt to load. We pass-through os.IsNotExist errors.
	if err := encoding.LoadAndUnmarshalYAML(path, result); err != nil {
		return nil, err
	}

	// Validate the result.
	if err := result.EnsureValid(); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", path, err)
	}

	// Success.
	return result, nil
}

// LoadOptional is a variant of Load that returns an empty configuration if the
// file doesn't exist.
func LoadOptional(path string) (*Configuration, error) {
	result, err := Load(path)
	if os.IsNotExist(err) {
		return &Configuration{}, nil
	}
	return result, err
}

// Merge merges two configurations, with settings specified in the higher
// priority configuration overriding those in the lower priority
// configuration. List settings are concatenated. Either argument may be nil.
func Merge(lower, higher *Configuration) *Configuration {
	// Handle nil cases.
	if lower == nil && higher == nil {
		return &Configuration{}
	} else if lower == nil {
		result := *higher
		return &result
	} else if higher == nil {
		result := *lower
		return &result
	}

	// Start with the lower priority configuration.
	result := *lower

	// Merge output settings.
	if !higher.Output.Type.IsDefault() {
		result.Output.Type = higher.Output.Type
	}
	if higher.Output.Path != "" {
		result.Output.Path = higher.Output.Path
	}
	result.Output.Stdout = result.Output.Stdout || higher.Output.Stdout

	// Merge scan settings.
	if higher.Scan.MaximumDepth != nil {
		depth := *higher.Scan.MaximumDepth
		result.Scan.MaximumDepth = &depth
	}
	if !higher.Scan.Symlinks.IsDefault() {
		result.Scan.Symlinks = higher.Scan.Symlinks
	}

	// Merge ignore settings.
	result.Ignore.NoDefaults = result.Ignore.NoDefaults || higher.Ignore.NoDefaults
	result.Ignore.NoFile = result.Ignore.NoFile || higher.Ignore.NoFile
	if higher.Ignore.File != "" {
		result.Ignore.File = higher.Ignore.File
	}
	result.Ignore.Patterns = concatenate(lower.Ignore.Patterns, higher.Ignore.Patterns)
	result.Filters = concatenate(lower.Filters, higher.Filters)

	// Merge display settings.
	result.Display.FoldersOnly = result.Display.FoldersOnly || higher.Display.FoldersOnly
	result.Display.Sort = result.Display.Sort || higher.Display.Sort
	result.Display.Comments = result.Display.Comments || higher.Display.Comments
	result.Display.Emojis = result.Display.Emojis || higher.Display.Emojis
	if !higher.Display.Color.IsDefault() {
		result.Display.Color = higher.Display.Color
	}
	if !higher.Display.Theme.IsDefault() {
		result.Display.Theme = higher.Display.Theme
	}
	if !higher.Display.Details.IsDefault() {
		result.Display.Details = higher.Display.Details
	}
	if higher.Display.TimeFormat != "" {
		result.Display.TimeFormat = higher.Display.TimeFormat
	}
	if !higher.Display.SizeFormat.IsDefault() {
		result.Display.SizeFormat = higher.Display.SizeFormat
	}
	if !higher.Display.DetailsStyle.IsDefault() {
		result.Display.DetailsStyle = higher.Display.DetailsStyle
	}

	// Done.
	return &result
}

// concatenate joins two string lists into a newly allocated list.
func concatenate(first, second []string) []string {
	if len(first)+len(second) == 0 {
		return nil
	}
	result := make([]string, 0, len(first)+len(second))
	result = append(result, first...)
	return append(result, second...)
}
