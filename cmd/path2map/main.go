package main

import (
	"github.com/spf13/cobra"

	"github.com/path2map/path2map/cmd"
	"github.com/path2map/path2map/pkg/mapping/render"
	"github.com/path2map/path2map/pkg/path2map"
)

// rootCommand is the root command.
var rootCommand = &cobra.Command{
	Use:   "path2map [<directory>]",
	Short: "Map a directory tree to text, Markdown, JSON, CSV, HTML, or YAML",
	Long: `Map a directory tree to text, Markdown, JSON, CSV, HTML, or YAML.

Entries are excluded in four stages: built-in default patterns (such as .git/
and node_modules/), glob rules from the .p2mignore file in the scanned
directory, regular expressions passed with --ignore, and finally include
filters passed with --filter, which keep matching entries and their ancestor
directories.`,
	Version:       path2map.Version,
	Args:          cobra.MaximumNArgs(1),
	RunE:          rootMain,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// rootConfiguration stores configuration for the root command.
var rootConfiguration rootFlags

func init() {
	// Disable Cobra's command sorting behavior. By default, it sorts commands
	// alphabetically in the help output.
	cobra.EnableCommandSorting = false

	// Disable Cobra's use of mousetrap, which would prevent launching from
	// Explorer on Windows.
	cobra.MousetrapHelpText = ""

	// Disable Cobra's default completion command. Completion scripts are
	// generated by the hidden generate command instead.
	rootCommand.CompletionOptions.DisableDefaultCmd = true

	// Set the template used by the version flag.
	rootCommand.SetVersionTemplate("path2map version {{ .Version }}\n")

	// Grab a handle for the command line flags.
	flags := rootCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&rootConfiguration.help, "help", "h", false, "Show help information")

	// Wire up target and output flags.
	flags.StringVar(&rootConfiguration.directory, "directory", "", "Specify the directory to map (defaults to the current directory)")
	flags.StringVarP(&rootConfiguration.output, "output", "o", "", "Write output to a file, or to a timestamped file inside a directory")
	flags.BoolVar(&rootConfiguration.stdout, "stdout", false, "Print output even when writing to a file")
	flags.StringVarP(&rootConfiguration.outputType, "type", "t", "", "Specify the output type ("+render.FormatOptions+")")

	// Wire up traversal flags.
	flags.IntVarP(&rootConfiguration.maxDepth, "max-depth", "D", 0, "Limit the depth of entries (0 shows only the root)")
	flags.BoolVar(&rootConfiguration.followSymlinks, "follow-symlinks", false, "Follow symbolic links to directories (shorthand for --symlinks=follow)")
	flags.StringVar(&rootConfiguration.symlinks, "symlinks", "", "Specify symbolic link handling (skip|show|follow)")

	// Wire up exclusion flags.
	flags.BoolVar(&rootConfiguration.noDefaultIgnores, "no-default-ignores", false, "Disable the built-in ignore patterns")
	flags.BoolVar(&rootConfiguration.noIgnoreFile, "no-ignore-file", false, "Disable the .p2mignore file")
	flags.StringVar(&rootConfiguration.ignoreFile, "ignore-file", "", "Load ignore rules from the specified file instead of .p2mignore")
	flags.StringVarP(&rootConfiguration.ignore, "ignore", "i", "", "Exclude paths matching any of these comma-separated regular expressions")
	flags.StringArrayVarP(&rootConfiguration.filters, "filter", "F", nil, "Include only paths matching this regular expression, plus their ancestors (repeatable)")

	// Wire up display flags.
	flags.BoolVarP(&rootConfiguration.foldersOnly, "folders-only", "f", false, "Show only directories")
	flags.BoolVarP(&rootConfiguration.sort, "sort", "s", false, "Sort directories first, then by name")
	flags.BoolVarP(&rootConfiguration.comments, "comments", "c", false, "Mark empty directories")
	flags.BoolVar(&rootConfiguration.emojis, "emojis", false, "Prefix entries with folder and file emojis")
	flags.StringVar(&rootConfiguration.color, "color", "", "Specify color usage (auto|always|never)")
	flags.StringVar(&rootConfiguration.theme, "theme", "", "Specify the color theme (default|mono|ocean)")
	flags.StringVar(&rootConfiguration.details, "details", "", "Show metadata (none|size|mtime|size,mtime)")
	flags.StringVar(&rootConfiguration.timeFormat, "time-format", "", "Specify the strftime format for modification times (default \""+render.DefaultTimeFormat+"\")")
	flags.StringVar(&rootConfiguration.sizeFormat, "size-format", "", "Specify the size unit base (binary|decimal)")
	flags.StringVar(&rootConfiguration.detailsStyle, "details-style", "", "Specify the metadata layout (inline|columns)")

	// Wire up general configuration flags.
	flags.BoolVar(&rootConfiguration.noGlobalConfiguration, "no-global-configuration", false, "Ignore the global configuration file")
	flags.StringArrayVar(&rootConfiguration.configurationFiles, "configuration-file", nil, "Load (and merge) default settings from the specified file (repeatable)")
	flags.StringVar(&rootConfiguration.logLevel, "log-level", "", "Set the logging level (disabled|error|warn|info|debug|trace)")

	// Register commands. We do this here (rather than in individual init
	// functions) so that we can control the order.
	rootCommand.AddCommand(
		versionCommand,
		legalCommand,
		generateCommand,
	)
}

func main() {
	// Execute the root command.
	if err := rootCommand.Execute(); err != nil {
		cmd.Fatal(err)
	}
}
