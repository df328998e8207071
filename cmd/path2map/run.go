package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/path2map/path2map/cmd"
	"github.com/path2map/path2map/pkg/configuration"
	"github.com/path2map/path2map/pkg/logging"
	"github.com/path2map/path2map/pkg/mapping"
	"github.com/path2map/path2map/pkg/mapping/core"
	"github.com/path2map/path2map/pkg/mapping/ignore"
	"github.com/path2map/path2map/pkg/mapping/output"
	"github.com/path2map/path2map/pkg/mapping/render"
)

// statusUpdateInterval is the minimum interval between status line updates.
const statusUpdateInterval = 100 * time.Millisecond

// mappingOptions converts a configuration into pipeline options.
func mappingOptions(directory string, settings *configuration.Configuration, logger *logging.Logger) *mapping.Options {
	return &mapping.Options{
		Directory:        directory,
		MaxDepth:         settings.Scan.MaximumDepth,
		SymbolicLinkMode: settings.Scan.Symlinks,
		Ignore: ignore.Configuration{
			DisableDefaults:  settings.Ignore.NoDefaults,
			DisableRulesFile: settings.Ignore.NoFile,
			RulesFilePath:    settings.Ignore.File,
			CLIIgnore:        strings.Join(settings.Ignore.Patterns, ","),
		},
		Filters:         settings.Filters,
		CollectMetadata: settings.Display.Details.RequiresMetadata(),
		Logger:          logger,
	}
}

// renderOptions converts a configuration into rendering options.
func renderOptions(settings *configuration.Configuration, terminal bool) *render.Options {
	return &render.Options{
		FoldersOnly:  settings.Display.FoldersOnly,
		Sort:         settings.Display.Sort,
		Comments:     settings.Display.Comments,
		Emojis:       settings.Display.Emojis,
		Details:      settings.Display.Details,
		TimeFormat:   settings.Display.TimeFormat,
		SizeFormat:   settings.Display.SizeFormat,
		DetailsStyle: settings.Display.DetailsStyle,
		Color:        settings.Display.Color,
		Theme:        settings.Display.Theme,
		Terminal:     terminal,
	}
}

// execution encapsulates the parameters for mapping a directory.
type execution struct {
	// directory is the directory to map.
	directory string
	// settings is the cumulative configuration.
	settings *configuration.Configuration
	// stdout is the destination for printed output.
	stdout io.Writer
	// terminal indicates whether or not stdout is a terminal.
	terminal bool
	// progress is an optional traversal progress callback.
	progress func(entries int, path string)
	// logger is the logger for the execution.
	logger *logging.Logger
}

// run maps the directory, renders the result, and routes it to its
// destinations. It returns the paths of any files written.
func (e *execution) run(ctx context.Context) ([]string, error) {
	// Build the logical tree.
	options := mappingOptions(e.directory, e.settings, e.logger)
	options.Progress = e.progress
	model, err := mapping.BuildLogicalTree(ctx, options)
	if err != nil {
		return nil, err
	}

	// Render the tree. Colorization is only considered when output is solely
	// printed.
	format := e.settings.Output.Type.Resolve()
	terminal := e.terminal && e.settings.Output.Path == ""
	content, err := render.Render(model, format, renderOptions(e.settings, terminal))
	if err != nil {
		return nil, fmt.Errorf("unable to render output: %w", err)
	}

	// Route the output.
	return output.Route(content, &output.Options{
		Format: format,
		Path:   e.settings.Output.Path,
		Stdout: e.settings.Output.Stdout,
		Stream: e.stdout,
		Logger: e.logger.Sublogger("output"),
	})
}

// progressReporter returns a traversal progress callback that prints
// throttled updates to a status line.
func progressReporter(printer *cmd.StatusLinePrinter) func(int, string) {
	var last time.Time
	return func(entries int, path string) {
		if now := time.Now(); now.Sub(last) >= statusUpdateInterval {
			last = now
			printer.Print(fmt.Sprintf("Scanning: %d entries (%s)", entries, path))
		}
	}
}

// rootMain is the entry point for the root command.
func rootMain(command *cobra.Command, arguments []string) error {
	// Configure logging.
	logger := logging.RootLogger
	if rootConfiguration.logLevel != "" {
		level, ok := logging.NameToLevel(rootConfiguration.logLevel)
		if !ok {
			return fmt.Errorf("invalid log level: %s", rootConfiguration.logLevel)
		}
		logger.SetLevel(level)
	}

	// Determine the directory to map.
	directory, err := rootConfiguration.resolveDirectory(arguments)
	if err != nil {
		return err
	}

	// Warn if the follow shorthand is overridden.
	if rootConfiguration.followSymlinks && rootConfiguration.symlinks != "" && rootConfiguration.symlinks != "follow" {
		cmd.Warning("--follow-symlinks is overridden by --symlinks")
	}

	// Compute the cumulative configuration.
	rootConfiguration.maxDepthSet = command.Flags().Changed("max-depth")
	settings, err := rootConfiguration.loadConfiguration()
	if err != nil {
		return err
	}

	// Set up the execution. Progress is only shown if standard error is a
	// terminal.
	job := &execution{
		directory: directory,
		settings:  settings,
		stdout:    os.Stdout,
		terminal:  cmd.IsTerminal(os.Stdout),
		logger:    logger,
	}
	statusLinePrinter := &cmd.StatusLinePrinter{}
	if cmd.IsTerminal(os.Stderr) && !cmd.PerformingShellCompletion {
		job.progress = progressReporter(statusLinePrinter)
	}

	// Create a cancellable context for the run and wire up termination signals
	// to its cancellation.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	signalTermination := make(chan os.Signal, 1)
	signal.Notify(signalTermination, cmd.TerminationSignals...)
	defer signal.Stop(signalTermination)

	// Run in a background Goroutine so that we can monitor for termination.
	type result struct {
		written []string
		err     error
	}
	results := make(chan result, 1)
	go func() {
		written, err := job.run(ctx)
		results <- result{written, err}
	}()

	// Wait for completion or termination.
	var outcome result
	select {
	case outcome = <-results:
	case sig := <-signalTermination:
		cancel()
		<-results
		if job.progress != nil {
			statusLinePrinter.Clear()
		}
		return fmt.Errorf("terminated by signal: %s", sig)
	}

	// Clear the status line, if any.
	if job.progress != nil {
		statusLinePrinter.Clear()
	}

	// Handle errors.
	if outcome.err != nil {
		if errors.Is(outcome.err, core.ErrRootInaccessible) {
			return fmt.Errorf("unable to map %s: %w", directory, outcome.err)
		}
		return outcome.err
	}

	// Report written files.
	for _, path := range outcome.written {
		logger.Infof("Wrote %s", path)
	}

	// Success.
	return nil
}
