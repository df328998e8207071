// Package output routes rendered content to standard output and files.
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/path2map/path2map/pkg/filesystem"
	"github.com/path2map/path2map/pkg/logging"
	"github.com/path2map/path2map/pkg/mapping/render"
)

const (
	// namePrefix is the prefix for generated output file names.
	namePrefix = "path2map_"
	// timestampLayout is the time layout used in generated output file names.
	timestampLayout = "2006-01-02_150405"
	// filePermissions are the permissions used for output files.
	filePermissions = 0644
)

// Options controls output routing.
type Options struct {
	// Format is the format of the content, used to name generated files.
	Format render.Format
	// Path is the output path. If empty, content is written only to the
	// stream. If it names an existing directory, a timestamped file is created
	// inside it.
	Path string
	// Stdout forces content to be written to the stream even when Path is set.
	Stdout bool
	// Stream is the destination for printed content. If nil, os.Stdout is
	// used.
	Stream io.Writer
	// Now provides the current time for generated file names. If nil,
	// time.Now is used.
	Now func() time.Time
	// Logger is the logger used for cleanup failures.
	Logger *logging.Logger
}

// TimestampedName generates the name for an output file created inside a
// directory.
func TimestampedName(format render.Format, now time.Time) string {
	return namePrefix + now.Format(timestampLayout) + "." + format.Extension()
}

// ResolvePath computes the final path for an output file. Existing
// directories receive a timestamped file name; any other path is used as-is.
func ResolvePath(path string, format render.Format, now time.Time) string {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return filepath.Join(path, TimestampedName(format, now))
	}
	return path
}

// Route writes content to the configured destinations and returns the paths
// of any files written. Printed content is followed by a newline, while file
// content is written verbatim.
func Route(content string, options *Options) ([]string, error) {
	// Resolve defaults.
	stream := options.Stream
	if stream == nil {
		stream = os.Stdout
	}
	now := options.Now
	if now == nil {
		now = time.Now
	}

	// Print content if requested or if there's no file destination.
	if options.Stdout || options.Path == "" {
		if _, err := fmt.Fprintln(stream, content); err != nil {
			return nil, fmt.Errorf("unable to print output: %w", err)
		}
	}

	// If there's no file destination, then we're done.
	if options.Path == "" {
		return nil, nil
	}

	// Write the file.
	path := ResolvePath(options.Path, options.Format, now())
	if err := filesystem.WriteFileAtomic(path, []byte(content), filePermissions, options.Logger); err != nil {
		return nil, fmt.Errorf("unable to write output file: %w", err)
	}

	// Success.
	return []string{path}, nil
}
