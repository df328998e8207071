// Package mapping provides the path2map pipeline, which composes traversal,
// exclusion, include filtering, and tree construction into a single operation.
package mapping

import (
	"context"
	"errors"
	"fmt"

	"github.com/path2map/path2map/pkg/logging"
	"github.com/path2map/path2map/pkg/mapping/core"
	"github.com/path2map/path2map/pkg/mapping/filter"
	"github.com/path2map/path2map/pkg/mapping/ignore"
)

// Options encodes the settings for a pipeline run.
type Options struct {
	// Directory is the directory to scan. If empty, the current working
	// directory is scanned.
	Directory string
	// MaxDepth is the maximum entry depth, or nil for unlimited depth.
	MaxDepth *int
	// FollowSymbolicLinks requests follow mode when SymbolicLinkMode is the
	// default mode.
	FollowSymbolicLinks bool
	// SymbolicLinkMode is the explicit symbolic link mode. If non-default, it
	// takes precedence over FollowSymbolicLinks.
	SymbolicLinkMode core.SymbolicLinkMode
	// Ignore is the exclusion configuration.
	Ignore ignore.Configuration
	// Filters are include filter expressions.
	Filters []string
	// CollectMetadata indicates whether or not sizes and modification times
	// should be collected.
	CollectMetadata bool
	// Less is the directory listing order, or nil for the default order.
	Less core.LessFunc
	// Progress is an optional traversal progress callback.
	Progress func(entries int, path string)
	// Logger is the logger for the run. It may be nil.
	Logger *logging.Logger
}

// EnsureValid ensures that the options are valid. It doesn't access the
// filesystem.
func (o *Options) EnsureValid() error {
	// A nil options object is not considered valid.
	if o == nil {
		return errors.New("nil options")
	}

	// Verify the maximum depth.
	if o.MaxDepth != nil && *o.MaxDepth < 0 {
		return errors.New("maximum depth must be non-negative")
	}

	// Verify the symbolic link mode.
	if !o.SymbolicLinkMode.IsDefault() && !o.SymbolicLinkMode.Supported() {
		return errors.New("unknown or unsupported symbolic link mode")
	}

	// Verify the exclusion configuration.
	if err := o.Ignore.EnsureValid(); err != nil {
		return fmt.Errorf("invalid ignore configuration: %w", err)
	}

	// Verify filters.
	if _, err := filter.CompilePatterns(o.Filters); err != nil {
		return err
	}

	// Success.
	return nil
}

// ResolveSymbolicLinkMode computes the effective symbolic link mode. An
// explicit mode wins; otherwise follow mode is used if requested, falling back
// to show mode.
func (o *Options) ResolveSymbolicLinkMode() core.SymbolicLinkMode {
	if !o.SymbolicLinkMode.IsDefault() {
		return o.SymbolicLinkMode
	} else if o.FollowSymbolicLinks {
		return core.SymbolicLinkModeFollow
	}
	return core.SymbolicLinkModeShow
}

// BuildLogicalTree runs the full pipeline: it validates options, enumerates the
// directory tree, applies exclusion stages and include filters, and builds the
// resulting tree from the surviving entries.
func BuildLogicalTree(ctx context.Context, options *Options) (*core.Model, error) {
	// Validate options.
	if err := options.EnsureValid(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := options.Logger
	expressions, err := filter.CompilePatterns(options.Filters)
	if err != nil {
		return nil, err
	}

	// Resolve the scan root and load exclusion rules from it. This happens
	// before enumeration so that rules file problems surface before scanning.
	directory := options.Directory
	if directory == "" {
		directory = "."
	}
	scanRoot, err := core.ResolveRoot(directory)
	if err != nil {
		return nil, fmt.Errorf("unable to scan directory: %w", err)
	}
	ignorer, err := ignore.NewIgnorer(scanRoot, &options.Ignore, logger.Sublogger("ignore"))
	if err != nil {
		return nil, fmt.Errorf("unable to create ignorer: %w", err)
	}

	// Enumerate entries.
	scanRoot, entries, maxDepth, err := core.Enumerate(ctx, scanRoot, &core.EnumerationOptions{
		MaxDepth:         options.MaxDepth,
		SymbolicLinkMode: options.ResolveSymbolicLinkMode(),
		Less:             options.Less,
		CollectMetadata:  options.CollectMetadata,
		Progress:         options.Progress,
		Logger:           logger.Sublogger("scan"),
	})
	if err != nil {
		return nil, fmt.Errorf("unable to scan directory: %w", err)
	}

	// Apply exclusion stages.
	remaining := ignorer.Filter(core.PathEntries(entries))
	logger.Debugf("%d of %d entries remain after exclusion", len(remaining), len(entries))

	// Apply include filters.
	remaining = filter.FilterWithAncestors(remaining, expressions)
	logger.Debugf("%d entries remain after filtering", len(remaining))

	// Retain the original traversal entries that survived.
	kept := make(map[string]bool, len(remaining))
	for _, entry := range remaining {
		kept[entry.Path] = true
	}
	survivors := make([]*core.Entry, 0, len(remaining))
	for _, entry := range entries {
		if kept[entry.Path] {
			survivors = append(survivors, entry)
		}
	}

	// Build the tree.
	model, err := core.Build(scanRoot, survivors, maxDepth)
	if err != nil {
		return nil, err
	}
	return model, nil
}
