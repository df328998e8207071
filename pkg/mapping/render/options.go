package render

import (
	"errors"
	"fmt"

	"github.com/lestrrat-go/strftime"
)

// DefaultTimeFormat is the default strftime pattern for modification times.
const DefaultTimeFormat = "%Y-%m-%d %H:%M"

// Options controls rendering. The zero value renders a plain, uncolored tree
// in model order without metadata.
type Options struct {
	// FoldersOnly omits file nodes from tree-shaped output.
	FoldersOnly bool
	// Sort re-orders children with directories first, then by case-folded
	// name.
	Sort bool
	// Comments marks empty non-root directories.
	Comments bool
	// Emojis prefixes labels with folder and file glyphs.
	Emojis bool
	// Details selects the metadata to display.
	Details Details
	// TimeFormat is the strftime pattern used for modification times. If
	// empty, DefaultTimeFormat is used.
	TimeFormat string
	// SizeFormat selects the unit base for human-readable sizes.
	SizeFormat SizeFormat
	// DetailsStyle selects how metadata is laid out in text output.
	DetailsStyle DetailsStyle
	// Color controls colorization of text output.
	Color ColorMode
	// Theme selects the palette for colorized text output.
	Theme Theme
	// Terminal indicates whether or not output is destined for a terminal.
	// It's only consulted in automatic color mode.
	Terminal bool
}

// EnsureValid ensures that the options are valid.
func (o *Options) EnsureValid() error {
	// A nil options object is valid and represents the defaults.
	if o == nil {
		return nil
	}

	// Validate enumerations. Default values are always allowed.
	if !(o.Details.IsDefault() || o.Details.Supported()) {
		return errors.New("unknown details mode")
	} else if !(o.SizeFormat.IsDefault() || o.SizeFormat.Supported()) {
		return errors.New("unknown size format")
	} else if !(o.DetailsStyle.IsDefault() || o.DetailsStyle.Supported()) {
		return errors.New("unknown details style")
	} else if !(o.Color.IsDefault() || o.Color.Supported()) {
		return errors.New("unknown color mode")
	} else if !(o.Theme.IsDefault() || o.Theme.Supported()) {
		return errors.New("unknown theme")
	}

	// Validate the time format.
	if o.TimeFormat != "" {
		if _, err := strftime.New(o.TimeFormat); err != nil {
			return fmt.Errorf("invalid time format: %w", err)
		}
	}

	// Success.
	return nil
}

// state is the resolved form of rendering options shared by renderers.
type state struct {
	// options are the original options, never nil.
	options *Options
	// timeFormatter formats modification times.
	timeFormatter *strftime.Strftime
	// palette is the color palette for text output.
	palette *palette
}

// newState validates options and resolves them for rendering.
func newState(options *Options, colorize bool) (*state, error) {
	// Use defaults if no options were provided.
	if options == nil {
		options = &Options{}
	}

	// Validate options.
	if err := options.EnsureValid(); err != nil {
		return nil, fmt.Errorf("invalid render options: %w", err)
	}

	// Compile the time format.
	timeFormat := options.TimeFormat
	if timeFormat == "" {
		timeFormat = DefaultTimeFormat
	}
	timeFormatter, err := strftime.New(timeFormat)
	if err != nil {
		return nil, fmt.Errorf("unable to compile time format: %w", err)
	}

	// Done.
	return &state{
		options:       options,
		timeFormatter: timeFormatter,
		palette:       options.Theme.palette(colorize && options.Color.Enabled(options.Terminal)),
	}, nil
}
