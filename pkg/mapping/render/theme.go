package render

import (
	"fmt"

	"github.com/fatih/color"
)

// Theme selects the color palette for colorized text output.
type Theme uint8

const (
	// ThemeDefault indicates that the default palette should be used.
	ThemeDefault Theme = iota
	// ThemeStandard is the standard palette, selected by name as "default".
	ThemeStandard
	// ThemeMono uses only text attributes (bold, faint, underline).
	ThemeMono
	// ThemeOcean uses blues and greens.
	ThemeOcean
)

// IsDefault indicates whether or not the theme is ThemeDefault.
func (t Theme) IsDefault() bool {
	return t == ThemeDefault
}

// MarshalText implements encoding.TextMarshaler.MarshalText.
func (t Theme) MarshalText() ([]byte, error) {
	var result string
	switch t {
	case ThemeDefault:
	case ThemeStandard:
		result = "default"
	case ThemeMono:
		result = "mono"
	case ThemeOcean:
		result = "ocean"
	default:
		result = "unknown"
	}
	return []byte(result), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.UnmarshalText.
func (t *Theme) UnmarshalText(textBytes []byte) error {
	// Convert the bytes to a string.
	text := string(textBytes)

	// Convert to a theme.
	switch text {
	case "default":
		*t = ThemeStandard
	case "mono":
		*t = ThemeMono
	case "ocean":
		*t = ThemeOcean
	default:
		return fmt.Errorf("unknown theme specification: %s", text)
	}

	// Success.
	return nil
}

// String implements fmt.Stringer.String.
func (t Theme) String() string {
	text, _ := t.MarshalText()
	return string(text)
}

// Supported indicates whether or not a particular theme is a valid,
// non-default value.
func (t Theme) Supported() bool {
	return t == ThemeStandard || t == ThemeMono || t == ThemeOcean
}

// palette holds the styles for each element of a colorized tree.
type palette struct {
	// directory styles directory names.
	directory *color.Color
	// file styles file names.
	file *color.Color
	// symbolicLink styles symbolic link names and targets.
	symbolicLink *color.Color
	// details styles metadata.
	details *color.Color
	// marker styles annotations such as empty folder and cycle markers.
	marker *color.Color
	// branch styles tree drawing characters.
	branch *color.Color
}

// newStyle creates a color with the specified attributes and explicit
// enablement, so that output doesn't depend on global terminal detection.
func newStyle(enabled bool, attributes ...color.Attribute) *color.Color {
	style := color.New(attributes...)
	if enabled {
		style.EnableColor()
	} else {
		style.DisableColor()
	}
	return style
}

// palette returns the palette for the theme.
func (t Theme) palette(enabled bool) *palette {
	switch t {
	case ThemeMono:
		return &palette{
			directory:    newStyle(enabled, color.Bold),
			file:         newStyle(enabled),
			symbolicLink: newStyle(enabled, color.Underline),
			details:      newStyle(enabled, color.Faint),
			marker:       newStyle(enabled, color.Italic),
			branch:       newStyle(enabled, color.Faint),
		}
	case ThemeOcean:
		return &palette{
			directory:    newStyle(enabled, color.Bold, color.FgHiCyan),
			file:         newStyle(enabled, color.FgHiWhite),
			symbolicLink: newStyle(enabled, color.FgHiGreen),
			details:      newStyle(enabled, color.FgBlue),
			marker:       newStyle(enabled, color.FgHiBlue),
			branch:       newStyle(enabled, color.FgCyan),
		}
	default:
		return &palette{
			directory:    newStyle(enabled, color.Bold, color.FgBlue),
			file:         newStyle(enabled),
			symbolicLink: newStyle(enabled, color.FgCyan),
			details:      newStyle(enabled, color.FgHiBlack),
			marker:       newStyle(enabled, color.FgYellow),
			branch:       newStyle(enabled, color.FgHiBlack),
		}
	}
}
