package render

import (
	"fmt"
	"os"
)

// ColorMode selects whether or not text output is colorized.
type ColorMode uint8

const (
	// ColorModeDefault indicates that the default mode (auto) should be used.
	ColorModeDefault ColorMode = iota
	// ColorModeAuto colorizes output only when it's destined for a terminal
	// and the NO_COLOR environment variable is unset or empty.
	ColorModeAuto
	// ColorModeAlways always colorizes output.
	ColorModeAlways
	// ColorModeNever never colorizes output.
	ColorModeNever
)

// IsDefault indicates whether or not the mode is ColorModeDefault.
func (m ColorMode) IsDefault() bool {
	return m == ColorModeDefault
}

// Enabled indicates whether or not color should be used, given whether or not
// the output destination is a terminal.
func (m ColorMode) Enabled(terminal bool) bool {
	switch m {
	case ColorModeAlways:
		return true
	case ColorModeNever:
		return false
	default:
		return terminal && os.Getenv("NO_COLOR") == ""
	}
}

// MarshalText implements encoding.TextMarshaler.MarshalText.
func (m ColorMode) MarshalText() ([]byte, error) {
	var result string
	switch m {
	case ColorModeDefault:
	case ColorModeAuto:
		result = "auto"
	case ColorModeAlways:
		result = "always"
	case ColorModeNever:
		result = "never"
	default:
		result = "unknown"
	}
	return []byte(result), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.UnmarshalText.
func (m *ColorMode) UnmarshalText(textBytes []byte) error {
	// Convert the bytes to a string.
	text := string(textBytes)

	// Convert to a color mode.
	switch text {
	case "auto":
		*m = ColorModeAuto
	case "always":
		*m = ColorModeAlways
	case "never":
		*m = ColorModeNever
	default:
		return fmt.Errorf("unknown color mode specification: %s", text)
	}

	// Success.
	return nil
}

// String implements fmt.Stringer.String.
func (m ColorMode) String() string {
	text, _ := m.MarshalText()
	return string(text)
}

// Supported indicates whether or not a particular mode is a valid, non-default
// value.
func (m ColorMode) Supported() bool {
	return m == ColorModeAuto || m == ColorModeAlways || m == ColorModeNever
}
