package render

import (
	"fmt"
)

// DetailsStyle selects how metadata is laid out in tree formats.
type DetailsStyle uint8

const (
	// DetailsStyleDefault indicates that the default style (inline) should be
	// used.
	DetailsStyleDefault DetailsStyle = iota
	// DetailsStyleInline appends metadata in parentheses after the label.
	DetailsStyleInline
	// DetailsStyleColumns aligns metadata in columns to the right of the tree.
	DetailsStyleColumns
)

// IsDefault indicates whether or not the style is DetailsStyleDefault.
func (s DetailsStyle) IsDefault() bool {
	return s == DetailsStyleDefault
}

// MarshalText implements encoding.TextMarshaler.MarshalText.
func (s DetailsStyle) MarshalText() ([]byte, error) {
	var result string
	switch s {
	case DetailsStyleDefault:
	case DetailsStyleInline:
		result = "inline"
	case DetailsStyleColumns:
		result = "columns"
	default:
		result = "unknown"
	}
	return []byte(result), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.UnmarshalText.
func (s *DetailsStyle) UnmarshalText(textBytes []byte) error {
	// Convert the bytes to a string.
	text := string(textBytes)

	// Convert to a details style.
	switch text {
	case "inline":
		*s = DetailsStyleInline
	case "columns":
		*s = DetailsStyleColumns
	default:
		return fmt.Errorf("unknown details style specification: %s", text)
	}

	// Success.
	return nil
}

// String implements fmt.Stringer.String.
func (s DetailsStyle) String() string {
	text, _ := s.MarshalText()
	return string(text)
}

// Supported indicates whether or not a particular style is a valid,
// non-default value.
func (s DetailsStyle) Supported() bool {
	return s == DetailsStyleInline || s == DetailsStyleColumns
}
