package render

import (
	"fmt"
)

// Details selects which metadata is shown alongside entries.
type Details uint8

const (
	// DetailsDefault indicates that the default selection (none) should be
	// used.
	DetailsDefault Details = iota
	// DetailsNone shows no metadata.
	DetailsNone
	// DetailsSize shows sizes.
	DetailsSize
	// DetailsModificationTime shows modification times.
	DetailsModificationTime
	// DetailsSizeAndModificationTime shows sizes and modification times.
	DetailsSizeAndModificationTime
)

// IsDefault indicates whether or not the selection is DetailsDefault.
func (d Details) IsDefault() bool {
	return d == DetailsDefault
}

// IncludesSize indicates whether or not sizes are selected.
func (d Details) IncludesSize() bool {
	return d == DetailsSize || d == DetailsSizeAndModificationTime
}

// IncludesModificationTime indicates whether or not modification times are
// selected.
func (d Details) IncludesModificationTime() bool {
	return d == DetailsModificationTime || d == DetailsSizeAndModificationTime
}

// RequiresMetadata indicates whether or not the selection needs metadata to be
// collected during traversal.
func (d Details) RequiresMetadata() bool {
	return d.IncludesSize() || d.IncludesModificationTime()
}

// MarshalText implements encoding.TextMarshaler.MarshalText.
func (d Details) MarshalText() ([]byte, error) {
	var result string
	switch d {
	case DetailsDefault:
	case DetailsNone:
		result = "none"
	case DetailsSize:
		result = "size"
	case DetailsModificationTime:
		result = "mtime"
	case DetailsSizeAndModificationTime:
		result = "size,mtime"
	default:
		result = "unknown"
	}
	return []byte(result), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.UnmarshalText.
func (d *Details) UnmarshalText(textBytes []byte) error {
	// Convert the bytes to a string.
	text := string(textBytes)

	// Convert to a details selection.
	switch text {
	case "none":
		*d = DetailsNone
	case "size":
		*d = DetailsSize
	case "mtime":
		*d = DetailsModificationTime
	case "size,mtime":
		*d = DetailsSizeAndModificationTime
	default:
		return fmt.Errorf("unknown details specification: %s", text)
	}

	// Success.
	return nil
}

// String implements fmt.Stringer.String.
func (d Details) String() string {
	text, _ := d.MarshalText()
	return string(text)
}

// Supported indicates whether or not a particular selection is a valid,
// non-default value.
func (d Details) Supported() bool {
	switch d {
	case DetailsNone, DetailsSize, DetailsModificationTime, DetailsSizeAndModificationTime:
		return true
	default:
		return false
	}
}
