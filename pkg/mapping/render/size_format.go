package render

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// SizeFormat selects the unit base for human-readable sizes.
type SizeFormat uint8

const (
	// SizeFormatDefault indicates that the default format (binary) should be
	// used.
	SizeFormatDefault SizeFormat = iota
	// SizeFormatBinary uses powers of 1024 (KiB, MiB, ...).
	SizeFormatBinary
	// SizeFormatDecimal uses powers of 1000 (kB, MB, ...).
	SizeFormatDecimal
)

// IsDefault indicates whether or not the size format is SizeFormatDefault.
func (f SizeFormat) IsDefault() bool {
	return f == SizeFormatDefault
}

// Format formats a size in bytes.
func (f SizeFormat) Format(size uint64) string {
	if f == SizeFormatDecimal {
		return humanize.Bytes(size)
	}
	return humanize.IBytes(size)
}

// MarshalText implements encoding.TextMarshaler.MarshalText.
func (f SizeFormat) MarshalText() ([]byte, error) {
	var result string
	switch f {
	case SizeFormatDefault:
	case SizeFormatBinary:
		result = "binary"
	case SizeFormatDecimal:
		result = "decimal"
	default:
		result = "unknown"
	}
	return []byte(result), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.UnmarshalText.
func (f *SizeFormat) UnmarshalText(textBytes []byte) error {
	// Convert the bytes to a string.
	text := string(textBytes)

	// Convert to a size format.
	switch text {
	case "binary":
		*f = SizeFormatBinary
	case "decimal":
		*f = SizeFormatDecimal
	default:
		return fmt.Errorf("unknown size format specification: %s", text)
	}

	// Success.
	return nil
}

// String implements fmt.Stringer.String.
func (f SizeFormat) String() string {
	text, _ := f.MarshalText()
	return string(text)
}

// Supported indicates whether or not a particular size format is a valid,
// non-default value.
func (f SizeFormat) Supported() bool {
	return f == SizeFormatBinary || f == SizeFormatDecimal
}
