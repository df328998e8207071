package render

import (
	"fmt"
)

// Format identifies an output format.
type Format uint8

const (
	// FormatDefault indicates that the default format (text) should be used.
	FormatDefault Format = iota
	// FormatText is a box-drawing tree.
	FormatText
	// FormatMarkdown is the text tree inside a fenced Markdown code block.
	FormatMarkdown
	// FormatJSON is a nested JSON document.
	FormatJSON
	// FormatCSV is a flat CSV table in preorder.
	FormatCSV
	// FormatHTML is a static HTML document with collapsible directories.
	FormatHTML
	// FormatYAML is a nested YAML document.
	FormatYAML
)

// FormatOptions lists the text forms of the supported formats, suitable for
// help output.
const FormatOptions = "text|md|json|csv|html|yaml"

// IsDefault indicates whether or not the format is FormatDefault.
func (f Format) IsDefault() bool {
	return f == FormatDefault
}

// Resolve returns the effective format, mapping FormatDefault to FormatText.
func (f Format) Resolve() Format {
	if f == FormatDefault {
		return FormatText
	}
	return f
}

// MarshalText implements encoding.TextMarshaler.MarshalText.
func (f Format) MarshalText() ([]byte, error) {
	var result string
	switch f {
	case FormatDefault:
	case FormatText:
		result = "text"
	case FormatMarkdown:
		result = "md"
	case FormatJSON:
		result = "json"
	case FormatCSV:
		result = "csv"
	case FormatHTML:
		result = "html"
	case FormatYAML:
		result = "yaml"
	default:
		result = "unknown"
	}
	return []byte(result), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.UnmarshalText.
func (f *Format) UnmarshalText(textBytes []byte) error {
	// Convert the bytes to a string.
	text := string(textBytes)

	// Convert to a format.
	switch text {
	case "text":
		*f = FormatText
	case "md":
		*f = FormatMarkdown
	case "json":
		*f = FormatJSON
	case "csv":
		*f = FormatCSV
	case "html":
		*f = FormatHTML
	case "yaml":
		*f = FormatYAML
	default:
		return fmt.Errorf("unknown output format specification: %s", text)
	}

	// Success.
	return nil
}

// String implements fmt.Stringer.String.
func (f Format) String() string {
	text, _ := f.MarshalText()
	return string(text)
}

// Supported indicates whether or not a particular format is a valid,
// non-default value.
func (f Format) Supported() bool {
	switch f {
	case FormatText, FormatMarkdown, FormatJSON, FormatCSV, FormatHTML, FormatYAML:
		return true
	default:
		return false
	}
}

// Extension returns the file name extension (without a dot) used when writing
// output in this format to a directory.
func (f Format) Extension() string {
	switch f.Resolve() {
	case FormatText:
		return "txt"
	case FormatMarkdown:
		return "md"
	case FormatJSON:
		return "json"
	case FormatCSV:
		return "csv"
	case FormatHTML:
		return "html"
	case FormatYAML:
		return "yaml"
	default:
		return "out"
	}
}
