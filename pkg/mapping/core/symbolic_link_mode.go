package core

import (
	"fmt"
)

// SymbolicLinkMode specifies how traversal treats symbolic links.
type SymbolicLinkMode uint8

const (
	// SymbolicLinkModeDefault indicates that the default mode should be used.
	// It is resolved to SymbolicLinkModeShow by traversal.
	SymbolicLinkModeDefault SymbolicLinkMode = iota
	// SymbolicLinkModeSkip omits symbolic links entirely.
	SymbolicLinkModeSkip
	// SymbolicLinkModeShow emits symbolic links but never recurses into them.
	SymbolicLinkModeShow
	// SymbolicLinkModeFollow emits symbolic links and recurses into those that
	// resolve to directories, subject to cycle detection.
	SymbolicLinkModeFollow
)

// IsDefault indicates whether or not the symbolic link mode is
// SymbolicLinkModeDefault.
func (m SymbolicLinkMode) IsDefault() bool {
	return m == SymbolicLinkModeDefault
}

// MarshalText implements encoding.TextMarshaler.MarshalText.
func (m SymbolicLinkMode) MarshalText() ([]byte, error) {
	var result string
	switch m {
	case SymbolicLinkModeDefault:
	case SymbolicLinkModeSkip:
		result = "skip"
	case SymbolicLinkModeShow:
		result = "show"
	case SymbolicLinkModeFollow:
		result = "follow"
	default:
		result = "unknown"
	}
	return []byte(result), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.UnmarshalText.
func (m *SymbolicLinkMode) UnmarshalText(textBytes []byte) error {
	// Convert the bytes to a string.
	text := string(textBytes)

	// Convert to a symbolic link mode.
	switch text {
	case "skip":
		*m = SymbolicLinkModeSkip
	case "show":
		*m = SymbolicLinkModeShow
	case "follow":
		*m = SymbolicLinkModeFollow
	default:
		return fmt.Errorf("unknown symbolic link mode specification: %s", text)
	}

	// Success.
	return nil
}

// String implements fmt.Stringer.String.
func (m SymbolicLinkMode) String() string {
	text, _ := m.MarshalText()
	return string(text)
}

// Supported indicates whether or not a particular symbolic link mode is a
// valid, non-default value.
func (m SymbolicLinkMode) Supported() bool {
	switch m {
	case SymbolicLinkModeSkip:
		return true
	case SymbolicLinkModeShow:
		return true
	case SymbolicLinkModeFollow:
		return true
	default:
		return false
	}
}

// Description returns a human-readable description of a symbolic link mode.
func (m SymbolicLinkMode) Description() string {
	switch m {
	case SymbolicLinkModeDefault:
		return "Default"
	case SymbolicLinkModeSkip:
		return "Skip"
	case SymbolicLinkModeShow:
		return "Show"
	case SymbolicLinkModeFollow:
		return "Follow"
	default:
		return "Unknown"
	}
}
