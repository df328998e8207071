package cmd

import (
	"os"

	isatty "github.com/mattn/go-isatty"
)

// IsTerminal indicates whether or not a file is attached to a terminal,
// including Cygwin and MSYS2 terminals on Windows.
func IsTerminal(file *os.File) bool {
	descriptor := file.Fd()
	return isatty.IsTerminal(descriptor) || isatty.IsCygwinTerminal(descriptor)
}
