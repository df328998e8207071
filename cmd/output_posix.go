//go:build !windows

package cmd

const (
	// statusLineWidth is the display width of status lines. On POSIX systems,
	// we pad messages to exactly 80 cells, the minimum width of a VT100
	// terminal.
	statusLineWidth = 80
)
