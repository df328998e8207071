package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// StatusLinePrinter provides printing facilities for dynamically updating
// status lines in the console. It supports colorized printing.
type StatusLinePrinter struct {
	// Output is the destination for status lines. If nil, standard error is
	// used.
	Output io.Writer
	// nonEmpty indicates whether or not the printer has printed any non-empty
	// content to the status line.
	nonEmpty bool
}

// output returns the destination for status lines.
func (p *StatusLinePrinter) output() io.Writer {
	if p.Output != nil {
		return p.Output
	}
	return color.Error
}

// Print prints a message to the status line, overwriting any existing content.
// Messages are truncated or padded to a platform-dependent display width so
// that the previous line is fully overwritten and the cursor doesn't wander.
func (p *StatusLinePrinter) Print(message string) {
	// Fit the message to the status line width, measuring in terminal cells
	// rather than bytes.
	message = runewidth.Truncate(message, statusLineWidth, "...")
	message = runewidth.FillRight(message, statusLineWidth)

	// Print the message, prefixed with a carriage return to wipe out the
	// previous line (if any).
	fmt.Fprint(p.output(), "\r"+message)

	// Update our non-empty status. We're always non-empty after printing
	// because we print padding as well.
	p.nonEmpty = true
}

// Clear clears any content on the status line and moves the cursor back to the
// beginning of the line.
func (p *StatusLinePrinter) Clear() {
	// Write over any existing data.
	p.Print("")

	// Wipe out any existing line.
	fmt.Fprint(p.output(), "\r")

	// Update our non-empty status.
	p.nonEmpty = false
}

// BreakIfNonEmpty prints a newline character if the current line is non-empty.
func (p *StatusLinePrinter) BreakIfNonEmpty() {
	if p.nonEmpty {
		fmt.Fprintln(p.output())
		p.nonEmpty = false
	}
}
