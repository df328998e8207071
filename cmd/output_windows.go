package cmd

const (
	// statusLineWidth is the display width of status lines. On Windows, we
	// limit content to 79 cells because carriage return wipes don't work if
	// the cursor has already printed a character in the last position of an
	// 80-column console line.
	statusLineWidth = 79
)
