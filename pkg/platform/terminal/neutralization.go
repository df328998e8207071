// Package terminal provides helpers for printing untrusted strings, such as
// file names, to terminals.
package terminal

import (
	"strings"
)

// controlCharacterNeutralizer is a string replacer that terminal neutralizes
// control characters. Newlines are included since a file name containing one
// would otherwise break line-oriented tree output.
var controlCharacterNeutralizer = strings.NewReplacer(
	"\x1b", "^[",
	"\r", "\\r",
	"\n", "\\n",
	"\x07", "^G",
	"\b", "^H",
)

// NeutralizeControlCharacters returns a copy of a string with any terminal
// control characters neutralized.
func NeutralizeControlCharacters(value string) string {
	return controlCharacterNeutralizer.Replace(value)
}
