package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// PerformingShellCompletion is true when the process was invoked by a shell
// completion script through Cobra's hidden completion request commands. In
// that case standard output carries completion candidates, so commands must
// not emit progress or status output.
var PerformingShellCompletion = isShellCompletionRequest(os.Args)

// isShellCompletionRequest reports whether the command line names one of
// Cobra's hidden completion request commands.
func isShellCompletionRequest(arguments []string) bool {
	if len(arguments) < 2 {
		return false
	}
	switch arguments[1] {
	case cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return true
	default:
		return false
	}
}
