// Package must provides best-effort wrappers for cleanup operations whose
// failures can't be meaningfully handled by the caller. Failures are
// logged as warnings rather than returned.
package must

import (
	"io"
	"os"

	"github.com/path2map/path2map/pkg/logging"
)

func Close(c io.Closer, logger *logging.Logger) {
	err := c.Close()
	if err != nil {
		logger.Warnf("Unable to close: %s", err.Error())
	}
}

func OSRemove(name string, logger *logging.Logger) {
	err := os.Remove(name)
	if err != nil {
		logger.Warnf("Unable to remove '%s': %s", name, err.Error())
	}
}
