package path2map

import (
	"os"
)

// DebugEnabled controls whether or not debugging is enabled for path2map. It
// is set automatically based on the PATH2MAP_DEBUG environment variable.
var DebugEnabled bool

func init() {
	// Check whether or not debugging should be enabled.
	DebugEnabled = os.Getenv("PATH2MAP_DEBUG") == "1"
}
