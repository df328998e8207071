package must

import (
	"bytes"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/path2map/path2map/pkg/logging"
)

// failingCloser is an io.Closer that always fails.
type failingCloser struct{}

// Close implements io.Closer.Close.
func (failingCloser) Close() error {
	return errors.New("close failure")
}

// TestFailuresAreLogged tests that failures surface as logged warnings.
func TestFailuresAreLogged(t *testing.T) {
	// Redirect the standard logger.
	buffer := &bytes.Buffer{}
	previousOutput := log.Writer()
	log.SetOutput(buffer)
	defer log.SetOutput(previousOutput)

	// Perform failing operations.
	logger := logging.NewLogger(logging.LevelWarn)
	Close(failingCloser{}, logger)
	OSRemove(filepath.Join(t.TempDir(), "missing"), logger)

	// Verify that each failure was logged.
	output := buffer.String()
	for _, expected := range []string{"close failure", "Unable to remove"} {
		if !strings.Contains(output, expected) {
			t.Errorf("output missing %q: %q", expected, output)
		}
	}
}

// TestOSRemoveSucceeds tests that OSRemove removes existing files.
func TestOSRemoveSucceeds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(path, nil, 0600); err != nil {
		t.Fatal("unable to create file:", err)
	}
	OSRemove(path, nil)
	if _, err := os.Lstat(path); !os.IsNotExist(err) {
		t.Error("file still exists after removal")
	}
}
