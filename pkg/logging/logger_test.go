package logging

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/fatih/color"
)

// captureStandardLogger redirects the standard logger into a buffer for the
// duration of a test.
func captureStandardLogger(t *testing.T) *bytes.Buffer {
	t.Helper()
	buffer := &bytes.Buffer{}
	previousOutput, previousFlags := log.Writer(), log.Flags()
	log.SetOutput(buffer)
	log.SetFlags(0)
	previousNoColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() {
		log.SetOutput(previousOutput)
		log.SetFlags(previousFlags)
		color.NoColor = previousNoColor
	})
	return buffer
}

// TestNilLoggerIsSilent tests that a nil logger can be used without effect.
func TestNilLoggerIsSilent(t *testing.T) {
	buffer := captureStandardLogger(t)

	var logger *Logger
	logger.Warnf("should %s", "vanish")
	logger.Error(errors.New("should vanish"))
	logger.Sublogger("child").Debugf("should vanish")
	if logger.Level() != LevelDisabled {
		t.Error("nil logger reports non-disabled level")
	}
	if _, err := logger.Writer().Write([]byte("line\n")); err != nil {
		t.Error("unable to write to nil logger writer:", err)
	}

	if buffer.Len() != 0 {
		t.Errorf("nil logger produced output: %q", buffer.String())
	}
}

// TestLoggerLevelGating tests that messages below the configured level are
// suppressed.
func TestLoggerLevelGating(t *testing.T) {
	buffer := captureStandardLogger(t)

	logger := NewLogger(LevelWarn)
	logger.Debugf("hidden debug")
	logger.Infof("hidden info")
	logger.Warnf("visible %d", 1)
	logger.Error(errors.New("visible error"))

	output := buffer.String()
	if strings.Contains(output, "hidden") {
		t.Errorf("suppressed messages were logged: %q", output)
	}
	if !strings.Contains(output, "Warning: visible 1") {
		t.Errorf("warning missing from output: %q", output)
	}
	if !strings.Contains(output, "Error: visible error") {
		t.Errorf("error missing from output: %q", output)
	}
}

// TestSubloggerSharesLevelAndPrefix tests sublogger prefixes and shared level
// updates.
func TestSubloggerSharesLevelAndPrefix(t *testing.T) {
	buffer := captureStandardLogger(t)

	root := NewLogger(LevelDisabled)
	child := root.Sublogger("scan").Sublogger("walk")
	child.Debugf("before")
	root.SetLevel(LevelDebug)
	child.Debugf("after")

	if output := buffer.String(); output != "[scan.walk] after\n" {
		t.Errorf("unexpected output: %q", output)
	}
}

// TestWriterSplitsLines tests that the logger writer splits on line endings.
func TestWriterSplitsLines(t *testing.T) {
	buffer := captureStandardLogger(t)

	writer := NewLogger(LevelInfo).Writer()
	writer.Write([]byte("first\r\nsec"))
	writer.Write([]byte("ond\n"))

	if output := buffer.String(); output != "first\nsecond\n" {
		t.Errorf("unexpected output: %q", output)
	}
}

// TestLevelUnmarshalText tests Level.UnmarshalText.
func TestLevelUnmarshalText(t *testing.T) {
	// Define test cases.
	tests := []struct {
		text          string
		expected      Level
		expectFailure bool
	}{
		{"", LevelDisabled, true},
		{"loud", LevelDisabled, true},
		{"disabled", LevelDisabled, false},
		{"error", LevelError, false},
		{"warn", LevelWarn, false},
		{"info", LevelInfo, false},
		{"debug", LevelDebug, false},
		{"trace", LevelTrace, false},
	}

	// Process test cases.
	for i, test := range tests {
		var level Level
		if err := level.UnmarshalText([]byte(test.text)); err != nil {
			if !test.expectFailure {
				t.Errorf("test index %d: unable to unmarshal level (%s): %v", i, test.text, err)
			}
		} else if test.expectFailure {
			t.Errorf("test index %d: unmarshaling succeeded unexpectedly for %s", i, test.text)
		} else if level != test.expected {
			t.Errorf("test index %d: level (%s) does not match expected (%s)", i, level, test.expected)
		}
	}
}
