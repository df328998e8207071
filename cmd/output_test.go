package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestStatusLinePrinterPadsAndTruncates(t *testing.T) {
	output := &bytes.Buffer{}
	printer := &StatusLinePrinter{Output: output}

	printer.Print("Scanning")
	if got := output.String(); got != "\r"+"Scanning"+strings.Repeat(" ", statusLineWidth-8) {
		t.Errorf("unexpected padded status line: %q", got)
	}

	output.Reset()
	printer.Print(strings.Repeat("x", 2*statusLineWidth))
	if got := output.String(); !strings.HasSuffix(got, "...") || len([]rune(got)) != statusLineWidth+1 {
		t.Errorf("unexpected truncated status line: %q", got)
	}
}

func TestStatusLinePrinterBreak(t *testing.T) {
	output := &bytes.Buffer{}
	printer := &StatusLinePrinter{Output: output}

	printer.BreakIfNonEmpty()
	if output.Len() != 0 {
		t.Error("break printed for empty status line")
	}

	printer.Print("a")
	output.Reset()
	printer.BreakIfNonEmpty()
	if output.String() != "\n" {
		t.Errorf("unexpected break output: %q", output.String())
	}

	output.Reset()
	printer.BreakIfNonEmpty()
	if output.Len() != 0 {
		t.Error("break printed twice")
	}
}

func TestStatusLinePrinterClear(t *testing.T) {
	output := &bytes.Buffer{}
	printer := &StatusLinePrinter{Output: output}
	printer.Print("a")
	printer.Clear()
	if !strings.HasSuffix(output.String(), strings.Repeat(" ", statusLineWidth)+"\r") {
		t.Errorf("unexpected clear output: %q", output.String())
	}
	output.Reset()
	printer.BreakIfNonEmpty()
	if output.Len() != 0 {
		t.Error("cleared status line considered non-empty")
	}
}
