package utils

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerDebugSwitch(t *testing.T) {
	var out bytes.Buffer
	l := NewLoggerTo(&out, &out)

	l.Debug("hidden %d", 1)
	if out.Len() != 0 {
		t.Fatalf("debug output written while disabled: %q", out.String())
	}

	l.SetDebug(true)
	l.Debug("shown %d", 2)
	if !strings.Contains(out.String(), "shown 2") {
		t.Errorf("debug output missing: %q", out.String())
	}
}

func TestLoggerErrorStream(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewLoggerTo(&out, &errOut)

	l.Info("hello %s", "world")
	l.Error("boom")

	if !strings.Contains(out.String(), "INFO") || !strings.Contains(out.String(), "hello world") {
		t.Errorf("info line missing from stdout: %q", out.String())
	}
	if !strings.Contains(errOut.String(), "boom") || strings.Contains(out.String(), "boom") {
		t.Errorf("error line should go only to the error stream: out=%q err=%q", out.String(), errOut.String())
	}
}
