package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew_QuietByDefault(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)
	l.Debug("env file loaded", "path", ".env.local")
	if buf.Len() != 0 {
		t.Errorf("expected no debug output, got %q", buf.String())
	}

	l.Warn("something odd")
	if !strings.Contains(buf.String(), "something odd") {
		t.Errorf("expected warning in output, got %q", buf.String())
	}
}

func TestNew_Verbose(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, true)
	l.Debug("env file loaded", "path", ".env.local")

	out := buf.String()
	if !strings.Contains(out, "env file loaded") {
		t.Errorf("expected debug message, got %q", out)
	}
	if !strings.Contains(out, "rskeys") {
		t.Errorf("expected prefix, got %q", out)
	}
}
