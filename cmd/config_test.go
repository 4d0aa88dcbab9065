package cmd

import (
	"os"
	"strings"
	"testing"

	"github.com/msalah0e/rskeys/internal/config"
)

func TestConfigInitAndShow(t *testing.T) {
	h := newHarness(t)

	out, _, err := h.run(t, "config", "init")
	if err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if !strings.Contains(out, "wrote") {
		t.Errorf("expected file to be written, got %q", out)
	}
	if _, err := os.Stat(config.Path()); err != nil {
		t.Fatalf("config file missing: %v", err)
	}

	out, _, _ = h.run(t, "config", "init")
	if !strings.Contains(out, "already exists") {
		t.Errorf("second init should be a no-op, got %q", out)
	}

	out, _, err = h.run(t, "config", "show", "-o", "yaml")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	if !strings.Contains(out, `format = "yaml"`) {
		t.Errorf("flags should be reflected in effective config, got %q", out)
	}
}

func TestConfigPath(t *testing.T) {
	h := newHarness(t)

	out, _, _ := h.run(t, "config", "path")
	if strings.TrimSpace(out) != config.Path() {
		t.Errorf("expected %q, got %q", config.Path(), out)
	}
}

func TestCompletion(t *testing.T) {
	h := newHarness(t)

	out, _, err := h.run(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion failed: %v", err)
	}
	if !strings.Contains(out, "rskeys") {
		t.Error("bash completion should mention the command name")
	}

	formats, _ := formatCompletionFunc(nil, nil, "")
	if len(formats) != 4 {
		t.Errorf("expected 4 formats, got %v", formats)
	}
}

func TestCompletion_Shells(t *testing.T) {
	tests := []struct {
		shell   string
		want    string
		wantErr bool
	}{
		{"zsh", "#compdef", false},
		{"fish", "complete -c rskeys", false},
		{"powershell", "Register-ArgumentCompleter", false},
		{"tcsh", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			h := newHarness(t)
			out, _, err := h.run(t, "completion", tt.shell)
			if (err != nil) != tt.wantErr {
				t.Fatalf("completion %s error = %v, wantErr %v", tt.shell, err, tt.wantErr)
			}
			if tt.wantErr {
				if !strings.Contains(err.Error(), "unsupported shell") {
					t.Errorf("unexpected error %q", err.Error())
				}
				if strings.Contains(out, "Register-ArgumentCompleter") {
					t.Error("unknown shells must not fall back to a PowerShell script")
				}
				return
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("completion %s output missing %q", tt.shell, tt.want)
			}
		})
	}
}
