package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/msalah0e/rskeys/internal/credential"
)

func TestVaultAdd_Stdin(t *testing.T) {
	h := newHarness(t)

	opts := *h.opts
	root := newRootCmd(&opts)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetIn(strings.NewReader("re_typed_in_123456\n"))
	root.SetArgs([]string{"vault", "add"})
	if err := root.Execute(); err != nil {
		t.Fatalf("vault add failed: %v", err)
	}

	if h.vault["RESEND_API_KEY"] != "re_typed_in_123456" {
		t.Errorf("expected stored key, got %q", h.vault["RESEND_API_KEY"])
	}
	if !strings.Contains(out.String(), "stored in memory vault") {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestVaultAdd_Empty(t *testing.T) {
	h := newHarness(t)

	out, _, err := h.run(t, "vault", "add")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "not stored") {
		t.Errorf("expected warning, got %q", out)
	}
	if len(h.vault) != 0 {
		t.Error("nothing should be stored")
	}
}

func TestVaultAdd_FromEnv(t *testing.T) {
	h := newHarness(t)
	path := filepath.Join(t.TempDir(), ".env.local")
	os.WriteFile(path, []byte("RESEND_API_KEY=re_from_envfile_99\n"), 0o600)

	if _, _, err := h.run(t, "vault", "add", "--from-env", "--env-file", path); err != nil {
		t.Fatalf("vault add --from-env failed: %v", err)
	}
	if h.vault["RESEND_API_KEY"] != "re_from_envfile_99" {
		t.Errorf("expected key from env file, got %q", h.vault["RESEND_API_KEY"])
	}
}

func TestVaultAdd_FromEnvMissing(t *testing.T) {
	h := newHarness(t)

	out, _, err := h.run(t, "vault", "add", "--from-env")
	if !errors.Is(err, credential.ErrMissing) {
		t.Fatalf("expected ErrMissing, got %v", err)
	}
	if !strings.Contains(out, "RESEND_API_KEY not found") {
		t.Errorf("expected message, got %q", out)
	}
}

func TestVaultShowAndRemove(t *testing.T) {
	h := newHarness(t)

	out, _, _ := h.run(t, "vault", "show")
	if !strings.Contains(out, "No key stored") {
		t.Errorf("expected empty message, got %q", out)
	}

	h.vault["RESEND_API_KEY"] = "re_1234567890abcdef"
	out, _, _ = h.run(t, "vault", "show")
	if !strings.Contains(out, "re_1...cdef") {
		t.Errorf("expected masked key, got %q", out)
	}
	if strings.Contains(out, "re_1234567890abcdef") {
		t.Error("show must not print the full key")
	}

	if _, _, err := h.run(t, "vault", "rm"); err != nil {
		t.Fatalf("vault rm failed: %v", err)
	}
	if _, ok := h.vault["RESEND_API_KEY"]; ok {
		t.Error("key should be removed")
	}
	if _, _, err := h.run(t, "vault", "rm"); err == nil {
		t.Error("removing a missing key should fail")
	}
}
