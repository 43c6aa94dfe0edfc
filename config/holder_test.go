package config

import (
	"os"
	"testing"

	"github.com/rs/zerolog"
)

func TestHolderGet(t *testing.T) {
	path := writeConfig(t, "source:\n  root: /data\n")

	h, err := NewHolder(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewHolder: %v", err)
	}
	defer h.Stop()

	if got := h.Get().Source.Root; got != "/data" {
		t.Errorf("source root = %q, want /data", got)
	}
}

func TestHolderReload(t *testing.T) {
	path := writeConfig(t, "logging:\n  level: info\n")

	h, err := NewHolder(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewHolder: %v", err)
	}
	defer h.Stop()

	var notified *Config
	h.OnChange(func(c *Config) { notified = c })

	if err := os.WriteFile(path, []byte("logging:\n  level: debug\n"), 0o644); err != nil {
		t.Fatalf("rewrite config: %v", err)
	}
	if err := h.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	if got := h.Get().Logging.Level; got != "debug" {
		t.Errorf("level after reload = %q, want debug", got)
	}
	if notified == nil || notified.Logging.Level != "debug" {
		t.Error("OnChange callback not invoked with new config")
	}
}

func TestHolderReloadKeepsOldConfigOnError(t *testing.T) {
	path := writeConfig(t, "logging:\n  level: info\n")

	h, err := NewHolder(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewHolder: %v", err)
	}
	defer h.Stop()

	if err := os.WriteFile(path, []byte("logging:\n  level: loud\n"), 0o644); err != nil {
		t.Fatalf("rewrite config: %v", err)
	}
	if err := h.Reload(); err == nil {
		t.Fatal("expected reload error for invalid config")
	}

	if got := h.Get().Logging.Level; got != "info" {
		t.Errorf("level after failed reload = %q, want info", got)
	}
}

func TestHolderRejectsInvalidInitialConfig(t *testing.T) {
	path := writeConfig(t, "logging:\n  format: xml\n")
	if _, err := NewHolder(path, zerolog.Nop()); err == nil {
		t.Fatal("expected error for invalid config")
	}
}
