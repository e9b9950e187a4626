package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vfxforge/nukemcp/internal/config"
)

func TestRunConfigPath(t *testing.T) {
	out, _ := captureOutput(t)
	path := filepath.Join(t.TempDir(), "config.toml")

	if code := runConfig(rootOptions{configPath: path}, []string{"path"}); code != ExitOK {
		t.Fatalf("runConfig() = %d, want %d", code, ExitOK)
	}
	if out.String() != path+"\n" {
		t.Fatalf("stdout = %q, want %q", out.String(), path+"\n")
	}
}

func TestRunConfigInitWritesStarter(t *testing.T) {
	out, _ := captureOutput(t)
	path := filepath.Join(t.TempDir(), "nukemcp", "config.toml")

	if code := runConfig(rootOptions{configPath: path}, []string{"init"}); code != ExitOK {
		t.Fatalf("runConfig() = %d, want %d", code, ExitOK)
	}
	if !strings.Contains(out.String(), path) {
		t.Fatalf("stdout = %q, want written path", out.String())
	}

	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom(starter) error = %v", err)
	}
	if cfg.Nuke.Port != 8765 {
		t.Fatalf("starter port = %d, want 8765", cfg.Nuke.Port)
	}
	if err := config.Validate(cfg); err != nil {
		t.Fatalf("Validate(starter) error = %v", err)
	}
}

func TestRunConfigInitRefusesOverwrite(t *testing.T) {
	_, errOut := captureOutput(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[nuke]\n"), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if code := runConfig(rootOptions{configPath: path}, []string{"init"}); code != ExitInternal {
		t.Fatalf("runConfig() = %d, want %d", code, ExitInternal)
	}
	if !strings.Contains(errOut.String(), "already exists") {
		t.Fatalf("stderr = %q, want already exists", errOut.String())
	}
}

func TestRunConfigUnknownSubcommand(t *testing.T) {
	captureOutput(t)
	if code := runConfig(rootOptions{}, []string{"show"}); code != ExitUsageErr {
		t.Fatalf("runConfig() = %d, want %d", code, ExitUsageErr)
	}
}
