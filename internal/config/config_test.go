package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, DefaultFileName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_DefaultWhenMissing(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	cfg, err := Load(t.TempDir(), "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Inspector != InspectorAuto || cfg.LogLevel != "warn" {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoad_FromRoot(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	dir := t.TempDir()
	writeConfig(t, dir, "inspector: native\natomic-writes: true\nlog-level: debug\n")

	cfg, err := Load(dir, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Inspector != InspectorNative || !cfg.AtomicWrites || cfg.LogLevel != "debug" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want default text", cfg.LogFormat)
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	t.Setenv(EnvConfigPath, "")

	tests := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"whitespace", "\n  \n"},
		{"comments only", "# cargobump configuration\n# inspector: native\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.content)

			cfg, err := Load(dir, "")
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if *cfg != *Default() {
				t.Errorf("cfg = %+v, want %+v", *cfg, *Default())
			}
		})
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	dir := t.TempDir()
	writeConfig(t, dir, "theme: dracula\n")

	cfg, err := Load(dir, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme != "dracula" {
		t.Errorf("Theme = %q, want dracula", cfg.Theme)
	}
	if cfg.Inspector != InspectorAuto || cfg.LogLevel != "warn" || cfg.LogFormat != "text" {
		t.Errorf("cfg = %+v, want defaults for unset keys", cfg)
	}
}

func TestLoad_Priority(t *testing.T) {
	rootDir := t.TempDir()
	writeConfig(t, rootDir, "inspector: native\n")

	envDir := t.TempDir()
	envPath := writeConfig(t, envDir, "inspector: cargo\n")
	t.Setenv(EnvConfigPath, envPath)

	cfg, err := Load(rootDir, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Inspector != InspectorCargo {
		t.Errorf("env config not preferred: %q", cfg.Inspector)
	}

	flagDir := t.TempDir()
	flagPath := writeConfig(t, flagDir, "inspector: auto\ntheme: dracula\n")
	cfg, err = Load(rootDir, flagPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Inspector != InspectorAuto || cfg.Theme != "dracula" {
		t.Errorf("explicit config not preferred: %+v", cfg)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Setenv(EnvConfigPath, "")

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"unknown field", "inspektor: cargo\n", "inspektor"},
		{"bad inspector", "inspector: magic\n", "inspector must be"},
		{"bad log level", "log-level: loud\n", "unknown log level"},
		{"bad log format", "log-format: xml\n", "log-format"},
		{"bad yaml", "inspector: [\n", "failed to parse"},
		{"unknown theme", "theme: neon\n", "theme must be one of"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.content)
			_, err := Load(dir, "")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(t.TempDir(), filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want os.ErrNotExist", err)
	}
}
