package config

import (
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error loading defaults, got %v", err)
	}

	if cfg.Repair.MaxEdits != 15 {
		t.Errorf("expected default max_edits 15, got %d", cfg.Repair.MaxEdits)
	}
	if cfg.Output.Format != "text" {
		t.Errorf("expected default format 'text', got %s", cfg.Output.Format)
	}
	if !cfg.Output.Color {
		t.Error("expected default color to be true")
	}
}

func TestLoad_ConfigFileOverridesDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	configContent := `
repair:
  max_edits: 5
output:
  format: json
  color: false
`
	if err := os.WriteFile("constlex.yaml", []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.Repair.MaxEdits != 5 {
		t.Errorf("expected max_edits 5, got %d", cfg.Repair.MaxEdits)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("expected format 'json', got %s", cfg.Output.Format)
	}
	if cfg.Output.Color {
		t.Error("expected color to be false")
	}
}

func TestLoad_RejectsInvalidFormat(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	if err := os.WriteFile("constlex.yaml", []byte("output:\n  format: xml\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid output format")
	}
}

func TestLoad_RejectsNegativeMaxEdits(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	if err := os.WriteFile("constlex.yaml", []byte("repair:\n  max_edits: -1\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected error for negative max_edits")
	}
}
