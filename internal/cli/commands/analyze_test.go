package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempDecl(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "decl.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp declaration: %v", err)
	}
	return path
}

func TestAnalyze_WellFormedReportsNoIssues(t *testing.T) {
	path := writeTempDecl(t, "const int x = 5;")

	cmd := NewAnalyzeCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out.String(), "no issues found") {
		t.Errorf("expected no-issues message, got: %s", out.String())
	}
}

func TestAnalyze_MissingSemicolonReportsDiagnostic(t *testing.T) {
	path := writeTempDecl(t, "const int x = 5")

	cmd := NewAnalyzeCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out.String(), "Insert missing token: ';'") {
		t.Errorf("expected insert diagnostic, got: %s", out.String())
	}
}

func TestAnalyze_JSONFlagEmitsJSON(t *testing.T) {
	path := writeTempDecl(t, "const int x = 5")
	analyzeJSON = true
	defer func() { analyzeJSON = false }()

	cmd := NewAnalyzeCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--json", path})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out.String(), `"category"`) {
		t.Errorf("expected JSON diagnostics, got: %s", out.String())
	}
}

func TestAnalyze_TokensFlagPrintsTable(t *testing.T) {
	path := writeTempDecl(t, "const int x = 5;")
	analyzeTokens = true
	defer func() { analyzeTokens = false }()

	cmd := NewAnalyzeCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--tokens", path})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out.String(), "KIND") || !strings.Contains(out.String(), "VARIABLE") {
		t.Errorf("expected token table header and a VARIABLE row, got: %s", out.String())
	}
}

func TestAnalyze_SuggestsKeywordTypo(t *testing.T) {
	path := writeTempDecl(t, "cosnt int x = 5;")

	cmd := NewAnalyzeCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out.String(), "looks like a misspelled keyword") {
		t.Errorf("expected keyword-typo suggestion, got: %s", out.String())
	}
	if !strings.Contains(out.String(), "Did you mean: const?") {
		t.Errorf("expected suggestion to name 'const', got: %s", out.String())
	}
}

func TestAnalyze_MissingFileReturnsError(t *testing.T) {
	cmd := NewAnalyzeCommand()
	cmd.SetArgs([]string{"/nonexistent/decl.txt"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for nonexistent file")
	}
}
