package lsp

import (
	"testing"

	"github.com/conduit-lang/constlex/internal/compiler/diagnostics"
	"go.lsp.dev/protocol"
)

func TestServerInitialization(t *testing.T) {
	server := NewServer()
	if server == nil {
		t.Fatal("NewServer() returned nil")
	}

	if server.api == nil {
		t.Error("Server API is nil")
	}

	if server.logger == nil {
		t.Error("Server logger is nil")
	}

	if server.capabilities.TextDocumentSync.Change != protocol.TextDocumentSyncKindFull {
		t.Error("expected full text document sync")
	}

	if !server.capabilities.TextDocumentSync.OpenClose {
		t.Error("expected OpenClose sync to be enabled")
	}
}

func TestConvertSeverity(t *testing.T) {
	tests := []struct {
		name     string
		input    diagnostics.Category
		expected protocol.DiagnosticSeverity
	}{
		{
			name:     "scan errors are hard failures",
			input:    diagnostics.CategoryScan,
			expected: protocol.DiagnosticSeverityError,
		},
		{
			name:     "repair edits are informational",
			input:    diagnostics.CategoryRepair,
			expected: protocol.DiagnosticSeverityInformation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := convertSeverity(tt.input)
			if result != tt.expected {
				t.Errorf("convertSeverity(%v): expected %v, got %v", tt.input, tt.expected, result)
			}
		})
	}
}

func TestMax0(t *testing.T) {
	if max0(-1) != 0 {
		t.Error("expected max0(-1) == 0")
	}
	if max0(3) != 3 {
		t.Error("expected max0(3) == 3")
	}
}

func TestStdRWC(t *testing.T) {
	rwc := stdrwc{}
	_ = rwc.Read
	_ = rwc.Write
	_ = rwc.Close
}
