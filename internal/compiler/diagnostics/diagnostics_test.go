package diagnostics

import (
	"testing"

	"github.com/conduit-lang/constlex/internal/compiler/lexer"
	"github.com/conduit-lang/constlex/internal/compiler/repair"
)

func TestFromScanErrors_PreservesOrder(t *testing.T) {
	errs := []lexer.ScanError{
		{Line: 1, Column: 3, Message: "Unexpected character: $"},
		{Line: 2, Column: 1, Message: "Unexpected character: #"},
	}

	diags := FromScanErrors(errs)
	if len(diags) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", len(diags))
	}
	if diags[0].Message != errs[0].Message || diags[1].Message != errs[1].Message {
		t.Fatalf("scan error order not preserved: %v", diags)
	}
	for _, d := range diags {
		if d.Category != CategoryScan {
			t.Errorf("expected CategoryScan, got %s", d.Category)
		}
	}
}

func TestFromEdits_MessagesPerEditKind(t *testing.T) {
	old := lexer.Token{Kind: lexer.INT, Value: "int", Line: 1, Column: 1}
	newTok := lexer.Token{Kind: lexer.VARIABLE, Value: "variable_name", Line: 1, Column: 5}

	edits := []repair.Edit{
		{Kind: repair.Delete, Old: old},
		{Kind: repair.Replace, Old: old, New: newTok},
		{Kind: repair.Insert, New: newTok},
	}

	diags := FromEdits(edits)
	if len(diags) != 3 {
		t.Fatalf("expected 3 diagnostics, got %d", len(diags))
	}

	if diags[0].Message != "Remove invalid token: 'int'" {
		t.Errorf("unexpected delete message: %s", diags[0].Message)
	}
	if diags[1].Message != "Replace 'int' with 'variable_name'" {
		t.Errorf("unexpected replace message: %s", diags[1].Message)
	}
	if diags[2].Message != "Insert missing token: 'variable_name'" {
		t.Errorf("unexpected insert message: %s", diags[2].Message)
	}
}

func TestBudgetExceeded_Message(t *testing.T) {
	d := BudgetExceeded(15)
	if d.Line != 0 || d.Column != 0 {
		t.Errorf("expected (0,0), got (%d,%d)", d.Line, d.Column)
	}
	if d.Message != "Edit budget exceeded (15)" {
		t.Errorf("unexpected message: %s", d.Message)
	}
}
