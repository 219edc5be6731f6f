package repair

import (
	"testing"

	"github.com/conduit-lang/constlex/internal/compiler/lexer"
)

func TestSynthesizedMask_InsertShiftsOriginalTokensWithoutMarkingThem(t *testing.T) {
	tokens := []lexer.Token{
		tok(lexer.VARIABLE, "x", 1, 1),
		tok(lexer.EQUAL, "=", 1, 3),
		tok(lexer.VALUE, "5", 1, 5),
		tok(lexer.SEMICOLON, ";", 1, 6),
	}
	edits := []Edit{
		{Kind: Insert, Index: 0, New: tok(lexer.CONST, "const", 1, 1)},
	}

	mask := SynthesizedMask(tokens, edits)
	if len(mask) != len(tokens)+1 {
		t.Fatalf("expected mask of length %d, got %d", len(tokens)+1, len(mask))
	}
	if !mask[0] {
		t.Error("expected the inserted const at index 0 to be marked synthesized")
	}
	for i := 1; i < len(mask); i++ {
		if mask[i] {
			t.Errorf("expected shifted original token at index %d to be unmarked, got synthesized", i)
		}
	}
}

func TestSynthesizedMask_ReplaceMarksOnlyTheReplacedIndex(t *testing.T) {
	tokens := []lexer.Token{
		tok(lexer.CONST, "const", 1, 1),
		tok(lexer.VARIABLE, "int", 1, 7),
		tok(lexer.VARIABLE, "x", 1, 11),
	}
	edits := []Edit{
		{Kind: Replace, Index: 1, Old: tok(lexer.VARIABLE, "int", 1, 7), New: tok(lexer.INT, "int", 1, 7)},
	}

	mask := SynthesizedMask(tokens, edits)
	for i, want := range []bool{false, true, false} {
		if mask[i] != want {
			t.Errorf("index %d: expected synthesized=%v, got %v", i, want, mask[i])
		}
	}
}

func TestSynthesizedMask_DeleteRemovesItsOwnMaskEntry(t *testing.T) {
	tokens := []lexer.Token{
		tok(lexer.SEMICOLON, ";", 1, 1),
		tok(lexer.CONST, "const", 1, 2),
	}
	edits := []Edit{
		{Kind: Delete, Index: 0, Old: tok(lexer.SEMICOLON, ";", 1, 1)},
	}

	mask := SynthesizedMask(tokens, edits)
	if len(mask) != 1 {
		t.Fatalf("expected mask of length 1 after delete, got %d", len(mask))
	}
	if mask[0] {
		t.Error("expected the surviving original token to be unmarked")
	}
}
