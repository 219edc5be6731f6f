// Package facade exposes the tokenize and repair operations as the two
// pure, synchronous entry points a shell (GUI, LSP server, CLI) calls
// into. Neither performs I/O.
package facade

import (
	"github.com/conduit-lang/constlex/internal/compiler/diagnostics"
	"github.com/conduit-lang/constlex/internal/compiler/lexer"
	"github.com/conduit-lang/constlex/internal/compiler/repair"
)

// Config holds the engine's enumerated configuration options.
type Config struct {
	// MaxEdits is the hard edit-budget cap for repair. Must be >= 0.
	MaxEdits int
}

// DefaultConfig returns the reference configuration (MaxEdits = 15).
func DefaultConfig() Config {
	return Config{MaxEdits: repair.DefaultMaxEdits}
}

// Tokenize scans source text into a token list and any scan errors.
func Tokenize(source string) ([]lexer.Token, []lexer.ScanError) {
	return lexer.New(source).ScanTokens()
}

// Repair finds the minimum-edit walk of the declaration state machine
// over tokens, returning the repaired tokens, the raw edit log, and one
// diagnostic per applied edit. If no accepting walk exists within
// cfg.MaxEdits, it returns tokens unchanged, no edits, and a single
// budget-exceeded diagnostic.
func Repair(tokens []lexer.Token, cfg Config) ([]lexer.Token, []repair.Edit, diagnostics.List) {
	result := repair.New(cfg.MaxEdits).Repair(tokens)
	if result.Exhausted {
		return result.Tokens, nil, diagnostics.List{diagnostics.BudgetExceeded(cfg.MaxEdits)}
	}
	return result.Tokens, result.Edits, diagnostics.FromEdits(result.Edits)
}

// Analysis is the combined result of tokenizing and repairing a source
// text, ready for a shell to render.
type Analysis struct {
	Tokens      []lexer.Token
	ScanErrors  []lexer.ScanError
	Repaired    []lexer.Token
	Diagnostics diagnostics.List
}

// Analyze runs the full pipeline described in the facade's contract:
// tokenize, then repair, returning scan errors followed by repair
// diagnostics in that order.
func Analyze(source string, cfg Config) Analysis {
	tokens, scanErrors := Tokenize(source)
	repaired, _, editDiags := Repair(tokens, cfg)

	all := make(diagnostics.List, 0, len(scanErrors)+len(editDiags))
	all = append(all, diagnostics.FromScanErrors(scanErrors)...)
	all = append(all, editDiags...)

	return Analysis{
		Tokens:      tokens,
		ScanErrors:  scanErrors,
		Repaired:    repaired,
		Diagnostics: all,
	}
}
