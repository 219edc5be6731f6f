// Package diagnostics converts scan errors and applied repair edits into
// human-readable, positioned messages for the shell to display.
package diagnostics

import (
	"encoding/json"
	"fmt"

	"github.com/conduit-lang/constlex/internal/compiler/lexer"
	"github.com/conduit-lang/constlex/internal/compiler/repair"
)

// Category distinguishes where a diagnostic originated.
type Category string

const (
	// CategoryScan marks a diagnostic produced while tokenizing.
	CategoryScan Category = "scan"
	// CategoryRepair marks a diagnostic produced while repairing a
	// non-conforming token stream.
	CategoryRepair Category = "repair"
)

// Diagnostic is a single positioned, human-readable message.
type Diagnostic struct {
	Category Category `json:"category"`
	Line     int      `json:"line"`
	Column   int      `json:"column"`
	Message  string   `json:"message"`
}

// Error implements the error interface so a Diagnostic can be returned
// or wrapped like any other Go error.
func (d Diagnostic) Error() string {
	return fmt.Sprintf("%d:%d: %s", d.Line, d.Column, d.Message)
}

// List is an ordered collection of diagnostics.
type List []Diagnostic

// ToJSON renders the list as a JSON array, for machine consumption by a
// shell that wants structured output rather than formatted text.
func (l List) ToJSON() (string, error) {
	bytes, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// FromScanErrors converts scanner errors into diagnostics, preserving
// scan order.
func FromScanErrors(errs []lexer.ScanError) List {
	out := make(List, 0, len(errs))
	for _, e := range errs {
		out = append(out, Diagnostic{
			Category: CategoryScan,
			Line:     e.Line,
			Column:   e.Column,
			Message:  e.Message,
		})
	}
	return out
}

// FromEdits builds one diagnostic per edit in a winning branch's edit
// log, in the order the edits were applied.
func FromEdits(edits []repair.Edit) List {
	out := make(List, 0, len(edits))
	for _, edit := range edits {
		out = append(out, Diagnostic{
			Category: CategoryRepair,
			Line:     editLine(edit),
			Column:   editColumn(edit),
			Message:  editMessage(edit),
		})
	}
	return out
}

// BudgetExceeded builds the single diagnostic emitted when no accepting
// branch was found within the edit budget.
func BudgetExceeded(maxEdits int) Diagnostic {
	return Diagnostic{
		Category: CategoryRepair,
		Line:     0,
		Column:   0,
		Message:  fmt.Sprintf("Edit budget exceeded (%d)", maxEdits),
	}
}

func editLine(edit repair.Edit) int {
	switch edit.Kind {
	case repair.Delete:
		return edit.Old.Line
	case repair.Replace:
		return edit.Old.Line
	default: // Insert
		return edit.New.Line
	}
}

func editColumn(edit repair.Edit) int {
	switch edit.Kind {
	case repair.Delete:
		return edit.Old.Column
	case repair.Replace:
		return edit.Old.Column
	default: // Insert
		return edit.New.Column
	}
}

func editMessage(edit repair.Edit) string {
	switch edit.Kind {
	case repair.Delete:
		return fmt.Sprintf("Remove invalid token: '%s'", edit.Old.Value)
	case repair.Replace:
		return fmt.Sprintf("Replace '%s' with '%s'", edit.Old.Value, edit.New.Value)
	default: // Insert
		return fmt.Sprintf("Insert missing token: '%s'", edit.New.Value)
	}
}
