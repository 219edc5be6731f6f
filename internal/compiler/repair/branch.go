package repair

import (
	"github.com/conduit-lang/constlex/internal/compiler/lexer"
	"github.com/conduit-lang/constlex/internal/compiler/statemachine"
)

// EditKind tags the variant of a single repair edit.
type EditKind int

const (
	// Insert adds a synthesized token that was not present in the source.
	Insert EditKind = iota
	// Delete drops a token from the branch's token list.
	Delete
	// Replace substitutes a token for a synthesized one of a different kind.
	Replace
)

func (k EditKind) String() string {
	switch k {
	case Insert:
		return "Insert"
	case Delete:
		return "Delete"
	case Replace:
		return "Replace"
	default:
		return "Unknown"
	}
}

// Edit records one repair applied while walking the state machine.
// Index refers to the position in the branch's token list at the moment
// the edit was applied.
type Edit struct {
	Kind  EditKind
	Index int
	Old   lexer.Token // zero value for Insert
	New   lexer.Token // zero value for Delete
}

// Branch is a candidate walk of the state machine over a (possibly
// edited) copy of the token list. Branches are immutable once created:
// every derivation produces a new Branch rather than mutating one in
// place, so the priority queue can hold many in flight at once without
// aliasing bugs.
type Branch struct {
	Tokens    []lexer.Token
	Cursor    int
	State     statemachine.State
	EditCount int
	Edits     []Edit
}

// withEdit returns a new Branch carrying one additional edit, without
// mutating b. tokens is the full, already-modified token list for the
// child; cursor and state are the child's post-edit cursor and state.
func (b *Branch) withEdit(tokens []lexer.Token, cursor int, state statemachine.State, edit Edit) *Branch {
	edits := make([]Edit, len(b.Edits)+1)
	copy(edits, b.Edits)
	edits[len(b.Edits)] = edit

	return &Branch{
		Tokens:    tokens,
		Cursor:    cursor,
		State:     state,
		EditCount: b.EditCount + 1,
		Edits:     edits,
	}
}

// advance returns a new Branch that consumed the matching current token
// without any edit.
func (b *Branch) advance(state statemachine.State) *Branch {
	return &Branch{
		Tokens:    b.Tokens,
		Cursor:    b.Cursor + 1,
		State:     state,
		EditCount: b.EditCount,
		Edits:     b.Edits,
	}
}

// copyTokens returns a fresh copy of b.Tokens so a derived branch never
// aliases its parent's slice.
func (b *Branch) copyTokens() []lexer.Token {
	tokens := make([]lexer.Token, len(b.Tokens))
	copy(tokens, b.Tokens)
	return tokens
}
