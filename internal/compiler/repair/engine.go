// Package repair implements the best-first search that turns a
// non-conforming token stream into the nearest one the declaration state
// machine accepts, recording the edits it applied along the way.
package repair

import (
	"github.com/conduit-lang/constlex/internal/compiler/lexer"
	"github.com/conduit-lang/constlex/internal/compiler/statemachine"
)

// DefaultMaxEdits is the reference edit budget: branches that would
// exceed it are never enqueued.
const DefaultMaxEdits = 15

// Engine runs the repair search with a configured edit budget. Engine
// holds no mutable state between calls; Repair is a pure function of its
// argument and is safe to call from multiple goroutines concurrently.
type Engine struct {
	maxEdits int
}

// New creates an Engine with the given edit budget. A negative budget is
// the caller's mistake, not the engine's to recover from.
func New(maxEdits int) *Engine {
	return &Engine{maxEdits: maxEdits}
}

// NewDefault creates an Engine using DefaultMaxEdits.
func NewDefault() *Engine {
	return New(DefaultMaxEdits)
}

// Result is the outcome of a repair search.
type Result struct {
	Tokens    []lexer.Token // repaired tokens, or the original input if the budget was exceeded
	Edits     []Edit        // edits applied along the winning branch, in application order
	Exhausted bool          // true if no accepting branch was found within the edit budget
}

// visitKey identifies a (remaining, state, edit_count) triple for
// deduplication, where remaining is the number of tokens after the
// cursor. The cursor itself cannot serve: an Insert child and a Replace
// child reach the same cursor and state at the same cost, but the
// Insert child still has the displaced token ahead of it, so a
// cursor-based key would discard whichever of the two was popped
// second. Every branch's unconsumed tokens are a suffix of the input,
// so remaining identifies them exactly.
type visitKey struct {
	remaining int
	state     statemachine.State
	editCount int
}

// Repair searches for the minimum-edit walk of the state machine over a
// modified copy of tokens. tokens is never mutated.
func (e *Engine) Repair(tokens []lexer.Token) Result {
	initial := &Branch{
		Tokens: append([]lexer.Token(nil), tokens...),
		Cursor: 0,
		State:  statemachine.Start,
	}

	q := newQueue()
	q.push(initial)
	visited := make(map[visitKey]bool)

	for !q.empty() {
		b := q.pop()

		key := visitKey{remaining: len(b.Tokens) - b.Cursor, state: b.State, editCount: b.EditCount}
		if visited[key] {
			continue
		}
		visited[key] = true

		if b.Cursor == len(b.Tokens) {
			if statemachine.IsAccepting(b.State) {
				return Result{Tokens: b.Tokens, Edits: b.Edits}
			}
			e.expandAtEnd(b, q)
			continue
		}

		current := b.Tokens[b.Cursor]
		if next, ok := statemachine.Next(b.State, current.Kind); ok {
			q.push(b.advance(next))
			continue
		}

		e.expandMismatch(b, q)
	}

	return Result{Tokens: tokens, Exhausted: true}
}

// expandAtEnd enqueues one Insert child per outgoing transition when the
// branch has consumed every token but is not yet in an accepting state.
func (e *Engine) expandAtEnd(b *Branch, q *queue) {
	if b.EditCount+1 > e.maxEdits {
		return
	}

	anchorLine, anchorColumn := appendAnchor(b.Tokens)
	for _, tr := range statemachine.Outgoing(b.State) {
		synth := lexer.Token{Kind: tr.Kind, Value: tr.Kind.DefaultValue(), Line: anchorLine, Column: anchorColumn}

		tokens := b.copyTokens()
		tokens = append(tokens, synth)

		edit := Edit{Kind: Insert, Index: b.Cursor, New: synth}
		q.push(b.withEdit(tokens, len(tokens), tr.Next, edit))
	}
}

// expandMismatch enqueues the delete, replace, and insert repair
// families for a branch whose current token does not match any outgoing
// transition from its state.
func (e *Engine) expandMismatch(b *Branch, q *queue) {
	if b.EditCount+1 > e.maxEdits {
		return
	}

	old := b.Tokens[b.Cursor]

	// Delete: drop the offending token, cursor and state unchanged.
	{
		tokens := b.copyTokens()
		tokens = append(tokens[:b.Cursor], tokens[b.Cursor+1:]...)
		edit := Edit{Kind: Delete, Index: b.Cursor, Old: old}
		q.push(b.withEdit(tokens, b.Cursor, b.State, edit))
	}

	outgoing := statemachine.Outgoing(b.State)

	// Replace: substitute the offending token with a synthesized one of
	// an acceptable kind, at the old token's position.
	for _, tr := range outgoing {
		synth := lexer.Token{Kind: tr.Kind, Value: tr.Kind.DefaultValue(), Line: old.Line, Column: old.Column}

		tokens := b.copyTokens()
		tokens[b.Cursor] = synth

		edit := Edit{Kind: Replace, Index: b.Cursor, Old: old, New: synth}
		next, _ := statemachine.Next(b.State, tr.Kind)
		q.push(b.withEdit(tokens, b.Cursor+1, next, edit))
	}

	// Insert: splice a synthesized token in before the offending one, at
	// its position, then retry the same token against the new state.
	for _, tr := range outgoing {
		synth := lexer.Token{Kind: tr.Kind, Value: tr.Kind.DefaultValue(), Line: old.Line, Column: old.Column}

		tokens := b.copyTokens()
		tokens = append(tokens, lexer.Token{})
		copy(tokens[b.Cursor+1:], tokens[b.Cursor:])
		tokens[b.Cursor] = synth

		edit := Edit{Kind: Insert, Index: b.Cursor, New: synth}
		next, _ := statemachine.Next(b.State, tr.Kind)
		q.push(b.withEdit(tokens, b.Cursor+1, next, edit))
	}
}

// appendAnchor computes the position a token synthesized at the end of
// the token list should inherit, per 4.4.1: the end of the last token,
// or (1, 1) if the list is empty.
func appendAnchor(tokens []lexer.Token) (line, column int) {
	if len(tokens) == 0 {
		return 1, 1
	}
	last := tokens[len(tokens)-1]
	return last.Line, last.Column + len([]rune(last.Value))
}
