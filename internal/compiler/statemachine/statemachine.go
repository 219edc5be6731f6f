// Package statemachine holds the fixed linear DFA that describes a valid
// const-int declaration. It is pure data: the transition table, not the
// search that walks it, lives here.
package statemachine

import (
	"fmt"

	"github.com/conduit-lang/constlex/internal/compiler/lexer"
)

// State is one node of the declaration's DFA.
type State int

const (
	// Start is the initial state and the state a completed declaration
	// resets to, so that a stream of multiple declarations validates
	// against the same machine.
	Start State = iota
	DataType
	VariableS
	EqualS
	ValueS
	WholeNumberS
	SemicolonS
	End
)

var stateNames = map[State]string{
	Start:        "START",
	DataType:     "DATA_TYPE",
	VariableS:    "VARIABLE_S",
	EqualS:       "EQUAL_S",
	ValueS:       "VALUE_S",
	WholeNumberS: "WHOLENUMBER_S",
	SemicolonS:   "SEMICOLON_S",
	End:          "END",
}

// String returns the name of the state.
func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", s)
}

// Transition is one outgoing edge from a state.
type Transition struct {
	Kind lexer.TokenKind
	Next State
}

// table lists, per state, the outgoing transitions in a fixed order.
// The order matters only for determinism of branch generation (P2); the
// repair engine's cost ordering decides which branch wins.
var table = map[State][]Transition{
	Start:        {{lexer.CONST, DataType}, {lexer.CONSTEXPR, DataType}},
	DataType:     {{lexer.INT, VariableS}},
	VariableS:    {{lexer.VARIABLE, EqualS}},
	EqualS:       {{lexer.EQUAL, ValueS}},
	ValueS:       {{lexer.VALUE, SemicolonS}, {lexer.MINUS, WholeNumberS}, {lexer.PLUS, WholeNumberS}},
	WholeNumberS: {{lexer.VALUE, SemicolonS}},
	SemicolonS:   {{lexer.SEMICOLON, End}},
	End:          {},
}

// Next returns the state reached from s on kind, or false if no such
// transition exists. Landing in End is immediately reported back as
// Start: the declaration is complete and the machine resynchronizes for
// a following declaration, per the grammar's END -> START reset path.
func Next(s State, kind lexer.TokenKind) (State, bool) {
	for _, tr := range table[s] {
		if tr.Kind == kind {
			if tr.Next == End {
				return Start, true
			}
			return tr.Next, true
		}
	}
	return s, false
}

// Outgoing returns the transitions available from s, in declared order.
func Outgoing(s State) []Transition {
	return table[s]
}

// IsAccepting reports whether s is a valid state to stop in at the end
// of the token list. Because Next folds End back into Start, this is
// satisfied in practice only by Start; End is kept in the check to
// match the grammar's own description of acceptance.
func IsAccepting(s State) bool {
	return s == Start || s == End
}
