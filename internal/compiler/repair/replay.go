package repair

import "github.com/conduit-lang/constlex/internal/compiler/lexer"

// Replay applies edits, in order, to a copy of tokens and returns the
// result. It exists to let callers independently verify P6 (edit
// consistency): replaying a winning branch's edit log against the
// original tokens must reproduce exactly the branch's repaired tokens.
func Replay(tokens []lexer.Token, edits []Edit) []lexer.Token {
	result := append([]lexer.Token(nil), tokens...)

	for _, edit := range edits {
		switch edit.Kind {
		case Delete:
			result = append(result[:edit.Index], result[edit.Index+1:]...)
		case Replace:
			result[edit.Index] = edit.New
		case Insert:
			result = append(result, lexer.Token{})
			copy(result[edit.Index+1:], result[edit.Index:])
			result[edit.Index] = edit.New
		}
	}

	return result
}

// SynthesizedMask replays edits the same way Replay does, but tracks
// which positions in the resulting token list were produced by an edit
// (Insert or Replace) rather than carried over from the original input.
// A shell marking synthesized tokens must use this instead of comparing
// positions by index: an Insert shifts every original token after it
// one slot to the right, so positional equality against the original
// slice misidentifies shifted originals as synthesized.
func SynthesizedMask(tokens []lexer.Token, edits []Edit) []bool {
	mask := make([]bool, len(tokens))

	for _, edit := range edits {
		switch edit.Kind {
		case Delete:
			mask = append(mask[:edit.Index], mask[edit.Index+1:]...)
		case Replace:
			mask[edit.Index] = true
		case Insert:
			mask = append(mask, false)
			copy(mask[edit.Index+1:], mask[edit.Index:])
			mask[edit.Index] = true
		}
	}

	return mask
}
